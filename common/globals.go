package common

// Version is the current irkit version as a string.
const Version string = "0.1.0"

// ToolName is the name of the command line tool.
const ToolName string = "irkit"

// LogLevelEnvVar is the environment variable which sets the default log level.
const LogLevelEnvVar string = "IRKIT_LOGLEVEL"

// IRFileExt is the file extension of emitted IR files.
const IRFileExt string = ".ll"
