package cmd

import (
	"os"

	"github.com/ComedicChimera/olive"

	"irkit/common"
	"irkit/report"
)

// Execute is the main entry point for the `irkit` CLI utility.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI(common.ToolName, "irkit builds and inspects LLVM IR modules described by manifests", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the log level", false, report.LogLevelNames)
	logLvlArg.SetDefaultValue(defaultLogLevel())

	emitCmd := cli.AddSubcommand("emit", "generate LLVM IR from manifests", true)
	emitCmd.AddPrimaryArg("manifest-path", "the manifest file or directory of manifests to emit", true)
	emitCmd.AddStringArg("output", "o", "the output file (or directory when emitting a directory)", false)

	inspectCmd := cli.AddSubcommand("inspect", "display the functions, arguments and attributes of a manifest", true)
	inspectCmd.AddPrimaryArg("manifest-path", "the manifest file to inspect", true)

	attrsCmd := cli.AddSubcommand("attrs", "display the attribute layout", false)
	attrsCmd.AddStringArg("decode", "d", "an attribute mask to decode into keywords", false)
	attrsCmd.AddFlag("plain", "p", "print the layout as plain text")

	cli.AddSubcommand("version", "print the irkit version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal("%s", err)
	}

	// initialize the reporter
	logLevel, ok := report.ParseLogLevel(result.Arguments["loglevel"].(string))
	if !ok {
		logLevel = report.LogLevelVerbose
	}
	report.InitReporter(logLevel)

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "emit":
		execEmitCommand(subResult)
	case "inspect":
		execInspectCommand(subResult)
	case "attrs":
		execAttrsCommand(subResult)
	case "version":
		report.ReportInfo("irkit version", common.Version)
	}

	if report.AnyErrors() {
		os.Exit(1)
	}
}

// defaultLogLevel returns the log level named by the environment or verbose if
// none is set.
func defaultLogLevel() string {
	if name, ok := os.LookupEnv(common.LogLevelEnvVar); ok {
		if level, ok := report.ParseLogLevel(name); ok {
			return report.LogLevelNames[level]
		}

		report.ReportWarning(common.LogLevelEnvVar, "unknown log level `%s`", name)
	}

	return report.LogLevelNames[report.LogLevelVerbose]
}

// stringArg returns the value of an optional string argument.
func stringArg(result *olive.ArgParseResult, name string) (string, bool) {
	if val, ok := result.Arguments[name]; ok {
		if s, ok := val.(string); ok && s != "" {
			return s, true
		}
	}

	return "", false
}
