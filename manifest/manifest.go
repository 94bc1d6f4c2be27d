package manifest

// Manifest describes the contents of an IR module.
type Manifest struct {
	// The module name.
	Name string `toml:"name" yaml:"name"`

	Functions []*Function `toml:"functions" yaml:"functions"`

	// The path the manifest was loaded from.  Empty for manifests decoded from
	// memory.
	Path string `toml:"-" yaml:"-"`
}

// Function describes a single function of the module.
type Function struct {
	Name     string   `toml:"name" yaml:"name"`
	Returns  string   `toml:"returns" yaml:"returns"`
	Variadic bool     `toml:"variadic" yaml:"variadic"`
	Linkage  string   `toml:"linkage,omitempty" yaml:"linkage,omitempty"`
	Attrs    []string `toml:"attrs,omitempty" yaml:"attrs,omitempty"`
	Params   []*Param `toml:"params" yaml:"params"`

	// Blocks lists the names of the basic blocks of the function body.  A
	// function without blocks is only declared.
	Blocks []string `toml:"blocks,omitempty" yaml:"blocks,omitempty"`
}

// Param describes a function parameter.
type Param struct {
	// Name is nil for a parameter left unnamed.  The empty string gives the
	// parameter an explicitly empty name.
	Name *string `toml:"name" yaml:"name"`

	Type  string   `toml:"type" yaml:"type"`
	Attrs []string `toml:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Linkages lists the linkage names accepted in manifests.
var Linkages = []string{
	"external",
	"available_externally",
	"linkonce",
	"linkonce_odr",
	"weak",
	"weak_odr",
	"appending",
	"internal",
	"private",
	"extern_weak",
	"common",
}
