package manifest

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Format is an encoding of manifest files.
type Format int

// Enumeration of manifest formats.
const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatOf returns the manifest format implied by the extension of path.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return 0, false
	}
}

// IsManifest returns whether path names a file in a manifest format.
func IsManifest(path string) bool {
	_, ok := FormatOf(path)
	return ok
}

// Load reads, decodes and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, fmt.Errorf("unsupported manifest file extension: `%s`", filepath.Ext(path))
	}

	// open file
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// read the contents
	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest at `%s`: %w", path, err)
	}

	m, err := Decode(buff, format)
	if err != nil {
		return nil, fmt.Errorf("error parsing manifest at `%s`: %w", path, err)
	}

	m.Path = path
	if err := Validate(m); err != nil {
		return nil, err
	}

	return m, nil
}

// Decode decodes a manifest without validating it.
func Decode(buff []byte, format Format) (*Manifest, error) {
	m := &Manifest{}

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(buff, m)
	case FormatYAML:
		err = yaml.Unmarshal(buff, m)
	default:
		err = fmt.Errorf("unknown manifest format: %d", format)
	}

	if err != nil {
		return nil, err
	}

	return m, nil
}

// FindManifests returns the manifest files directly inside dir in lexical
// order.
func FindManifests(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && IsManifest(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	return paths, nil
}
