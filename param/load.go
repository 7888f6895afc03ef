package param

import (
	_ "embed"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.toml
var defaultsTOML []byte

// Format is the encoding of a parameter table.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFromPath picks the format of a parameter file from its extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unsupported parameter file %q", path)
}

// Defaults returns a fresh copy of the embedded default parameter table.
func Defaults() *Store {
	s, err := Decode(defaultsTOML, FormatTOML)
	if err != nil {
		panic(fmt.Errorf("decode embedded defaults: %w", err))
	}
	return s
}

// Load reads a parameter table from a TOML or YAML file.
func Load(path string) (*Store, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read parameters: %w", err)
	}
	s, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, nil
}

// Decode decodes a grouped parameter table. The top level maps group names to tables of parameter
// names and numeric values.
func Decode(data []byte, format Format) (*Store, error) {
	var table map[string]any
	switch format {
	case FormatTOML:
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return nil, err
		}
		table = tree.ToMap()
	case FormatYAML:
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown parameter format %d", format)
	}
	return FromTable(table)
}

// FromTable builds a store from a decoded group table.
func FromTable(table map[string]any) (*Store, error) {
	s := NewStore()
	if err := s.Apply(table); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply sets every value of a decoded group table in the store. Groups and the parameters within them are
// set in name order.
func (s *Store) Apply(table map[string]any) error {
	for _, group := range slices.Sorted(maps.Keys(table)) {
		v := table[group]
		values, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("group %q: expected a table, got %T", group, v)
		}
		for _, name := range slices.Sorted(maps.Keys(values)) {
			raw := values[name]
			k := Key{Group: group, Name: name}
			switch n := raw.(type) {
			case int:
				s.SetInt(k, int32(n))
			case int64:
				s.SetInt(k, int32(n))
			case uint64:
				s.SetInt(k, int32(n))
			case float64:
				s.Set(k, float32(n))
			case float32:
				s.Set(k, n)
			default:
				return fmt.Errorf("parameter %s: expected a number, got %T", k, raw)
			}
		}
	}
	return nil
}
