package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileVersion is the mapping file format version written by Marshal.
const FileVersion = "1"

// mappingFile is the on-disk shape of a mapping.
type mappingFile struct {
	Version  string            `yaml:"version"`
	Mappings map[string]string `yaml:"mappings"`
}

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Mapping.
func Parse(data []byte) (*Mapping, error) {
	var mf mappingFile

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	if mf.Version == "" {
		mf.Version = FileVersion
	}

	if mf.Version != FileVersion {
		return nil, fmt.Errorf("unsupported mapping file version %q", mf.Version)
	}

	return FromPairs(mf.Mappings), nil
}

// Marshal serializes a Mapping to YAML. Entries keep their byte order;
// yaml.v3 would otherwise sort map keys numerically aware.
func Marshal(m *Mapping) ([]byte, error) {
	entries := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range m.Entries {
		entries.Content = append(entries.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Header},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Abbreviation},
		)
	}

	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "version"},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: FileVersion, Style: yaml.DoubleQuotedStyle},
			{Kind: yaml.ScalarNode, Value: "mappings"},
			entries,
		},
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile writes a Mapping to the given path.
func WriteFile(m *Mapping, path string) error {
	data, err := Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}

// LoadFileIfExists is LoadFile returning an empty mapping when path does
// not exist.
func LoadFileIfExists(path string) (*Mapping, error) {
	m, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Mapping{}, nil
	}

	return m, err
}
