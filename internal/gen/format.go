package gen

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects the rendered artifact.
type Format string

const (
	FormatTypeScript Format = "ts"
	FormatGo         Format = "go"
	FormatYAML       Format = "yaml"
	FormatText       Format = "text"
)

// Formats lists every supported format.
var Formats = []Format{FormatTypeScript, FormatGo, FormatYAML, FormatText}

// ParseFormat parses a format name. "yml" and "txt" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ts", "typescript":
		return FormatTypeScript, nil
	case "go":
		return FormatGo, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want one of %v)", s, Formats)
	}
}

// FormatForPath infers the format from the extension of an output path.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer format from %q: no extension", path)
	}

	return ParseFormat(ext)
}

// Extension returns the file extension written for the format.
func (f Format) Extension() string {
	switch f {
	case FormatText:
		return "txt"
	default:
		return string(f)
	}
}

// DefaultVarName returns the identifier the mapping is declared under when
// none is configured.
func (f Format) DefaultVarName() string {
	if f == FormatGo {
		return "DefaultHeaderMappings"
	}

	return "DEFAULT_HEADER_MAPPINGS"
}
