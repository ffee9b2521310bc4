package headers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned when a header line is not valid UTF-8.
var ErrInvalidEncoding = errors.New("header line is not valid UTF-8")

// ExtractFile reads the header fields declared on the first line of path.
func ExtractFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	fields, err := ExtractReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return fields, nil
}

// ExtractReader reads the first line of r, splits it on tabs and returns the
// trimmed, non-empty fields. Duplicates are dropped, first occurrence wins.
// The rest of r is not consumed beyond the first line.
func ExtractReader(r io.Reader) ([]string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading header line: %w", err)
	}

	if !utf8.ValidString(line) {
		return nil, ErrInvalidEncoding
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	var fields []string

	seen := make(map[string]struct{})

	for _, raw := range strings.Split(line, "\t") {
		field := strings.TrimSpace(raw)
		if field == "" {
			continue
		}

		if _, dup := seen[field]; dup {
			continue
		}

		seen[field] = struct{}{}
		fields = append(fields, field)
	}

	return fields, nil
}
