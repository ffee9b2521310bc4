package mapping

import (
	"slices"
	"strings"

	"header-abbrev/internal/abbrev"
)

// Entry pairs a header with its abbreviation.
type Entry struct {
	Header       string
	Abbreviation string
}

// Mapping is a header → abbreviation table sorted by header.
type Mapping struct {
	Entries []Entry
	// Skipped counts the headers dropped as empty or comments.
	Skipped int
}

// IsComment reports whether header is empty or a comment column.
func IsComment(header string) bool {
	return header == "" || strings.HasPrefix(header, "*") || strings.HasPrefix(header, "#")
}

// Build abbreviates every retained header. Duplicate headers collapse into
// one entry.
func Build(headers []string) *Mapping {
	sorted := slices.Clone(headers)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	m := &Mapping{Entries: make([]Entry, 0, len(sorted))}

	for _, h := range sorted {
		if IsComment(h) {
			m.Skipped++

			continue
		}

		m.Entries = append(m.Entries, Entry{Header: h, Abbreviation: abbrev.AbbreviateHeader(h)})
	}

	return m
}

// FromPairs builds a Mapping from already abbreviated pairs, as read back
// from a mapping file.
func FromPairs(pairs map[string]string) *Mapping {
	m := &Mapping{Entries: make([]Entry, 0, len(pairs))}
	for h, a := range pairs {
		m.Entries = append(m.Entries, Entry{Header: h, Abbreviation: a})
	}

	slices.SortFunc(m.Entries, func(a, b Entry) int {
		return strings.Compare(a.Header, b.Header)
	})

	return m
}

// Processed returns the number of headers that received an abbreviation.
func (m *Mapping) Processed() int {
	return len(m.Entries)
}

// Lookup returns the abbreviation recorded for header.
func (m *Mapping) Lookup(header string) (string, bool) {
	i, ok := slices.BinarySearchFunc(m.Entries, header, func(e Entry, h string) int {
		return strings.Compare(e.Header, h)
	})
	if !ok {
		return "", false
	}

	return m.Entries[i].Abbreviation, true
}

// Pairs returns the mapping as a plain map.
func (m *Mapping) Pairs() map[string]string {
	out := make(map[string]string, len(m.Entries))
	for _, e := range m.Entries {
		out[e.Header] = e.Abbreviation
	}

	return out
}
