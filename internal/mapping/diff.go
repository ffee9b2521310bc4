package mapping

import (
	"fmt"

	"header-abbrev/internal/diagnostic"
)

// Diff compares a committed mapping against a fresh build and reports every
// difference as an error diagnostic, in header order.
func Diff(committed, fresh *Mapping) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	i, j := 0, 0
	for i < len(committed.Entries) || j < len(fresh.Entries) {
		switch {
		case j == len(fresh.Entries) ||
			(i < len(committed.Entries) && committed.Entries[i].Header < fresh.Entries[j].Header):
			e := committed.Entries[i]
			d.AddError(diagnostic.CodeStaleEntry, "no input file declares this header", "", e.Header)
			i++

		case i == len(committed.Entries) || fresh.Entries[j].Header < committed.Entries[i].Header:
			e := fresh.Entries[j]
			d.AddError(diagnostic.CodeMissingEntry,
				fmt.Sprintf("header missing from mapping, expected %q", e.Abbreviation), "", e.Header)
			j++

		default:
			old, cur := committed.Entries[i], fresh.Entries[j]
			if old.Abbreviation != cur.Abbreviation {
				d.AddError(diagnostic.CodeChangedEntry,
					fmt.Sprintf("abbreviation %q is now %q", old.Abbreviation, cur.Abbreviation), "", cur.Header)
			}
			i++
			j++
		}
	}

	return d
}
