package common

import (
	"go/token"
	"path/filepath"
	"strings"
)

// UnknownStr is the name printed for values outside a known enumeration.
const UnknownStr = "unknown"

// PkgName derives a Go package name from the directory a file is written to.
// Returns fallback when the directory base is not a valid identifier.
func PkgName(dir, fallback string) string {
	base := filepath.Base(filepath.Clean(dir))
	base = strings.ToLower(strings.NewReplacer("-", "", ".", "").Replace(base))

	if base == "" || !token.IsIdentifier(base) {
		return fallback
	}

	return base
}
