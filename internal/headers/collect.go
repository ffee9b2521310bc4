package headers

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"

	"header-abbrev/internal/diagnostic"
)

// Set is an unordered collection of unique headers.
type Set map[string]struct{}

// Add inserts every header into the set.
func (s Set) Add(headers ...string) {
	for _, h := range headers {
		s[h] = struct{}{}
	}
}

// Sorted returns the headers in byte order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for h := range s {
		out = append(out, h)
	}

	slices.Sort(out)

	return out
}

// CollectResult is the outcome of reading a batch of files.
type CollectResult struct {
	Headers Set
	// Files is the number of files whose header line was read.
	Files       int
	Diagnostics diagnostic.Diagnostics
}

// Collector reads header lines from files one at a time.
type Collector struct {
	logger *slog.Logger
}

// NewCollector creates a Collector. A nil logger uses slog.Default().
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}

	return &Collector{logger: logger}
}

// Collect reads the header line of every file in order and merges the
// headers. A file that cannot be read is logged, recorded as a warning and
// contributes no header; the remaining files are still read.
// Collect only fails when ctx is cancelled.
func (c *Collector) Collect(ctx context.Context, files []string) (*CollectResult, error) {
	res := &CollectResult{Headers: make(Set)}

	if len(files) == 0 {
		res.Diagnostics.AddWarning(diagnostic.CodeNoInputs, "no input file matched", "", "")
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		fields, err := ExtractFile(path)
		if err != nil {
			c.logger.Warn("Failed to read headers", "path", path, "error", err)
			res.Diagnostics.AddWarning(diagnostic.CodeReadFailed, err.Error(), path, "")

			continue
		}

		res.Files++
		res.Headers.Add(fields...)

		c.logger.Info("Processed file", "file", filepath.Base(path), "headers", len(fields))
	}

	c.logger.Info("Total unique headers found", "headers", len(res.Headers), "files", res.Files)

	return res, nil
}
