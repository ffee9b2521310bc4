// Package diagnostic provides structured warnings and errors collected
// while generating a header mapping.
//
// Key capabilities:
//   - Unreadable input files, reported without aborting the run
//   - Drift between a committed mapping and a freshly generated one
package diagnostic
