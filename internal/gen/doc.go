// Package gen renders a header mapping into the artifact consumed by the
// display tool.
//
// Output formats:
//   - ts: a TypeScript const object literal, the layout the table viewer
//     imports
//   - go: a gofmt'ed Go file declaring a map[string]string
//   - yaml: the mapping file read back by "check"
//   - text: an aligned human-readable listing
//
// Rendering is deterministic: entries are emitted in header order.
package gen
