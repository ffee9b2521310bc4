// Package headers discovers tab-delimited data files and reads the field
// names declared on their first line.
package headers
