// Package mapping builds the header → abbreviation table and persists it as
// YAML.
//
// # Building
//
// Build drops empty headers and comment headers (leading "*" or "#"),
// abbreviates the rest with abbrev.AbbreviateHeader and sorts the entries
// by header so regenerating from the same inputs is byte-for-byte stable.
// Abbreviations are not guaranteed unique; two headers may share one.
//
// # File format
//
//	version: "1"
//	mappings:
//	  MaxDamage: MDamage
//	  MinimumLevel: MinLevel
//	  strength: Str
//
// Keys are written in byte order. A committed file is compared against a
// fresh build with Diff.
package mapping
