// Package abbrev derives short column labels from long header names.
//
// The pipeline is:
//   - TokenizeHeader: splits a header into words on camel-case boundaries,
//     underscores, hyphens, parentheses and whitespace
//   - AbbreviateWord: shortens one word through the dictionary and a
//     cascade of fallbacks (numeric suffix, vowel elision, truncation)
//   - AbbreviateHeader: composes the words into a label of at most
//     MaxHeaderLength characters
//
// Every function in this package is pure and safe for concurrent use.
package abbrev
