// Package match computes plausible alternatives for an invalid or unmapped
// property name and renders them as a "did you mean" error message.
//
// Key functions:
//   - Distance: case-insensitive Levenshtein distance between two names
//   - ForProperty: computes the sorted candidate names for an invalid name
//   - Explain: reports which resolution rule produced each candidate
//   - BuildErrorMessage: renders candidates as a single English sentence
package match
