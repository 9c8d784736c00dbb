// Package diagnostic provides structured warnings and errors produced while
// validating alias tables.
//
// Diagnostics are plain values; callers decide whether to print them, wrap
// them into an error, or ignore warnings.
package diagnostic
