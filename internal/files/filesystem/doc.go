// Package filesystem abstracts the content package tree read by the scanner.
//
// Implementations:
//   - OSFileSystem: the operating system filesystem
//   - MemoryFileSystem: an in-memory tree for tests
//
// Both walk directories in lexical order so that scans are deterministic.
package filesystem
