// Package files groups the content package file handling sub-packages:
//   - filesystem: filesystem abstraction (OS and in-memory)
//   - scanner: content root discovery, DocView file metadata and checksums
//
// # Usage
//
//	fileScanner := scanner.NewScanner(checksum.New())
//	result, err := fileScanner.ScanPackage("./ui.content")
package files
