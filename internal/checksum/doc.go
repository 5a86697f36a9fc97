// Package checksum fingerprints DocView files.
//
// Two checksums are computed:
//
//   - Raw checksum: hash of the exact file content
//   - Normalized checksum: hash after removing XML comments and collapsing
//     whitespace outside of attribute values, so that reformatting an export
//     keeps its identity
//
// Example:
//
//	calculator := checksum.New()
//	raw := calculator.CalculateRaw(content)
//	normalized := calculator.CalculateNormalized(content)
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
