// Package report renders audit results.
//
// Formats:
//   - text: findings grouped by file, coloured by severity when writing to a terminal
//   - json: machine readable document with a deterministic ID per finding
//   - tree: findings arranged along the repository tree
//
// A summary table with finding counts per file and severity can be appended
// to the text and tree formats.
package report
