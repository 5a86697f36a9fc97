// Package audit validates the DocView files of a content package.
//
// An Auditor scans the package, parses every candidate file and replays its
// element tree to a validator.Engine. One engine serves the whole package;
// each file's traversal is balanced, so subtrees never span files. Files
// that are not DocView documents are skipped. Malformed files are reported
// as findings and the audit continues.
package audit
