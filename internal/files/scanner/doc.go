// Package scanner discovers the DocView files of a content package.
//
// The content root is the jcr_root directory of the package (or the scanned
// directory itself when it has none). Below it:
//
//   - <dir>/.content.xml serializes the node at <dir>
//   - <dir>/<name>.xml may serialize the node <dir>/<name>; whether it does
//     is only known after parsing
//   - <name>.dir directories hold the children of a node serialized next to
//     a binary file
//
// Directory and file names are mapped to repository names with
// docview.RepositoryName ("_jcr_content" is "jcr:content").
package scanner
