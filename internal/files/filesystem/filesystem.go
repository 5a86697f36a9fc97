package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo.
type FileInfo = fs.FileInfo

// File is a file or directory found while walking a Directory.
type File interface {
	// Path returns the absolute path
	Path() string

	// RelativePath returns the slash-separated path relative to the walked directory
	RelativePath() string

	Info() FileInfo

	ReadContent() ([]byte, error)
}

// Directory is a directory tree that can be walked.
type Directory interface {
	Path() string

	// Walk calls fn for the directory itself and every entry below it.
	// Walking stops at the first error returned by fn.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider opens directories and reads single files.
type FileSystemProvider interface {
	Open(path string) (Directory, error)
	ReadFile(path string) ([]byte, error)
	Stat(path string) (FileInfo, error)
}
