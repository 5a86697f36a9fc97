package scanner

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/vvka-141/replmeta/internal/checksum"
	"github.com/vvka-141/replmeta/internal/docview"
	"github.com/vvka-141/replmeta/internal/files/filesystem"
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

const (
	ContentRootName = "jcr_root"
	ContentFileName = ".content.xml"
	xmlExtension    = ".xml"
	dirSuffix       = ".dir"
)

// File is a candidate DocView file.
type File struct {
	// Path is slash-separated and relative to the scanned package directory
	Path           string
	RepositoryPath string
	// NodeName is the name of the node serialized by the file's root element
	NodeName    string
	Content     []byte
	SizeBytes   int64
	Checksum    string
	ChecksumRaw string
	ModifiedAt  time.Time
}

// Result lists the candidate files of a package in processing order.
type Result struct {
	ContentRoot string
	Files       []File
}

// Scanner discovers DocView files. It is safe for concurrent use as long as
// the calculator and filesystem provider are.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a scanner on the OS filesystem.
// Panics if calculator is nil.
func NewScanner(calculator checksum.Calculator) *Scanner {
	return NewScannerWithFS(calculator, filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a scanner on a custom filesystem provider.
// Panics if calculator or fsProvider is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
	}
}

// LocateContentRoot returns the jcr_root directory of the package at dir, or
// dir itself if it has none. Fails with replmeta.ErrPackageNotFound if dir
// is not a directory.
func (s *Scanner) LocateContentRoot(dir string) (string, error) {
	info, err := s.fsProvider.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", replmeta.ErrPackageNotFound, dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", replmeta.ErrPackageNotFound, dir)
	}

	if filepath.Base(dir) == ContentRootName {
		return dir, nil
	}
	candidate := filepath.Join(dir, ContentRootName)
	if info, err := s.fsProvider.Stat(candidate); err == nil && info.IsDir() {
		return candidate, nil
	}
	return dir, nil
}

// ScanPackage finds all candidate DocView files of the package at dir in
// lexical walk order.
func (s *Scanner) ScanPackage(dir string) (Result, error) {
	root, err := s.LocateContentRoot(dir)
	if err != nil {
		return Result{}, err
	}

	d, err := s.fsProvider.Open(root)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open content root: %w", err)
	}

	prefix := ""
	if root != dir {
		prefix = ContentRootName + "/"
	}

	var files []File
	err = d.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}
		if file.Info().IsDir() {
			return nil
		}

		relPath := file.RelativePath()
		repoPath, nodeName, ok := RepositoryPath(relPath)
		if !ok {
			return nil
		}

		f, err := s.processFile(file)
		if err != nil {
			return fmt.Errorf("failed to process file %s: %w", relPath, err)
		}
		f.Path = prefix + relPath
		f.RepositoryPath = repoPath
		f.NodeName = nodeName
		files = append(files, f)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return Result{ContentRoot: d.Path(), Files: files}, nil
}

func (s *Scanner) processFile(file filesystem.File) (File, error) {
	content, err := file.ReadContent()
	if err != nil {
		return File{}, fmt.Errorf("failed to read file: %w", err)
	}

	info := file.Info()
	return File{
		Content:     content,
		SizeBytes:   info.Size(),
		Checksum:    s.calculator.CalculateNormalized(content),
		ChecksumRaw: s.calculator.CalculateRaw(content),
		ModifiedAt:  info.ModTime(),
	}, nil
}

// RepositoryPath maps a slash-separated path relative to the content root to
// the repository path and name of the node the file would serialize.
// Returns false for files that cannot be DocView files.
//
// Examples:
//   - "conf/site/.content.xml" → ("/conf/site", "site")
//   - ".content.xml" → ("/", "")
//   - "conf/site/_sling_configs/ca.xml" → ("/conf/site/sling:configs/ca", "ca")
//   - "content/dam/a.png.dir/_jcr_content/.content.xml" → ("/content/dam/a.png/jcr:content", "jcr:content")
func RepositoryPath(relPath string) (string, string, bool) {
	segments := strings.Split(path.Clean(relPath), "/")
	fileName := segments[len(segments)-1]
	if !strings.HasSuffix(fileName, xmlExtension) {
		return "", "", false
	}

	repoPath := "/"
	for _, segment := range segments[:len(segments)-1] {
		repoPath = docview.ChildPath(repoPath, docview.RepositoryName(strings.TrimSuffix(segment, dirSuffix)))
	}

	if fileName == ContentFileName {
		return repoPath, docview.BaseName(repoPath), true
	}

	name := docview.RepositoryName(strings.TrimSuffix(fileName, xmlExtension))
	if name == "" || strings.HasPrefix(name, ".") {
		return "", "", false
	}
	return docview.ChildPath(repoPath, name), name, true
}
