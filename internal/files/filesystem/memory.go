package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

type memoryFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

func (f *memoryFileInfo) Mode() fs.FileMode {
	if f.isDir {
		return 0755 | fs.ModeDir
	}
	return 0644
}

type memoryEntry struct {
	absPath string
	content []byte
	info    *memoryFileInfo
}

type memoryFile struct {
	*memoryEntry
	relPath string
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	if f.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", f.absPath)
	}
	return f.content, nil
}

type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

// Walk visits entries in the order filepath.Walk would: a directory before
// its entries, entries of one directory sorted by name.
func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.entriesUnder(d.absPath)
	sort.Slice(entries, func(i, j int) bool {
		return walkKey(entries[i].absPath) < walkKey(entries[j].absPath)
	})

	for _, entry := range entries {
		rel := "."
		if entry.absPath != d.absPath {
			rel = strings.TrimPrefix(entry.absPath, strings.TrimSuffix(d.absPath, "/")+"/")
		}
		if err := d.visit(fn, &memoryFile{memoryEntry: entry, relPath: rel}); err != nil {
			return err
		}
	}
	return nil
}

func (d *memoryDirectory) visit(fn func(File, error) error, f File) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("walk callback panicked at %s: %v", f.Path(), r)
		}
	}()
	return fn(f, nil)
}

// walkKey makes "/" sort before any other byte so that a directory's
// entries follow it directly.
func walkKey(p string) string {
	return strings.ReplaceAll(p, "/", "\x00")
}

// MemoryFileSystem implements FileSystemProvider in memory. Paths use forward
// slashes; relative paths are resolved against the root.
type MemoryFileSystem struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	root    string
}

// NewMemoryFileSystem creates an in-memory filesystem with an empty root directory.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))
	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.entries[root] = newDirEntry(root)
	return mfs
}

func newDirEntry(p string) *memoryEntry {
	return &memoryEntry{
		absPath: p,
		info:    &memoryFileInfo{name: path.Base(p), modTime: time.Now(), isDir: true},
	}
}

// Root returns the root directory.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

// AddFile adds a file, creating missing parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time.
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.resolve(filePath)
	data := []byte(content)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.entries[absPath] = &memoryEntry{
		absPath: absPath,
		content: data,
		info:    &memoryFileInfo{name: path.Base(absPath), size: int64(len(data)), modTime: modTime},
	}
	for dir := path.Dir(absPath); ; dir = path.Dir(dir) {
		if _, ok := mfs.entries[dir]; !ok {
			mfs.entries[dir] = newDirEntry(dir)
		}
		if dir == "/" || dir == "." || dir == mfs.root {
			break
		}
	}
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) entriesUnder(base string) []*memoryEntry {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	prefix := strings.TrimSuffix(base, "/") + "/"
	var result []*memoryEntry
	for p, e := range mfs.entries {
		if p == base || strings.HasPrefix(p, prefix) {
			result = append(result, e)
		}
	}
	return result
}

func (mfs *MemoryFileSystem) lookup(p string) (*memoryEntry, bool) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	e, ok := mfs.entries[p]
	return e, ok
}

func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)
	e, ok := mfs.lookup(absPath)
	if !ok {
		return nil, fmt.Errorf("directory not found: %s", openPath)
	}
	if !e.info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	e, ok := mfs.lookup(mfs.resolve(filePath))
	if !ok {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if e.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return e.content, nil
}

func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	e, ok := mfs.lookup(mfs.resolve(statPath))
	if !ok {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return e.info, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
