package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_Open(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file.xml")
	require.NoError(t, os.WriteFile(filePath, []byte("<a/>"), 0644))

	fs := NewOSFileSystem()

	d, err := fs.Open(dir)
	require.NoError(t, err)
	absDir, _ := filepath.Abs(dir)
	assert.Equal(t, absDir, d.Path())

	_, err = fs.Open(filepath.Join(dir, "nonexistent"))
	assert.Error(t, err)

	_, err = fs.Open(filePath)
	assert.Error(t, err, "files cannot be opened as directories")
}

func TestOSFileSystem_WalkMatchesMemoryOrder(t *testing.T) {
	dir := t.TempDir()
	files := []string{"conf/site.xml", "conf/site/.content.xml", "conf/.content.xml"}

	mfs := NewMemoryFileSystem("/root")
	for _, f := range files {
		p := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("<a/>"), 0644))
		mfs.AddFile(f, "<a/>")
	}

	osDir, err := NewOSFileSystem().Open(dir)
	require.NoError(t, err)
	memDir, err := mfs.Open(".")
	require.NoError(t, err)

	assert.Equal(t, walkPaths(t, memDir), walkPaths(t, osDir))
}

func TestOSFileSystem_ReadContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".content.xml"), []byte("<jcr:root/>"), 0644))

	d, err := NewOSFileSystem().Open(dir)
	require.NoError(t, err)

	var contents []string
	err = d.Walk(func(file File, err error) error {
		require.NoError(t, err)
		if file.Info().IsDir() {
			return nil
		}
		data, err := file.ReadContent()
		require.NoError(t, err)
		contents = append(contents, string(data))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"<jcr:root/>"}, contents)
}

func TestOSFileSystem_ReadFileAndStat(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "filter.xml")
	require.NoError(t, os.WriteFile(filePath, []byte("<workspaceFilter/>"), 0644))

	fs := NewOSFileSystem()

	data, err := fs.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "<workspaceFilter/>", string(data))

	info, err := fs.Stat(filePath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}
