package collect

import (
	"github.com/cottand/carrier/internal/xnerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func touch(t *testing.T, path, content string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), os.ModePerm))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestGatherRecursiveAndSorted(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "zeta.xn"), "")
	touch(t, filepath.Join(root, "alpha.xn"), "")
	touch(t, filepath.Join(root, "nested", "deep", "mid.xn"), "")
	touch(t, filepath.Join(root, "notes.txt"), "")
	touch(t, filepath.Join(root, "nested", "main.xnx"), "")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir.xn"), os.ModePerm))

	files, err := Gather(root, SourceExt)
	require.NoError(t, err)
	assert.Equal(t, FileSet{
		filepath.Join(root, "alpha.xn"),
		filepath.Join(root, "nested", "deep", "mid.xn"),
		filepath.Join(root, "zeta.xn"),
	}, files)
}

func TestGatherMissingOrEmpty(t *testing.T) {
	files, err := Gather(filepath.Join(t.TempDir(), "src"), SourceExt)
	assert.NoError(t, err)
	assert.Empty(t, files)

	files, err = Gather(t.TempDir(), SourceExt)
	assert.NoError(t, err)
	assert.Empty(t, files)
}

func TestGatherSkipsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	elsewhere := t.TempDir()
	touch(t, filepath.Join(root, "main.xn"), "")
	touch(t, filepath.Join(elsewhere, "lib.xn"), "")
	require.NoError(t, os.Symlink(filepath.Join(elsewhere, "lib.xn"), filepath.Join(root, "lib.xn")))
	require.NoError(t, os.Symlink(elsewhere, filepath.Join(root, "linked")))
	// a cycle must not hang the walk
	require.NoError(t, os.Symlink(root, filepath.Join(root, "loop")))

	files, err := Gather(root, SourceExt)
	require.NoError(t, err)
	assert.Equal(t, FileSet{filepath.Join(root, "main.xn")}, files)
}

func TestMergeEmpty(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out", "output.xn")

	_, err := Merge(nil, out)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.NoFileExists(t, out)
}

func TestMergeMarkersAndOrder(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "src", "a.xn")
	b := filepath.Join(root, "src", "b.xn")
	touch(t, a, "fn a() -> i32 { return 1; }")
	touch(t, b, "fn main() -> i32 {\n    return a();\n}\n")

	files, err := Gather(filepath.Join(root, "src"), SourceExt)
	require.NoError(t, err)

	out := filepath.Join(root, "out", "output.xn")
	merged, err := Merge(files, out)
	require.NoError(t, err)
	assert.Equal(t, out, merged)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t,
		"// Start of file: "+a+"\n"+
			"fn a() -> i32 { return 1; }\n"+
			"// Start of file: "+b+"\n"+
			"fn main() -> i32 {\n    return a();\n}\n\n",
		string(content))
}

func TestMergeUnreadableSource(t *testing.T) {
	out := filepath.Join(t.TempDir(), "output.xn")

	_, err := Merge(FileSet{filepath.Join(t.TempDir(), "gone.xn")}, out)
	assert.ErrorIs(t, err, xnerr.Sentinel(xnerr.IO))
	assert.NotErrorIs(t, err, ErrEmptyInput)
	assert.NoFileExists(t, out)
}

func TestMergeOutputUnderRegularFile(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "main.xn")
	touch(t, src, "fn main() {}")
	touch(t, filepath.Join(root, "out"), "not a directory")

	_, err := Merge(FileSet{src}, filepath.Join(root, "out", "output.xn"))
	assert.ErrorIs(t, err, xnerr.Sentinel(xnerr.IO))
}

func TestGatherUnderRegularFile(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "notes.txt"), "")

	files, err := Gather(filepath.Join(root, "notes.txt", "src"), SourceExt)
	assert.ErrorIs(t, err, xnerr.Sentinel(xnerr.IO))
	assert.Empty(t, files)
}
