// Package collect discovers source files in a project and merges them
// for tools that only accept a single input file.
package collect

import (
	"bytes"
	"cmp"
	"github.com/cottand/carrier/internal/log"
	"github.com/cottand/carrier/internal/xnerr"
	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
	"io/fs"
	"os"
	"path/filepath"
)

// SourceExt is the extension of Xenon source files
const SourceExt = ".xn"

// MarkerPrefix starts the line that precedes each fragment of a merged file
const MarkerPrefix = "// Start of file: "

var ErrEmptyInput = xnerr.Sentinel(xnerr.EmptyInput)

var collectLogger = log.DefaultLogger.With("section", "collect")

// FileSet is an ordered list of source paths
type FileSet []string

// Gather walks root and returns every regular file with extension ext,
// sorted by path. Symbolic links are never followed, neither to files
// nor to directories. A missing root yields an empty FileSet.
func Gather(root, ext string) (FileSet, error) {
	found := set.NewTreeSet[string](cmp.Compare[string])

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if filepath.Ext(path) == ext {
			found.Insert(path)
		}
		return nil
	})
	if err != nil {
		return nil, xnerr.New(xnerr.IO, err, "could not gather %s files under %s", ext, root)
	}

	files := FileSet(found.Slice())
	collectLogger.Debug("gathered sources", "root", root, "count", len(files))
	return files, nil
}

// Merge concatenates files, in order, into out. Each fragment is preceded
// by a marker line naming its origin.
func Merge(files FileSet, out string) (string, error) {
	if len(files) == 0 {
		return "", xnerr.New(xnerr.EmptyInput, nil, "no %s files to merge", SourceExt)
	}

	merged := &bytes.Buffer{}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return "", xnerr.New(xnerr.IO, err, "could not read source %s", file)
		}
		merged.WriteString(MarkerPrefix)
		merged.WriteString(file)
		merged.WriteByte('\n')
		merged.Write(content)
		merged.WriteByte('\n')
	}

	if err := os.MkdirAll(filepath.Dir(out), os.ModePerm); err != nil {
		return "", xnerr.New(xnerr.IO, err, "could not create output directory for %s", out)
	}
	if err := os.WriteFile(out, merged.Bytes(), 0o644); err != nil {
		return "", xnerr.New(xnerr.IO, err, "could not write merged source %s", out)
	}

	collectLogger.Debug("merged sources", "out", out, "count", len(files))
	return out, nil
}
