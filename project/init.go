package project

import (
	"fmt"
	"github.com/cottand/carrier/config"
	"github.com/cottand/carrier/internal/xnerr"
	"github.com/pkg/errors"
	"io"
	"os"
	"path/filepath"
)

var ErrProjectExists = errors.New("project already initialised")

const sampleSource = `// Greatest common divisor, by Euclid's algorithm
fn gcd(a: mut i32, b: mut i32) -> i32
{
    let t: mut i32 = 0;

    while (b != 0) {
        t = b;
        b = a % b;
        a = t;
    }
    return a;
}

fn main() -> i32 {
    return gcd(270, 192);
}
`

// Init scaffolds a project called name inside parent: the project
// directory, src/ with a sample program, and a default xn.toml.
// An existing xn.toml is only replaced when force is set. Steps are not
// rolled back when a later one fails.
func Init(parent, name string, force bool, out io.Writer) error {
	if name == "" {
		return errors.New("project name must not be empty")
	}
	dir := filepath.Join(parent, name)
	cfgPath := filepath.Join(dir, config.FileName)

	if _, err := os.Stat(cfgPath); err == nil && !force {
		return errors.Wrapf(ErrProjectExists, "%s exists (use --force to overwrite)", cfgPath)
	}

	srcDir := filepath.Join(dir, SrcDir)
	if err := os.MkdirAll(srcDir, os.ModePerm); err != nil {
		return xnerr.New(xnerr.IO, err, "could not create %s", srcDir)
	}

	samplePath := filepath.Join(srcDir, SampleFile)
	if err := os.WriteFile(samplePath, []byte(sampleSource), 0o644); err != nil {
		return xnerr.New(xnerr.IO, err, "could not write %s", samplePath)
	}

	if err := config.Save(config.Default(name), cfgPath); err != nil {
		return err
	}

	projectLogger.Debug("initialised project", "dir", dir)
	_, _ = fmt.Fprintf(out, "Initialized a new XN project in `%s`\n", name)
	return nil
}
