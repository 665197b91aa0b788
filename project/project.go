package project

import (
	"context"
	"fmt"
	"github.com/cottand/carrier/collect"
	"github.com/cottand/carrier/config"
	"github.com/cottand/carrier/internal/log"
	"github.com/cottand/carrier/internal/xnerr"
	"github.com/cottand/carrier/process"
	"github.com/pkg/errors"
	"io"
	"os"
	"path/filepath"
)

const (
	SrcDir        = "src"
	OutDir        = "out"
	SampleFile    = "main.xn"
	DefaultOutput = "out/output.wasm"
	// MergedFile receives the concatenated sources for single-input compilers
	MergedFile = "out/output.xn"
)

var ErrIO = xnerr.Sentinel(xnerr.IO)

var projectLogger = log.DefaultLogger.With("section", "project")

// Project is an initialised project directory with its loaded config.
// Relative paths given to its operations are resolved against Dir,
// and delegated tools run with Dir as their working directory.
type Project struct {
	Dir    string
	Config *config.ProjectConfig
	Runner process.Runner
	Out    io.Writer
	// SingleInputCompiler makes Build merge sources into MergedFile
	// instead of passing every file to the compiler
	SingleInputCompiler bool
}

// Open loads the config of the project at dir
func Open(dir string, runner process.Runner, out io.Writer) (*Project, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, err
	}
	return &Project{
		Dir:    dir,
		Config: cfg,
		Runner: runner,
		Out:    out,

		SingleInputCompiler: true,
	}, nil
}

func (p *Project) Compiler() process.Tool {
	return process.Tool{Name: "compiler", Path: p.Config.CompilerPath, SingleInput: p.SingleInputCompiler}
}

func (p *Project) Interpreter() process.Tool {
	return process.Tool{Name: "interpreter", Path: p.Config.InterpreterPath}
}

func (p *Project) VM() process.Tool {
	return process.Tool{Name: "vm", Path: p.Config.VMPath}
}

// path resolves a project-relative path for use by this process
func (p *Project) path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(p.Dir, rel)
}

// rel turns a path produced by p.path back into one valid in the tools' working directory
func (p *Project) rel(path string) string {
	if r, err := filepath.Rel(p.Dir, path); err == nil {
		return r
	}
	return path
}

func (p *Project) invoke(ctx context.Context, tool process.Tool, args ...string) error {
	inv := tool.Invocation(args...)
	inv.Dir = p.Dir
	projectLogger.Debug("delegating", "tool", tool.Name, "cmd", inv.String())
	return p.Runner.Run(ctx, inv)
}

// sources gathers every source file under src/, as paths relative to Dir
func (p *Project) sources() ([]string, error) {
	files, err := collect.Gather(p.path(SrcDir), collect.SourceExt)
	if err != nil {
		return nil, err
	}
	rel := make([]string, 0, len(files))
	for _, f := range files {
		rel = append(rel, p.rel(f))
	}
	return rel, nil
}

// Build compiles source into output. Without a source, every file under
// src/ is compiled, merged first if the compiler takes a single input.
func (p *Project) Build(ctx context.Context, source, output string) error {
	if output == "" {
		output = DefaultOutput
	}
	compiler := p.Compiler()

	var inputs []string
	if source != "" {
		inputs = []string{source}
	} else {
		files, err := collect.Gather(p.path(SrcDir), collect.SourceExt)
		if err != nil {
			return errors.Wrap(err, "build")
		}
		if len(files) == 0 {
			return xnerr.New(xnerr.EmptyInput, nil, "no %s files found in %s/ for build", collect.SourceExt, SrcDir)
		}
		if compiler.SingleInput {
			merged, err := collect.Merge(files, p.path(MergedFile))
			if err != nil {
				return errors.Wrap(err, "build")
			}
			inputs = []string{p.rel(merged)}
		} else {
			for _, f := range files {
				inputs = append(inputs, p.rel(f))
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(p.path(output)), os.ModePerm); err != nil {
		return xnerr.New(xnerr.IO, err, "could not create output directory for %s", output)
	}

	args := append(inputs, "-o", output)
	if err := p.invoke(ctx, compiler, args...); err != nil {
		return errors.Wrap(err, "build")
	}
	_, _ = fmt.Fprintf(p.Out, "Build finished -> %s\n", output)
	return nil
}

// Run interprets files, or every source under src/ when files is empty.
// Having nothing to run is not an error.
func (p *Project) Run(ctx context.Context, files []string, entry string) error {
	if len(files) == 0 {
		gathered, err := p.sources()
		if err != nil {
			return errors.Wrap(err, "run")
		}
		files = gathered
	}
	if len(files) == 0 {
		_, _ = fmt.Fprintf(p.Out, "No %s files found to run.\n", collect.SourceExt)
		return nil
	}

	args := append([]string{}, files...)
	if entry != "" {
		args = append(args, "-e", entry)
	}
	if err := p.invoke(ctx, p.Interpreter(), args...); err != nil {
		return errors.Wrap(err, "run")
	}
	return nil
}

// RunVM executes a compiled module on the VM, passing args through untouched
func (p *Project) RunVM(ctx context.Context, wasmFile string, args []string) error {
	vmArgs := append([]string{wasmFile}, args...)
	if err := p.invoke(ctx, p.VM(), vmArgs...); err != nil {
		return errors.Wrap(err, "vm")
	}
	return nil
}
