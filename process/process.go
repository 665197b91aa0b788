// Package process runs delegated tools as child processes.
package process

import (
	"context"
	"fmt"
	"github.com/cottand/carrier/internal/log"
	"github.com/cottand/carrier/internal/xnerr"
	"github.com/pkg/errors"
	"io"
	"os"
	"os/exec"
	"strings"
)

var (
	ErrSpawn       = xnerr.Sentinel(xnerr.Spawn)
	ErrNonZeroExit = xnerr.Sentinel(xnerr.NonZeroExit)
	ErrSignaled    = xnerr.Sentinel(xnerr.Signaled)
)

var processLogger = log.DefaultLogger.With("section", "process")

// Tool is a delegated executable and what it can accept
type Tool struct {
	Name string
	Path string
	// SingleInput tools take exactly one source file, so callers
	// must merge sources before invoking them
	SingleInput bool
}

// Invocation is one run of an executable
type Invocation struct {
	Path string
	Args []string
	// Dir is the working directory of the child, or the current one if empty
	Dir string
}

func (t Tool) Invocation(args ...string) Invocation {
	return Invocation{Path: t.Path, Args: args}
}

func (i Invocation) String() string {
	return strings.Join(append([]string{i.Path}, i.Args...), " ")
}

type Runner interface {
	// Run blocks until the child terminates. A nil error means it exited with status 0.
	Run(ctx context.Context, inv Invocation) error
}

// ExitError reports a child that ran and exited with a non-zero status
type ExitError struct {
	Path string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Path, e.Code)
}

func (e *ExitError) Unwrap() error { return ErrNonZeroExit }

// SignalError reports a child that did not exit on its own
type SignalError struct {
	Path   string
	Status string
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("%s terminated abnormally (%s)", e.Path, e.Status)
}

func (e *SignalError) Unwrap() error { return ErrSignaled }

// Exec runs invocations as real child processes. Nil streams are
// inherited from the current process.
type Exec struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var _ Runner = &Exec{}

func (e *Exec) Run(ctx context.Context, inv Invocation) error {
	command := exec.CommandContext(ctx, inv.Path, inv.Args...)
	command.Dir = inv.Dir
	command.Stdin, command.Stdout, command.Stderr = os.Stdin, os.Stdout, os.Stderr
	if e.Stdin != nil {
		command.Stdin = e.Stdin
	}
	if e.Stdout != nil {
		command.Stdout = e.Stdout
	}
	if e.Stderr != nil {
		command.Stderr = e.Stderr
	}

	processLogger.Info("running tool", "cmd", inv.String(), "dir", inv.Dir)
	err := command.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the child was killed by a signal
		if exitErr.ExitCode() < 0 {
			processLogger.Warn("tool terminated abnormally", "cmd", inv.String(), "status", exitErr.ProcessState.String())
			return errors.WithStack(&SignalError{Path: inv.Path, Status: exitErr.ProcessState.String()})
		}
		processLogger.Info("tool failed", "cmd", inv.String(), "code", exitErr.ExitCode())
		return errors.WithStack(&ExitError{Path: inv.Path, Code: exitErr.ExitCode()})
	}
	return xnerr.New(xnerr.Spawn, err, "could not start %s", inv.Path)
}
