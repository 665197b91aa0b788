package xnerr

import (
	"fmt"
	"github.com/pkg/errors"
)

type ErrCode int

const (
	None ErrCode = iota
	ConfigNotFound
	ConfigParse
	ConfigWrite
	EmptyInput
	Spawn
	NonZeroExit
	Signaled
	IO
)

var codeNames = map[ErrCode]string{
	None:           "unclassified error",
	ConfigNotFound: "config not found",
	ConfigParse:    "config parse error",
	ConfigWrite:    "config write error",
	EmptyInput:     "no input files",
	Spawn:          "could not start tool",
	NonZeroExit:    "tool exited with failure",
	Signaled:       "tool terminated abnormally",
	IO:             "i/o error",
}

func (c ErrCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrCode(%d)", int(c))
}

// Error is a classified failure. An Error with no Msg and no From
// acts as a sentinel: errors.Is matches any Error carrying the same Code.
type Error struct {
	Code ErrCode
	Msg  string
	From error
}

// Sentinel returns the comparison value for code, for use with errors.Is
func Sentinel(code ErrCode) error {
	return &Error{Code: code}
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Code.String()
	}
	if e.From != nil {
		return fmt.Sprintf("%s: %v", msg, e.From)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.From }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.From == nil && t.Code == e.Code
}

// New classifies from (which may be nil) under code, with a formatted message
func New(code ErrCode, from error, format string, args ...any) error {
	return errors.WithStack(&Error{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
		From: from,
	})
}

// CodeOf returns the code of the outermost classified error in err's chain
func CodeOf(err error) ErrCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return None
}

func FormatWithCode(err error) string {
	code := CodeOf(err)
	if code == None {
		return err.Error()
	}
	return fmt.Sprintf("(E%03d) %s", code, err.Error())
}
