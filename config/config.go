// Package config reads and writes the per-project xn.toml file.
package config

import (
	"bytes"
	"github.com/BurntSushi/toml"
	"github.com/cottand/carrier/internal/log"
	"github.com/cottand/carrier/internal/xnerr"
	"github.com/natefinch/atomic"
	"github.com/pkg/errors"
	"os"
	"strings"
)

const FileName = "xn.toml"

const (
	KeyCompilerPath    = "compiler_path"
	KeyInterpreterPath = "interpreter_path"
	KeyProjectName     = "project_name"
	KeyVMPath          = "vm_path"
)

// defaults for the delegated tools of a freshly initialised project
const (
	DefaultCompiler    = "xcc"
	DefaultInterpreter = "xin"
	DefaultVM          = "xrun"
)

var (
	ErrNotFound   = xnerr.Sentinel(xnerr.ConfigNotFound)
	ErrParse      = xnerr.Sentinel(xnerr.ConfigParse)
	ErrWrite      = xnerr.Sentinel(xnerr.ConfigWrite)
	ErrUnknownKey = errors.New("unknown config key")
	ErrEmptyValue = errors.New("config value must not be empty")
)

var configLogger = log.DefaultLogger.With("section", "config")

// keys is sorted, and matches the field order of ProjectConfig
var keys = []string{KeyCompilerPath, KeyInterpreterPath, KeyProjectName, KeyVMPath}

// ProjectConfig is the persisted record of tool paths and project identity.
// Fields are declared in key order so that encoding is key-sorted.
type ProjectConfig struct {
	CompilerPath    string `toml:"compiler_path"`
	InterpreterPath string `toml:"interpreter_path"`
	ProjectName     string `toml:"project_name"`
	VMPath          string `toml:"vm_path"`
}

func Default(name string) *ProjectConfig {
	return &ProjectConfig{
		CompilerPath:    DefaultCompiler,
		InterpreterPath: DefaultInterpreter,
		ProjectName:     name,
		VMPath:          DefaultVM,
	}
}

// Keys returns every valid key, sorted
func Keys() []string {
	return append([]string(nil), keys...)
}

func (c *ProjectConfig) field(key string) (*string, bool) {
	switch key {
	case KeyCompilerPath:
		return &c.CompilerPath, true
	case KeyInterpreterPath:
		return &c.InterpreterPath, true
	case KeyProjectName:
		return &c.ProjectName, true
	case KeyVMPath:
		return &c.VMPath, true
	}
	return nil, false
}

func (c *ProjectConfig) Get(key string) (string, error) {
	f, ok := c.field(key)
	if !ok {
		return "", errors.Wrap(ErrUnknownKey, key)
	}
	return *f, nil
}

func (c *ProjectConfig) Set(key, value string) error {
	f, ok := c.field(key)
	if !ok {
		return errors.Wrap(ErrUnknownKey, key)
	}
	if value == "" {
		return errors.Wrap(ErrEmptyValue, key)
	}
	*f = value
	return nil
}

// Load reads the config at path. Every key must be present, non-empty
// and a string, and no other keys may appear.
func Load(path string) (*ProjectConfig, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, xnerr.New(xnerr.ConfigNotFound, err, "no project config at %s (run `carrier init` first)", path)
	}
	if err != nil {
		return nil, xnerr.New(xnerr.IO, err, "could not read config %s", path)
	}

	cfg := &ProjectConfig{}
	md, err := toml.Decode(string(content), cfg)
	if err != nil {
		return nil, xnerr.New(xnerr.ConfigParse, err, "could not parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		names := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			names = append(names, k.String())
		}
		return nil, xnerr.New(xnerr.ConfigParse, nil, "unexpected keys in %s: %s", path, strings.Join(names, ", "))
	}
	for _, key := range keys {
		if !md.IsDefined(key) {
			return nil, xnerr.New(xnerr.ConfigParse, nil, "missing key %q in %s", key, path)
		}
		if v, _ := cfg.Get(key); v == "" {
			return nil, xnerr.New(xnerr.ConfigParse, nil, "empty value for key %q in %s", key, path)
		}
	}

	configLogger.Debug("loaded project config", "path", path, "project", cfg.ProjectName)
	return cfg, nil
}

// Save writes cfg to path atomically: the file at path is either the old
// or the new content, never a partial write.
func Save(cfg *ProjectConfig, path string) error {
	buf := &bytes.Buffer{}
	if err := toml.NewEncoder(buf).Encode(cfg); err != nil {
		return xnerr.New(xnerr.ConfigWrite, err, "could not encode config")
	}
	if err := atomic.WriteFile(path, buf); err != nil {
		return xnerr.New(xnerr.ConfigWrite, err, "could not write config %s", path)
	}

	configLogger.Debug("saved project config", "path", path)
	return nil
}
