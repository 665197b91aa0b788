package project

import (
	"fmt"
	"github.com/cottand/carrier/config"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"path/filepath"
)

func (p *Project) configPath() string {
	return filepath.Join(p.Dir, config.FileName)
}

func (p *Project) unknownKey(key string) {
	_, _ = color.New(color.FgYellow).Fprintf(p.Out, "Unknown config key: %s\n", key)
}

// SetConfig updates key and writes the whole config back.
// An unknown key is reported and leaves the file untouched.
func (p *Project) SetConfig(key, value string) error {
	err := p.Config.Set(key, value)
	if errors.Is(err, config.ErrUnknownKey) {
		p.unknownKey(key)
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "config")
	}
	if err := config.Save(p.Config, p.configPath()); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(p.Out, "Updated config key `%s` to `%s`\n", key, value)
	return nil
}

// GetConfig prints the value of key, or reports it as unknown
func (p *Project) GetConfig(key string) {
	value, err := p.Config.Get(key)
	if err != nil {
		p.unknownKey(key)
		return
	}
	_, _ = fmt.Fprintf(p.Out, "%s = %s\n", key, value)
}

// ShowConfig prints every key, sorted
func (p *Project) ShowConfig() {
	for _, key := range config.Keys() {
		p.GetConfig(key)
	}
}
