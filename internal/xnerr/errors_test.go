package xnerr

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"io/fs"
	"testing"
)

func TestSentinelMatching(t *testing.T) {
	err := New(ConfigNotFound, fs.ErrNotExist, "read %s", "xn.toml")

	assert.ErrorIs(t, err, Sentinel(ConfigNotFound))
	assert.NotErrorIs(t, err, Sentinel(ConfigParse))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWrappedErrorKeepsCode(t *testing.T) {
	err := errors.Wrap(New(EmptyInput, nil, "nothing in src"), "build")

	assert.Equal(t, EmptyInput, CodeOf(err))
	assert.Equal(t, "build: nothing in src", err.Error())
	assert.Equal(t, "(E004) build: nothing in src", FormatWithCode(err))
}

func TestUnclassified(t *testing.T) {
	err := errors.New("plain")

	assert.Equal(t, None, CodeOf(err))
	assert.Equal(t, "plain", FormatWithCode(err))
}

func TestSentinelMessage(t *testing.T) {
	assert.Equal(t, "config not found", Sentinel(ConfigNotFound).Error())
	assert.Equal(t, "ErrCode(99)", ErrCode(99).String())
}
