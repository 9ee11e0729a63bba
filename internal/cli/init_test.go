package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/statusbox/internal/config"
	"github.com/rileyhilliard/statusbox/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNonInteractive(t *testing.T) {
	tests := []struct {
		name string
		yes  bool
		env  map[string]string
		want bool
	}{
		{name: "flag", yes: true, want: true},
		{name: "CI", env: map[string]string{"CI": "true"}, want: true},
		{name: "explicit env", env: map[string]string{"STATUSBOX_NON_INTERACTIVE": "1"}, want: true},
		{name: "interactive", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", "")
			t.Setenv("STATUSBOX_NON_INTERACTIVE", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, isNonInteractive(tt.yes))
		})
	}
}

func TestInit_NonInteractiveWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", config.ConfigFileName)

	var out bytes.Buffer
	err := Init(InitOptions{Path: path, NonInteractive: true, Out: &out})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Created "+path)
	assert.Contains(t, out.String(), "statusbox demo")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestInit_ExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	err := Init(InitOptions{Path: path, NonInteractive: true, Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version: 1\n", string(data), "file must be untouched")

	err = Init(InitOptions{Path: path, NonInteractive: true, Overwrite: true, Out: &bytes.Buffer{}})
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "paging:")
}

func TestInitAnswers_Apply(t *testing.T) {
	cfg := config.DefaultConfig()
	a := newInitAnswers(cfg)
	assert.Equal(t, cfg.Demo.LoadDelay.String(), a.loadDelay)

	a.empty = "Nothing yet"
	a.loadDelay = " 750ms "
	a.pageSize = "7"
	a.failEvery = "3"
	a.blockInput = true

	require.NoError(t, a.apply(cfg))
	assert.Equal(t, "Nothing yet", cfg.Hints.Empty)
	assert.Equal(t, 750*time.Millisecond, cfg.Demo.LoadDelay)
	assert.Equal(t, 750*time.Millisecond, cfg.Paging.Delay)
	assert.Equal(t, 7, cfg.Paging.PageSize)
	assert.Equal(t, 3, cfg.Paging.FailEvery)
	assert.True(t, cfg.Box.BlockInput)
}

func TestInitAnswers_ApplyRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*initAnswers)
	}{
		{name: "empty retry", mutate: func(a *initAnswers) { a.retry = "  " }},
		{name: "bad duration", mutate: func(a *initAnswers) { a.loadDelay = "soon" }},
		{name: "negative duration", mutate: func(a *initAnswers) { a.loadDelay = "-1s" }},
		{name: "zero page size", mutate: func(a *initAnswers) { a.pageSize = "0" }},
		{name: "fail every not a number", mutate: func(a *initAnswers) { a.failEvery = "often" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			a := newInitAnswers(cfg)
			tt.mutate(a)

			err := a.apply(cfg)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Equal(t, config.DefaultConfig(), cfg, "config untouched on bad input")
		})
	}
}

func TestInitAnswers_Form(t *testing.T) {
	a := newInitAnswers(config.DefaultConfig())
	assert.NotNil(t, a.form())
}
