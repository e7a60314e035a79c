package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCheckCmd(t *testing.T) {
	out, err := execute(t, "check")
	require.NoError(t, err)
	assert.Equal(t, "ok: 19 tiles, 54 vertices, 72 edges\n", out)
}

func TestLayoutCmd(t *testing.T) {
	out, err := execute(t, "layout", "--seed", "42")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "seed 42", lines[0])
	assert.Equal(t, 1, strings.Count(out, "desert --"))

	labels := 0
	for _, l := range lines[1:] {
		labels += len(strings.Fields(l)) / 2
	}
	assert.Equal(t, 19, labels)

	again, err := execute(t, "layout", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("", nil)
	require.NoError(t, err, "a missing default file is fine")
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSize)

	path := writeFile(t, "hexboard.yaml", "log:\n  level: warn\n  max_size: 5\n  dev: true\n")
	cfg, err = loadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Log.MaxSize)
	assert.True(t, cfg.Log.Dev)

	t.Setenv("HEXBOARD_LOG_LEVEL", "debug")
	cfg, err = loadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level, "environment beats the file")

	_, err = loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err, "an explicit file must exist")
}

func TestRootCmd_ConfigFlag(t *testing.T) {
	_, err := execute(t, "check", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "read config")
}
