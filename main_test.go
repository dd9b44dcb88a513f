package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	withoutLocalOverride(t)
	dir := t.TempDir()
	logFile := filepath.Join(dir, "coilgun_log.txt")
	tsvFile := filepath.Join(dir, "coilgun.tsv")
	xlsxFile := filepath.Join(dir, "coilgun.xlsx")

	args := []string{"--log-file", logFile, "--tsv", tsvFile, "--xlsx", xlsxFile, "--plot"}

	var out bytes.Buffer
	require.NoError(t, run(args, &out))
	require.NoError(t, run(args, &out))

	text := out.String()
	assert.Contains(t, text, "=== Inputs ===")
	assert.Contains(t, text, "=== Outputs ===")
	assert.Contains(t, text, "Total turns:")
	assert.Contains(t, text, "Peak current:")
	assert.Contains(t, text, "turns per layer")
	assert.Contains(t, text, "log saved: "+logFile)
	assert.Contains(t, text, "xlsx saved: "+xlsxFile)

	b, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(b), "Inputs:\n"))

	b, err = os.ReadFile(tsvFile)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(b)), "\n"), 3)

	_, err = os.Stat(xlsxFile)
	assert.NoError(t, err)
}

func TestRunLayersMode(t *testing.T) {
	withoutLocalOverride(t)

	var out bytes.Buffer
	require.NoError(t, run([]string{"--mode", "layers"}, &out))
	assert.Contains(t, out.String(), "Total turns: 45")
	assert.Contains(t, out.String(), "Turns per layer: 15")
}

func TestRunInit(t *testing.T) {
	withoutLocalOverride(t)
	path := filepath.Join(t.TempDir(), "coilgun.yaml")

	var out bytes.Buffer
	require.NoError(t, run([]string{"--init", path, "--mode", "layers"}, &out))
	assert.Equal(t, "config written: "+path+"\n", out.String())

	cfg, _, err := LoadConfig([]string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, ModeLayers, cfg.Mode)
	assert.Equal(t, DefaultInputs(ModeLayers), cfg.Inputs)
}

func TestRunRejectsInvalidInput(t *testing.T) {
	withoutLocalOverride(t)

	var out bytes.Buffer
	err := run([]string{"--mode", "spiral"}, &out)
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.Empty(t, out.String())
}

func TestRunReportsSaveFailure(t *testing.T) {
	withoutLocalOverride(t)
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "log.txt")

	var out bytes.Buffer
	err := run([]string{"--log-file", missing}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log save:")
	assert.Contains(t, out.String(), "Peak current:")
}
