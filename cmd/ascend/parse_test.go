package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunParseRequiresInput(t *testing.T) {
	parseInputFile = ""

	err := runParse(parseCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--in is required")
}

func TestRunParseMissingFile(t *testing.T) {
	parseInputFile = filepath.Join(t.TempDir(), "missing.pdf")
	defer func() { parseInputFile = "" }()

	err := runParse(parseCmd, nil)
	assert.Error(t, err)
}

func TestWriteOutputToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeOutput(path, []byte(`{"ok": true}`)))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"ok\": true}\n", string(content))
}
