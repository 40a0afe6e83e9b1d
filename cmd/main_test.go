package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"MEMINFO_SOURCE", "MEMINFO_INTERVAL", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE"} {
		t.Setenv(key, "")
	}
}

func TestRunBadConfig(t *testing.T) {
	clearEnv(t)
	var stderr bytes.Buffer

	code := run([]string{"--interval", "0s"}, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error loading config: config: interval must be positive")
}

func TestRunBadLogFile(t *testing.T) {
	clearEnv(t)
	var stderr bytes.Buffer

	code := run([]string{"--log-file", filepath.Join(t.TempDir(), "missing", "meminfo.log")}, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error setting up logging")
}

func TestRunQuits(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	source := filepath.Join(dir, "meminfo")
	logFile := filepath.Join(dir, "meminfo.log")
	require.NoError(t, os.WriteFile(source, []byte("Dirty: abc kB\nWriteback: 16 kB\n"), 0o644))

	var stderr, screen bytes.Buffer
	code := run([]string{"--source", source, "--log-file", logFile}, &stderr,
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(&screen))
	require.Equal(t, 0, code, stderr.String())
	assert.Empty(t, stderr.String())

	// The log file is closed and holds the diagnostics of the first poll.
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "meminfo starting")
	assert.Contains(t, string(data), `msg="unparseable value" counter=Dirty value=abc`)
}
