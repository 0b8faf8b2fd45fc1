package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, isVerbose bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(isVerbose)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	captureOutput(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	buf := captureOutput(t, true)

	Debug("debug %d", 1)
	Info("info %s", "two")
	Warn("warn %v", true)

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] debug 1\n")
	assert.Contains(t, out, "[INFO] info two\n")
	assert.Contains(t, out, "[WARN] warn true\n")
}

func TestLevels_WhenQuiet(t *testing.T) {
	buf := captureOutput(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	assert.Empty(t, buf.String())
}

func TestError_AlwaysPrinted(t *testing.T) {
	buf := captureOutput(t, false)

	Error("store unavailable: %s", "locked")

	assert.Equal(t, "[ERROR] store unavailable: locked\n", buf.String())
}

func TestSection_WhenVerbose(t *testing.T) {
	buf := captureOutput(t, true)

	Section("Parse")

	assert.Equal(t, "\n=== Parse ===\n", buf.String())
}
