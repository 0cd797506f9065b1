package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetLogger() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

// TestSetVerbose tests toggling verbose mode.
func TestSetVerbose(t *testing.T) {
	defer resetLogger()

	assert.False(t, IsVerbose())
	SetVerbose(true)
	assert.True(t, IsVerbose())
	SetVerbose(false)
	assert.False(t, IsVerbose())
}

// TestDebug_Silent tests that nothing is written when verbose is off.
func TestDebug_Silent(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("hidden %d", 1)
	Info("hidden")
	Warn("hidden")

	assert.Empty(t, buf.String())
}

// TestLevels_Verbose tests message formatting with verbose enabled.
func TestLevels_Verbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("fetched %d posts", 3)
	Info("run complete")
	Warn("comment fetch failed")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] fetched 3 posts\n")
	assert.Contains(t, out, "[INFO] run complete\n")
	assert.Contains(t, out, "[WARN] comment fetch failed\n")
}
