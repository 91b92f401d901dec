package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, log)
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zapcore.InfoLevel)

	Info("test message", "member_id", 42)

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, `"member_id":42`)
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zapcore.InfoLevel)

	Error("test error")

	assert.Contains(t, buf.String(), "test error")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestDebugFilteredByLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zapcore.InfoLevel)

	Debug("hidden debug")
	assert.NotContains(t, buf.String(), "hidden debug")

	SetOutput(&buf, zapcore.DebugLevel)
	Debugf("visible %s", "debug")
	assert.Contains(t, buf.String(), "visible debug")
}

func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zapcore.InfoLevel)

	Infof("test %s", "message")

	assert.Contains(t, buf.String(), "test message")
}

func TestSetup(t *testing.T) {
	require.NoError(t, Setup(Options{Level: "debug", Format: "console"}))
	require.NoError(t, Setup(Options{Level: "warn", File: filepath.Join(t.TempDir(), "app.log")}))

	err := Setup(Options{Level: "loud"})
	assert.Error(t, err)
}
