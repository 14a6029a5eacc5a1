package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger()
	l.SetOutput(&buf)

	l.WithFields(logrus.Fields{"b": 2, "a": 1}).Warn("同步失败")

	line := buf.String()
	assert.Contains(t, line, "[WARN]")
	assert.Contains(t, line, "logger_test.go:")
	assert.Contains(t, line, "同步失败 a=1 b=2\n")
}

func TestInitLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pulse.log")

	require.NoError(t, InitLogger("debug", path))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	assert.FileExists(t, path)

	require.NoError(t, InitLogger("nonsense", ""))
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}
