package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := New(buf, level, false)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC) }
	return l, buf
}

func TestLevelsFilterMessages(t *testing.T) {
	l, buf := fixedLogger(LevelWarn)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	assert.Equal(t, "[03:04:05.006 WARN] warn 3\n[03:04:05.006 ERROR] error 4\n", buf.String())
}

func TestLevelNoneIsSilent(t *testing.T) {
	l, buf := fixedLogger(LevelNone)
	l.Error("nope")
	assert.Empty(t, buf.String())
}

func TestSetLevel(t *testing.T) {
	l, buf := fixedLogger(LevelError)
	l.SetLevel("debug")
	assert.Equal(t, LevelDebug, l.level)

	l.Debug("visible")
	assert.Contains(t, buf.String(), "DEBUG] visible")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"off":     LevelNone,
		"bogus":   LevelWarn,
		"":        LevelWarn,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
