package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		flag      bool
		expectLog bool
	}{
		{name: "silent by default", expectLog: false},
		{name: "flag enables debug", flag: true, expectLog: true},
		{name: "env enables debug", envValue: "1", expectLog: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(DebugEnv, tt.envValue)
			var buf bytes.Buffer
			l := New(&buf, "[list]", tt.flag)

			l.Debug("moved to row %d", 3)

			if tt.expectLog {
				assert.Contains(t, buf.String(), "[list] DEBUG: moved to row 3")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNew_Levels(t *testing.T) {
	t.Setenv(DebugEnv, "")
	var buf bytes.Buffer
	l := New(&buf, "", false)

	l.Info("rows=%d", 20)
	l.Warn("slow frame")
	l.Error("render failed: %v", "boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], " rows=20"))
	assert.True(t, strings.HasSuffix(lines[1], " WARN: slow frame"))
	assert.True(t, strings.HasSuffix(lines[2], " ERROR: render failed: boom"))
}

func TestOpenFile_WritesAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radiodemo.log")
	w := OpenFile(FileOptions{Path: path})

	l := New(w, "[list]", false)
	l.Info("started")
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[list] started")
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()
	l.Info("a")
	l.Warn("b %d", 2)

	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("error"))
	require.Len(t, l.Messages, 2)
	assert.Equal(t, "b 2", l.Messages[1].Message)
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	buf := NewBufferLogger()
	SetDefault(buf)
	Default().Error("x")
	assert.True(t, buf.HasLevel("error"))

	SetDefault(nil)
	assert.NotPanics(t, func() { Default().Info("dropped") })
}
