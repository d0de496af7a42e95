package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{" error ", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	restore := Install(NewWriter(&buf, LevelInfo))
	defer restore()

	Debug("hidden %d", 1)
	Info("shown %d", 2)
	Error("also shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO] shown 2")
	assert.Contains(t, out, "[ERROR] also shown")
}

func TestActionIgnoresLevel(t *testing.T) {
	var buf bytes.Buffer
	restore := Install(NewWriter(&buf, LevelError))
	defer restore()

	Action("perform", "Add \"X\" at 0")
	assert.Contains(t, buf.String(), `[perform] Add "X" at 0`)
}

func TestNoInstanceIsNoop(t *testing.T) {
	restore := Install(nil)
	defer restore()

	assert.NotPanics(t, func() {
		Info("x")
		Action("x", nil)
		SetOutput(&bytes.Buffer{})
		require.NoError(t, Close())
	})
}

func TestNewLoggerCreatesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	l, err := newLogger(Options{Dir: dir, Level: LevelDebug})
	require.NoError(t, err)

	restore := Install(l)
	defer restore()

	Debug("hello")
	Action("copy", "A")
	require.NoError(t, Close())

	main, err := os.ReadFile(filepath.Join(dir, "listedit.log"))
	require.NoError(t, err)
	assert.Contains(t, string(main), "[DEBUG] hello")

	journal, err := os.ReadFile(filepath.Join(dir, "journal.log"))
	require.NoError(t, err)
	assert.Contains(t, string(journal), "[copy] A")
}
