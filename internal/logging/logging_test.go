package logging

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFilePath(t *testing.T) {
	sessionStart := time.Date(2026, 2, 12, 21, 38, 36, 0, time.UTC)

	tests := []struct {
		name    string
		logsDir string
		appName string
		want    string
	}{
		{
			name:    "basic path",
			logsDir: "selectorlogs",
			appName: "profile_selector",
			want:    filepath.Join("selectorlogs", "profile_selector.20260212_213836.log"),
		},
		{
			name:    "relative path with dot",
			logsDir: "./selectorlogs",
			appName: "profile_selector",
			want:    filepath.Join(".", "selectorlogs", "profile_selector.20260212_213836.log"),
		},
		{
			name:    "absolute path",
			logsDir: filepath.Join("/var", "log", "ksts"),
			appName: "profile_selector",
			want:    filepath.Join("/var", "log", "ksts", "profile_selector.20260212_213836.log"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LogFilePath(tt.logsDir, tt.appName, sessionStart)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRotatingFile_Writes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	w := NewRotatingFile(path)
	t.Cleanup(func() { w.Close() })

	n, err := w.Write([]byte("hello\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.FileExists(t, path)
}
