package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitializeWritesToFile(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Set(prev) })

	path := filepath.Join(t.TempDir(), "pricing.log")
	err := Initialize(Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	Info("quote resolved", zap.String("final_price", "12240.23"))
	Sync()

	require.FileExists(t, path)
}

func TestInitializeDiscard(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Set(prev) })

	require.NoError(t, Initialize(Config{Level: "info", Output: "discard"}))
	require.NotNil(t, Logger)
	Named("resolver").Debug("ignored")
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Set(prev) })

	require.NoError(t, Initialize(Config{Level: "chatty", Format: "console", Output: "stderr"}))
	require.True(t, Logger.Core().Enabled(zap.InfoLevel))
	require.False(t, Logger.Core().Enabled(zap.DebugLevel))
}

func TestConsoleLevelsWithoutColor(t *testing.T) {
	tests := []struct {
		name    string
		noColor bool
	}{
		{"file output", false},
		{"no color", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := Logger
			t.Cleanup(func() { Set(prev) })

			path := filepath.Join(t.TempDir(), "pricing.log")
			require.NoError(t, Initialize(Config{Level: "info", Format: "console", Output: path, NoColor: tt.noColor}))
			Info("report written", zap.String("size", "2.1 kB"))
			Sync()

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			require.Contains(t, string(data), "INFO")
			require.NotContains(t, string(data), "\x1b[")
		})
	}
}
