package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"recyclemart/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"Warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLogLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "debug"
	cfg.Env.Log.Pretty = true

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))

	cfg.Env.Log.Level = "loud"
	_, err = New(Params{Config: cfg})
	assert.Error(t, err)
}

func TestBuildTagsServiceAndEnv(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "info"
	cfg.Env.ServiceName = "recyclemart"
	cfg.Env.Env = "test"

	var buf bytes.Buffer
	logger, err := build(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "recyclemart", record["service"])
	assert.Equal(t, "test", record["env"])
}
