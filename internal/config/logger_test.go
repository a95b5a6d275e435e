package config

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerTo(t *testing.T) {
	tests := []struct {
		name      string
		cfg       LoggerConfig
		expectLog bool
	}{
		{name: "Info level logs info", cfg: LoggerConfig{Level: "info", Format: "json"}, expectLog: true},
		{name: "Error level drops info", cfg: LoggerConfig{Level: "error", Format: "json"}, expectLog: false},
		{name: "Unknown level defaults to info", cfg: LoggerConfig{Level: "loud", Format: "json"}, expectLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLoggerTo(tt.cfg, &buf)

			logger.Info().Str("product_id", "1").Msg("product created")

			if !tt.expectLog {
				assert.Zero(t, buf.Len())
				return
			}

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "frankit", entry["app"])
			assert.Equal(t, "product created", entry["message"])
			assert.Equal(t, "info", entry["level"])
		})
	}
}

func TestNewLoggerTo_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(LoggerConfig{Level: "debug", Format: "console"}, &buf)

	logger.Debug().Msg("console output")

	assert.Contains(t, buf.String(), "console output")
}
