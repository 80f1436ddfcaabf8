package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CameronXie/store-api/internal/config"
)

func TestNewLogger(t *testing.T) {
	testCases := map[string]struct {
		cfg       config.LoggingConfig
		logDebug  bool
		checkJSON bool
	}{
		"should write json at info level": {
			cfg:       config.LoggingConfig{Level: "info", Format: config.FormatJSON},
			checkJSON: true,
		},
		"should write text at debug level": {
			cfg:      config.LoggingConfig{Level: "debug", Format: config.FormatText},
			logDebug: true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, &tc.cfg)

			logger.Debug("debug_message")
			logger.Info("info_message", "key", "value")

			out := buf.String()
			assert.Equal(t, tc.logDebug, bytes.Contains(buf.Bytes(), []byte("debug_message")))
			assert.Contains(t, out, "info_message")

			if tc.checkJSON {
				var entry map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
				assert.Equal(t, "value", entry["key"])
			} else {
				assert.Contains(t, out, "key=value")
			}
		})
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("STORE_DATABASE_DRIVER", "oracle")
	t.Setenv("STORE_DATABASE_DSN", "x")
	t.Chdir(t.TempDir())

	err := run("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}
