package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_JSONConCamposFijos(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", App: "obra-offline", Version: "1.2.0", Output: &buf})

	l.Info().Msg("descartado por nivel")
	l.Component("server").Warn().Str("addr", "127.0.0.1:3000").Msg("aviso")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "obra-offline", entry["app"])
	assert.Equal(t, "1.2.0", entry["version"])
	assert.Equal(t, "server", entry["component"])
	assert.Equal(t, "127.0.0.1:3000", entry["addr"])
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.NotPanics(t, func() { l.Component("x").Error().Msg("nada") })
}
