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
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("cualquiera"))
}

func TestComponent_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info").Component("shift")

	l.Debug().Msg("no se escribe")
	l.Info().Str("shift_id", "s1").Msg("turno creado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shift", entry["component"])
	assert.Equal(t, "s1", entry["shift_id"])
	assert.Equal(t, "turno creado", entry["message"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Error().Msg("descartado") })
}
