package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestNew_JSONConServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(Config{Env: "production", Level: "info", Service: "pilotos-api"}, &buf)

	l.Named("orders").Info().Int64("orden_id", 7).Msg("orden creada")

	line := decodeLine(t, &buf)
	assert.Equal(t, "pilotos-api", line["service"])
	assert.Equal(t, "orders", line["component"])
	assert.Equal(t, "orden creada", line["message"])
	assert.EqualValues(t, 7, line["orden_id"])
}

func TestNew_NivelInvalidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(Config{Env: "production", Level: "ruidoso"}, &buf)

	l.Debug().Msg("no debe salir")
	assert.Zero(t, buf.Len())

	l.Info().Msg("sí sale")
	assert.NotZero(t, buf.Len())
}

func TestForStatus_NivelPorCodigo(t *testing.T) {
	cases := map[int]string{200: "info", 404: "warn", 429: "warn", 500: "error"}
	for status, level := range cases {
		var buf bytes.Buffer
		l := newWithWriter(Config{Env: "production", Level: "trace"}, &buf)
		l.ForStatus(status).Msg("x")
		assert.Equal(t, level, decodeLine(t, &buf)["level"], "status %d", status)
	}
}
