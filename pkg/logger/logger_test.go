package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// TestNew_JSONConCampoService fuera de development la salida es JSON y cada
// evento lleva el nombre del servicio.
func TestNew_JSONConCampoService(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{
		Env:     "production",
		Level:   "info",
		Service: "almacen-docs",
		Writer:  &buf,
	})

	l.Info().Str("doc_id", "abc-123").Msg("documento creado")

	out := buf.String()
	assert.Contains(t, out, `"service":"almacen-docs"`, "todo evento lleva el servicio")
	assert.Contains(t, out, `"doc_id":"abc-123"`)
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"time"`, "todo evento lleva timestamp")
}

// TestNew_NivelFiltraEventos los eventos por debajo del nivel configurado se
// descartan.
func TestNew_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{
		Env:    "production",
		Level:  "warn",
		Writer: &buf,
	})

	l.Info().Msg("descartado por nivel")
	l.Warn().Msg("visible")

	assert.NotContains(t, buf.String(), "descartado por nivel")
	assert.Contains(t, buf.String(), "visible")
}

// TestNew_NivelDesconocidoUsaInfo un nivel fuera del catálogo cae en info.
func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{
		Env:    "production",
		Level:  "cualquier-cosa",
		Writer: &buf,
	})

	l.Debug().Msg("debug descartado")
	l.Info().Msg("info visible")

	assert.NotContains(t, buf.String(), "debug descartado")
	assert.Contains(t, buf.String(), "info visible")
}
