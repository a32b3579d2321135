package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewWriterLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, "server")

	l.Info().Msg("hello")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_GlobalLevelIsDebug(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	NewLogger("level-role")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewClientLogger("client"))
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		name  string
		in    string
		ok    bool
		level zerolog.Level
	}{
		{name: "info", in: "info", ok: true, level: zerolog.InfoLevel},
		{name: "upper case with spaces", in: " WARN ", ok: true, level: zerolog.WarnLevel},
		{name: "empty keeps level", in: "", ok: false, level: zerolog.DebugLevel},
		{name: "unknown keeps level", in: "loud", ok: false, level: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
			assert.Equal(t, tt.ok, SetLevel(tt.in))
			assert.Equal(t, tt.level, zerolog.GlobalLevel())
		})
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWriterLogger(&buf, "inherited-role")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeLine(t, &buf)["role"])
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, "client").Component("sandbox")

	l.Debug().Msg("run")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "sandbox", entry["component"])
}

func TestFromContext(t *testing.T) {
	t.Run("no logger attached", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
		ctx := zl.WithContext(context.Background())

		FromContext(ctx).Info().Msg("from context")

		assert.Equal(t, "abc", decodeLine(t, &buf)["trace_id"])
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-value", decodeLine(t, &buf)["req-key"])
}
