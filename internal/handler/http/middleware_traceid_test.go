package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cloud-editor/internal/logger"
)

func executeWithTraceID(h *Handler, traceIDHeaderValue string) (*httptest.ResponseRecorder, *http.Request) {
	var capturedReq *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/tree", nil)
	if traceIDHeaderValue != "" {
		req.Header.Set(traceIDHeader, traceIDHeaderValue)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, capturedReq
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
		wantSame       bool
	}{
		{"keeps incoming id", "abc-123", true},
		{"keeps incoming uuid", "550e8400-e29b-41d4-a716-446655440000", true},
		{"generates id when absent", "", false},
	}

	h := &Handler{logger: logger.Nop()}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, req := executeWithTraceID(h, tt.requestTraceID)

			require.NotNil(t, req)
			got := rr.Header().Get(traceIDHeader)
			if tt.wantSame {
				assert.Equal(t, tt.requestTraceID, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestWithTraceID_LoggerInContext(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.NewWriterLogger(&buf, "server")}

	_, req := executeWithTraceID(h, "abc")
	require.NotNil(t, req)
	logger.FromRequest(req).Info().Msg("handled")

	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rr1, _ := executeWithTraceID(h, "")
	rr2, _ := executeWithTraceID(h, "")

	assert.NotEqual(t, rr1.Header().Get(traceIDHeader), rr2.Header().Get(traceIDHeader))
}
