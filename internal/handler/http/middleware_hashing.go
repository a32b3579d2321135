package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-cloud-editor/internal/app"
	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/utils"
)

// withHashing checks the HashSHA256 header of requests with a body and signs
// every response body with the same key. It is a no-op when no hash key is
// configured.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if len(body) > 0 {
			signature := r.Header.Get(utils.HashHeader)
			if !h.hasher.Verify(body, signature) {
				log.Err(ErrIntegrityCheckFailed).
					Str("func", "*Handler.withHashing").
					Str("hash from request", signature).
					Msg("hashes are not equal")
				utils.WriteError(w, app.MsgInvalidSignature, http.StatusBadRequest)
				return
			}
		}

		sw := &signingResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		sw.flush(h.hasher)
	})
}

// signingResponseWriter buffers the body so that its signature can be sent
// as a header before the body itself.
type signingResponseWriter struct {
	http.ResponseWriter

	status int
	buf    bytes.Buffer
}

func (w *signingResponseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
}

func (w *signingResponseWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

func (w *signingResponseWriter) flush(hasher *utils.Hasher) {
	if w.buf.Len() > 0 {
		w.Header().Set(utils.HashHeader, hasher.SumHex(w.buf.Bytes()))
	}
	w.ResponseWriter.WriteHeader(w.status)
	_, _ = w.ResponseWriter.Write(w.buf.Bytes())
}
