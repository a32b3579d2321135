// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()

	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name                 string
		acceptEncoding       string
		contentEncoding      string
		requestBody          []byte
		compressRequestBody  bool
		expectedStatus       int
		expectedResponseBody string
		checkResponseGzipped bool
	}{
		{
			name:                 "compress response when client accepts gzip",
			acceptEncoding:       "gzip",
			expectedStatus:       http.StatusOK,
			expectedResponseBody: "echo:",
			checkResponseGzipped: true,
		},
		{
			name:                 "no compression when client doesn't accept gzip",
			expectedStatus:       http.StatusOK,
			expectedResponseBody: "echo:",
		},
		{
			name:                 "accept-encoding with quality values",
			acceptEncoding:       "gzip;q=1.0, identity;q=0.5",
			expectedStatus:       http.StatusOK,
			expectedResponseBody: "echo:",
			checkResponseGzipped: true,
		},
		{
			name:                 "decompress gzipped request body",
			contentEncoding:      "gzip",
			requestBody:          []byte(`{"code":"console.log(1)"}`),
			compressRequestBody:  true,
			expectedStatus:       http.StatusOK,
			expectedResponseBody: `echo:{"code":"console.log(1)"}`,
		},
		{
			name:                 "decompress request and compress response",
			acceptEncoding:       "gzip",
			contentEncoding:      "gzip",
			requestBody:          []byte(strings.Repeat("let x = 1;\n", 200)),
			compressRequestBody:  true,
			expectedStatus:       http.StatusOK,
			expectedResponseBody: "echo:" + strings.Repeat("let x = 1;\n", 200),
			checkResponseGzipped: true,
		},
		{
			name:                "invalid gzip request body",
			contentEncoding:     "gzip",
			requestBody:         []byte("not gzipped data"),
			compressRequestBody: false,
			expectedStatus:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				_, _ = w.Write([]byte("echo:" + string(body)))
			})

			body := tt.requestBody
			if tt.compressRequestBody {
				body = gzipBytes(t, body)
			}
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			if tt.checkResponseGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.expectedResponseBody, gunzip(t, rr.Body.Bytes()))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.expectedResponseBody, rr.Body.String())
		})
	}
}

func TestGZip_EncodingHeaderSetWithoutExplicitWriteHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"files":[]}`))
	})
	req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, `{"files":[]}`, gunzip(t, rr.Body.Bytes()))
}

func TestGZip_NoContentHasNoBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodDelete, "/api/files/x", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Empty(t, rr.Body.Bytes())
}

func TestGZip_HandlerWritesNothing(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.Bytes())
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 512)))
	}))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			zr, err := gzip.NewReader(rr.Body)
			if !assert.NoError(t, err) {
				return
			}
			out, err := io.ReadAll(zr)
			assert.NoError(t, err)
			assert.Len(t, out, 512)
		}()
	}
	wg.Wait()
}

func TestWrappedReadCloser_Close(t *testing.T) {
	called := false
	rc := &wrappedReadCloser{Reader: strings.NewReader("x"), OnClose: func() { called = true }}

	require.NoError(t, rc.Close())
	assert.True(t, called)
	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("x")}).Close())
}

func TestBodyAllowed(t *testing.T) {
	assert.True(t, bodyAllowed(http.StatusOK))
	assert.True(t, bodyAllowed(http.StatusBadRequest))
	assert.False(t, bodyAllowed(http.StatusNoContent))
	assert.False(t, bodyAllowed(http.StatusNotModified))
	assert.False(t, bodyAllowed(http.StatusContinue))
}
