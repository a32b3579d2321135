// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildRouter() *chi.Mux {
	ok := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}
	}

	router := chi.NewRouter()
	router.Get("/api/files", ok("list"))
	router.Post("/api/files", ok("create"))
	router.Patch("/api/files/{id}", ok("update"))
	router.Get("/api/version", ok("version"))
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"registered GET", http.MethodGet, "/api/files", http.StatusOK, "list"},
		{"registered POST", http.MethodPost, "/api/files", http.StatusOK, "create"},
		{"registered PATCH with param", http.MethodPatch, "/api/files/42", http.StatusOK, "update"},
		{"unregistered method on exact route", http.MethodDelete, "/api/files", http.StatusNotFound, ""},
		{"unregistered method on param route", http.MethodDelete, "/api/files/42", http.StatusNotFound, ""},
		{"post on read-only route", http.MethodPost, "/api/version", http.StatusNotFound, ""},
		{"unknown path", http.MethodGet, "/api/nothing", http.StatusNotFound, ""},
	}

	router := buildRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}
