// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-cloud-editor/internal/adapter"
)

// humanizeError turns a remote-call failure into the text of the error
// overlay. Transport failures collapse into a single message.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		return "The server rejected the API key. Check APP_API_KEY."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") ||
		errors.Is(err, adapter.ErrBadGateway) {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
