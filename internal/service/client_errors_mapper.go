// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-cloud-editor/internal/adapter"
	"github.com/MKhiriev/go-cloud-editor/internal/app"
	"github.com/MKhiriev/go-cloud-editor/internal/tree"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidName:
			return ErrInvalidName
		case app.MsgParentNotFound:
			return tree.ErrParentNotFound
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgFileNotFound:
			return ErrFileNotFound
		case app.MsgFolderNotFound:
			return ErrFolderNotFound
		case app.MsgParentNotFound:
			return tree.ErrParentNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgParentCycle {
			return tree.ErrParentCycle
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
