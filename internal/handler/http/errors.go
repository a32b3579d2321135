// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the "Bearer <key>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// ErrIntegrityCheckFailed is logged when the HashSHA256 header does not
// match the request body.
var ErrIntegrityCheckFailed = errors.New("integrity check failed")
