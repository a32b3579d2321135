// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the server handlers and the
// client error mapper.
//
// The server writes these messages into JSON error bodies; the client reads
// them back to tell apart errors that share a status code (a missing file
// and a missing parent folder are both 404s).
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for unexpected server-side failures.
	MsgInternalServerError = "internal server error"

	// MsgMissingAPIKey is returned when /api/* is called without a bearer
	// API key.
	MsgMissingAPIKey = "api key is required"

	// MsgInvalidAPIKey is returned when the bearer API key is expired or its
	// signature does not verify.
	MsgInvalidAPIKey = "api key is expired or invalid"

	// MsgInvalidSignature is returned when the HashSHA256 header does not
	// match the request body.
	MsgInvalidSignature = "invalid request signature"

	MsgFileNotFound   = "file not found"
	MsgFolderNotFound = "folder not found"
	MsgParentNotFound = "parent folder not found"
	MsgAlreadyExists  = "record already exists"

	// MsgParentCycle is returned when a folder would become its own
	// ancestor.
	MsgParentCycle = "folder cannot be moved into itself or its descendants"

	MsgInvalidName      = "invalid name"
	MsgInvalidID        = "invalid id"
	MsgNoFieldsToUpdate = "no fields to update"

	// MsgVersionIsNotSpecified is returned by /api/version when the server
	// was started without a version.
	MsgVersionIsNotSpecified = "version is not specified"
)
