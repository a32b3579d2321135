// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the editor process lifecycle.
//
// It wires the terminal UI with the background workspace refresh worker and
// stops both when the user quits or the process receives a signal.
package client
