// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

// Package client implements the interactive admin console runtime.
//
// It wires the terminal UI, the server adapter, the in-memory session, and
// the background record refresh into a single process lifecycle.
package client
