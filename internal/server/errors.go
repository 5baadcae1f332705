// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package server

import "errors"

// errNoListenAddress is returned by NewServer when the configuration names
// no HTTP address to bind.
var errNoListenAddress = errors.New("no listen address configured")
