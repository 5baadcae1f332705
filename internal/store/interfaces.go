// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package store

import (
	"context"
	"encoding/json"
)

// Collection is one named record set as held by a [CollectionStore]: the raw
// JSON array plus the version counter used for optimistic concurrency.
//
// Version semantics: a key that has never been written reads as Version 0
// with empty Records. Every successful Put increments the stored version by
// one; a Put whose Version does not match the stored version fails with
// [ErrVersionConflict] and changes nothing. The underlying storage has no
// cross-key transactions, so multi-collection sequences (reassignment) must
// treat a mid-sequence conflict as a reportable partial failure.
type Collection struct {
	// Records is the stored JSON value, expected to be an array. Malformed
	// payloads are not rejected here; [Load] recovers them as empty.
	Records json.RawMessage

	// Version is the stored version counter at read time.
	Version int64
}

//go:generate mockgen -source=interfaces.go -destination=../mock/collection_store_mock.go -package=mock

// CollectionStore is the storage port behind every record collection. One
// JSON array lives under each fixed key name ("users", "clients", ...).
//
// Implementations must be safe for concurrent use and must enforce the
// version contract documented on [Collection]. The policy layer is written
// purely against this port so persistence can be swapped (memory, file,
// SQLite, PostgreSQL) without touching any access-control logic.
type CollectionStore interface {
	// Get returns the collection stored under key. A missing key yields an
	// empty collection with Version 0, never an error.
	Get(ctx context.Context, key string) (Collection, error)

	// Put replaces the collection stored under key, subject to the version
	// check described on [Collection].
	Put(ctx context.Context, key string, col Collection) error

	// Close releases any resources held by the store.
	Close() error
}
