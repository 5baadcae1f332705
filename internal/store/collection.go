// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agrodesk/agrodesk/internal/logger"
)

// Records pairs a decoded record slice with the collection version it was
// read at. Services read a Records, mutate Items in memory, and write the
// result back through [Save]; the carried version makes lost updates
// detectable instead of silent.
type Records[T any] struct {
	Items   []T
	Version int64
}

// Load reads and decodes the collection under key into a typed record
// slice.
//
// Storage-corrupt recovery: when the stored payload is not valid JSON or
// not an array, the error is logged and an empty slice is returned at the
// stored version. The caller never sees the parse failure; the next Save at
// that version replaces the corrupt payload.
func Load[T any](ctx context.Context, cs CollectionStore, key string) (Records[T], error) {
	log := logger.FromContext(ctx)

	col, err := cs.Get(ctx, key)
	if err != nil {
		return Records[T]{}, fmt.Errorf("loading collection %q: %w", key, err)
	}

	rec := Records[T]{Version: col.Version}
	if len(col.Records) == 0 {
		rec.Items = []T{}
		return rec, nil
	}

	if err := json.Unmarshal(col.Records, &rec.Items); err != nil {
		log.Err(err).Str("collection", key).Msg("stored collection is malformed, substituting empty set")
		rec.Items = []T{}
		return rec, nil
	}
	if rec.Items == nil {
		rec.Items = []T{}
	}

	return rec, nil
}

// Save encodes rec.Items and writes it back under key at rec.Version.
// Returns [ErrVersionConflict] via the underlying store when the collection
// changed since it was loaded.
func Save[T any](ctx context.Context, cs CollectionStore, key string, rec Records[T]) error {
	payload, err := json.Marshal(rec.Items)
	if err != nil {
		return fmt.Errorf("encoding collection %q: %w", key, err)
	}

	if err := cs.Put(ctx, key, Collection{Records: payload, Version: rec.Version}); err != nil {
		return fmt.Errorf("saving collection %q: %w", key, err)
	}
	return nil
}
