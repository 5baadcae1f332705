package utils

import "github.com/google/uuid"

// NewRecordID returns an opaque record identifier of the form
// "<prefix>-<uuid>", e.g. "client-018f63c2-...". Time-ordered v7 UUIDs keep
// newly created records roughly insertion-ordered in storage; the random
// fallback only fires if the OS entropy source fails.
func NewRecordID(prefix string) string {
	v7, err := uuid.NewV7()
	if err != nil {
		return prefix + "-" + uuid.NewString()
	}
	return prefix + "-" + v7.String()
}
