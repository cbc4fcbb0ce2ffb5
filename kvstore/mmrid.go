package kvstore

import (
	"fmt"

	"github.com/google/uuid"
)

// MmrID identifies one MMR namespace within a store. It wraps a UUID so
// namespaces can be minted without coordination and carried in logs or
// storage keys as an opaque, fixed width value.
type MmrID uuid.UUID

// NewMmrID mints a fresh random namespace identifier.
func NewMmrID() MmrID {
	return MmrID(uuid.New())
}

// ParseMmrID parses the canonical string form of a UUID into an MmrID.
func ParseMmrID(s string) (MmrID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return MmrID{}, fmt.Errorf("kvstore: invalid mmr id %q: %w", s, err)
	}
	return MmrID(id), nil
}

// String renders the namespace identifier in canonical UUID form.
func (id MmrID) String() string {
	return uuid.UUID(id).String()
}
