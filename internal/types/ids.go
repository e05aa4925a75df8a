package types

import (
	"time"

	"github.com/google/uuid"
)

// FormID identifies a form definition.
// String alias enables type safety while maintaining JSON string serialization.
type FormID string

// InstanceID identifies one persisted run of a form. UUIDv7 time-ordering
// ensures sequential IDs cluster in B-tree indexes.
type InstanceID string

// NewInstanceID generates a UUIDv7 instance identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewInstanceID() InstanceID {
	return InstanceID(uuid.Must(uuid.NewV7()).String())
}

// ParseInstanceID validates and converts a string to InstanceID.
// Rejects malformed UUIDs to prevent invalid IDs from entering the system.
func ParseInstanceID(s string) (InstanceID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return InstanceID(s), nil
}

// InstanceIDTime extracts the timestamp embedded in a UUIDv7 ID.
// Returns zero time for invalid UUIDs; caller should check IsZero().
func InstanceIDTime(id InstanceID) time.Time {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return time.Time{}
	}
	sec, nsec := u.Time().UnixTime()
	return time.Unix(sec, nsec)
}
