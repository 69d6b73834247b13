package identity

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
)

const anonFlag byte = 0xFF
const anonIDLen = len(uuid.UUID{}) + 1

var ErrBadAnon = errors.New("anonymous ID should have exactly " + strconv.Itoa(anonIDLen) + " bytes")

// Anonymous mints a fresh ID for a peer that authenticated nothing.
// Two anonymous peers never compare equal.
func Anonymous() ID {
	return FromUUID(uuid.New())
}

// FromUUID returns the anonymous ID corresponding to the given UUIDv4.
func FromUUID(uid uuid.UUID) ID {
	b := make([]byte, anonIDLen)
	b[0] = anonFlag
	copy(b[1:], uid[:])
	return ID(b)
}

func (id ID) IsAnonymous() bool {
	return len(id) == anonIDLen && id[0] == anonFlag
}

// UUID recovers the UUID behind an anonymous ID.
func (id ID) UUID() (uuid.UUID, error) {
	if !id.IsAnonymous() {
		return uuid.UUID{}, ErrBadAnon
	}
	return uuid.FromBytes([]byte(id[1:]))
}
