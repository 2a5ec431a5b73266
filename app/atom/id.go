package atom

import "github.com/google/uuid"

// ID is the permanent, universally unique identifier of a feed or entry,
// rendered as a urn:uuid IRI.
type ID struct {
	u uuid.UUID
}

// NewID returns a random (version 4) identifier.
func NewID() ID {
	return ID{u: uuid.New()}
}

// ParseID accepts the urn:uuid form as well as a bare UUID.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, invalid("id", "", "%q: %v", s, err)
	}
	if u == uuid.Nil {
		return ID{}, invalid("id", "", "nil uuid is not a usable identifier")
	}
	return ID{u: u}, nil
}

// NameID returns the name-based (version 5) identifier of name, which is
// the same on every call.
func NameID(name string) ID {
	return ID{u: uuid.NewSHA1(uuid.NameSpaceURL, []byte(name))}
}

// IDFromUUID wraps an existing UUID.
func IDFromUUID(u uuid.UUID) ID {
	return ID{u: u}
}

func (id ID) UUID() uuid.UUID { return id.u }

// IsZero reports whether id was never set.
func (id ID) IsZero() bool { return id.u == uuid.Nil }

func (id ID) String() string { return id.u.URN() }
