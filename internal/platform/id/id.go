package id

import "github.com/google/uuid"

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

// UUIDv7 yields time-ordered identifiers so task listings sort by creation.
type UUIDv7 struct{}

func (UUIDv7) New() string {
	return uuid.Must(uuid.NewV7()).String()
}
