package id

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a fresh record ID. IDs are opaque; nothing in the ledger
// derives meaning from them beyond uniqueness.
func New() string {
	return uuid.NewString()
}

// Valid reports whether s looks like an ID produced by New.
func Valid(s string) bool {
	_, err := uuid.Parse(strings.TrimSpace(s))
	return err == nil
}
