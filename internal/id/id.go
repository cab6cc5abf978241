// Package id provides identifier generation for routes declared without a
// name.
package id

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// UUID generates a random UUID v4 string.
func UUID() string {
	return uuid.NewString()
}

// Short generates a 16-character random hex ID, suitable for user-facing
// contexts where brevity matters.
func Short() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// RouteName returns a generated name for an unnamed route, prefixed so
// generated names are recognizable next to declared ones.
func RouteName() string {
	return "route-" + Short()
}
