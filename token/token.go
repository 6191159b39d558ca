// Package token models identity-only counters. A token stands for one unit of
// its tier's denomination; only membership in a collection carries meaning.
package token

import "sync/atomic"

// ID uniquely identifies a token for the lifetime of the process
type ID uint64

// Token is an identity-only record
type Token struct {
	ID ID
}

var lastID atomic.Uint64

// NewID returns a fresh, never reused token ID
func NewID() ID {
	return ID(lastID.Add(1))
}

// New creates a token with a fresh ID
func New() Token {
	return Token{ID: NewID()}
}
