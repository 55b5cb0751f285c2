package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns a 32-character lowercase hex identifier, the public id
// format for partners, clients, loans and requests.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
