package mnemonic

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// Seed stretching parameters.
const (
	SeedSize       = 64
	seedIterations = 2048
	seedSaltPrefix = "mnemonic"
)

// Seed derives the 64-byte seed from the NFKD phrase and passphrase. The
// result is recomputed on every call.
func (m *Mnemonic) Seed() []byte {
	password := norm.NFKD.String(m.Phrase())
	salt := seedSaltPrefix + norm.NFKD.String(m.passphrase)
	return pbkdf2.Key([]byte(password), []byte(salt), seedIterations, SeedSize, sha512.New)
}

// DeriveSeed is m.Seed().
func DeriveSeed(m *Mnemonic) []byte {
	return m.Seed()
}
