// Package crypto provides the hash, curve and base-58 primitives used by the
// address and key-derivation packages.
package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // BIP-32 fingerprints are defined over RIPEMD-160.
)

// Hash160Size is the length of a HASH160 digest.
const Hash160Size = ripemd160.Size

// Sha256 computes a SHA-256 hash of the input data.
func Sha256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// DoubleSha256 computes Sha256(Sha256(data)).
func DoubleSha256(data []byte) [32]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// Hash160 computes RIPEMD160(SHA256(data)).
// Used for key fingerprints and P2WPKH programs.
func Hash160(data []byte) []byte {
	sum := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

// HMACSHA512 computes HMAC-SHA512(key, data), split into its left and right
// 32-byte halves.
func HMACSHA512(key, data []byte) (il, ir []byte) {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}
