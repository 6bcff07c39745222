package hdkey

import (
	"errors"

	"github.com/Klingon-tech/klingnet-hd/pkg/crypto"
	"github.com/Klingon-tech/klingnet-hd/pkg/netparams"
)

var (
	// ErrInvalidSeedLength is returned for a seed outside 16..64 bytes.
	ErrInvalidSeedLength = errors.New("hdkey: seed length must be between 128 and 512 bits")

	// ErrInvalidKey is returned when a master or child scalar is zero or not
	// below the curve order, a child point is at infinity, or a serialized key
	// field is malformed.
	ErrInvalidKey = errors.New("hdkey: invalid key")

	// ErrDeriveHardFromPublic is returned when a hardened child is requested
	// from a public extended key.
	ErrDeriveHardFromPublic = errors.New("hdkey: cannot derive a hardened key from a public key")

	// ErrDepthExceeded is returned when deriving below depth 255.
	ErrDepthExceeded = errors.New("hdkey: maximum depth exceeded")

	// ErrUnknownVersion is returned when serialized version bytes match no
	// known network.
	ErrUnknownVersion = netparams.ErrUnknownVersion

	// ErrInvalidLength is returned for a serialized key that is not 82 bytes.
	ErrInvalidLength = errors.New("hdkey: invalid serialized key length")

	// ErrChecksumMismatch is returned for a serialized key with a bad
	// checksum.
	ErrChecksumMismatch = crypto.ErrChecksumMismatch

	// ErrInvalidPath is returned for a malformed derivation path.
	ErrInvalidPath = errors.New("hdkey: invalid derivation path")

	// ErrWrongNetwork is returned when a key does not belong to the expected
	// network.
	ErrWrongNetwork = errors.New("hdkey: wrong network")
)
