package crypto

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// ChecksumSize is the length of the base58check checksum.
const ChecksumSize = 4

var (
	// ErrChecksumMismatch is returned when a base58check checksum does not
	// match its payload.
	ErrChecksumMismatch = errors.New("base58: checksum mismatch")

	// ErrInvalidFormat is returned for text that is not base-58 or too short
	// to carry a checksum.
	ErrInvalidFormat = errors.New("base58: invalid format")
)

// Base58CheckEncode appends the first 4 bytes of DoubleSha256(payload) and
// base-58 encodes the result.
func Base58CheckEncode(payload []byte) string {
	sum := DoubleSha256(payload)
	buf := make([]byte, 0, len(payload)+ChecksumSize)
	buf = append(buf, payload...)
	buf = append(buf, sum[:ChecksumSize]...)
	return base58.Encode(buf)
}

// Base58CheckDecode decodes s and verifies its trailing checksum. The
// returned payload excludes the checksum.
func Base58CheckDecode(s string) ([]byte, error) {
	raw, err := Base58Decode(s)
	if err != nil {
		return nil, err
	}
	return VerifyChecksum(raw)
}

// Base58Decode decodes s without checksum verification.
func Base58Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidFormat)
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return raw, nil
}

// VerifyChecksum checks the 4-byte checksum trailing raw and returns the
// payload before it.
func VerifyChecksum(raw []byte) ([]byte, error) {
	if len(raw) < ChecksumSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidFormat, len(raw))
	}
	payload := raw[:len(raw)-ChecksumSize]
	sum := DoubleSha256(payload)
	if !bytes.Equal(sum[:ChecksumSize], raw[len(raw)-ChecksumSize:]) {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}
