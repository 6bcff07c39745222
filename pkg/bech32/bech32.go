// Package bech32 implements the checksummed base-32 text encoding of
// BIP-173 and its BIP-350 (bech32m) variant.
package bech32

import (
	"strings"
)

// Bech32 charset used for encoding (BIP-173).
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// Encoding limits.
const (
	// MaxLength is the maximum length of a bech32 string used as an address.
	MaxLength = 90

	// MaxHRPLength is the maximum length of the human-readable part.
	MaxHRPLength = 83

	// ChecksumLength is the number of checksum symbols appended to the data.
	ChecksumLength = 6

	// minLength is hrp(1) + separator(1) + checksum(6).
	minLength = 1 + 1 + ChecksumLength
)

// Separator splits the human-readable part from the data part.
const Separator = '1'

// Variant selects the constant the checksum must evaluate to.
type Variant int

const (
	// Bech32 is the original BIP-173 checksum (constant 1).
	Bech32 Variant = iota + 1
	// Bech32m is the BIP-350 checksum (constant 0x2bc830a3).
	Bech32m
)

const (
	bech32Const  uint32 = 1
	bech32mConst uint32 = 0x2bc830a3
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Bech32:
		return "bech32"
	case Bech32m:
		return "bech32m"
	default:
		return "unknown"
	}
}

func (v Variant) constant() uint32 {
	if v == Bech32m {
		return bech32mConst
	}
	return bech32Const
}

// charsetRev maps bech32 characters to their 5-bit values. -1 = invalid.
var charsetRev [128]int8

func init() {
	for i := range charsetRev {
		charsetRev[i] = -1
	}
	for i, c := range charset {
		charsetRev[c] = int8(i)
	}
}

// Encode encodes a human-readable part and 5-bit data values into a bech32
// string. The result is always lower case and at most MaxLength characters.
func Encode(hrp string, data []byte) (string, error) {
	return encode(hrp, data, Bech32, MaxLength)
}

// EncodeM is Encode with the bech32m checksum.
func EncodeM(hrp string, data []byte) (string, error) {
	return encode(hrp, data, Bech32m, MaxLength)
}

// EncodeVariant encodes with an explicit checksum variant.
func EncodeVariant(hrp string, data []byte, v Variant) (string, error) {
	return encode(hrp, data, v, MaxLength)
}

// EncodeNoLimit encodes without the MaxLength bound, for non-address payloads.
func EncodeNoLimit(hrp string, data []byte, v Variant) (string, error) {
	return encode(hrp, data, v, 0)
}

// Decode decodes a bech32 string of at most MaxLength characters and returns
// the lower-case human-readable part and the 5-bit data values without the
// checksum. Only the BIP-173 checksum is accepted.
func Decode(s string) (string, []byte, error) {
	hrp, data, v, err := decode(s, MaxLength)
	if err != nil {
		return "", nil, err
	}
	if v != Bech32 {
		return "", nil, ErrChecksumMismatch
	}
	return hrp, data, nil
}

// DecodeNoLimit is Decode without the MaxLength bound.
func DecodeNoLimit(s string) (string, []byte, error) {
	hrp, data, v, err := decode(s, 0)
	if err != nil {
		return "", nil, err
	}
	if v != Bech32 {
		return "", nil, ErrChecksumMismatch
	}
	return hrp, data, nil
}

// DecodeGeneric decodes a string of at most MaxLength characters whose checksum
// may be either variant and reports which one matched.
func DecodeGeneric(s string) (string, []byte, Variant, error) {
	return decode(s, MaxLength)
}

func encode(hrp string, data []byte, v Variant, limit int) (string, error) {
	hrp, err := normalizeHRP(hrp)
	if err != nil {
		return "", err
	}
	for _, b := range data {
		if b >= 32 {
			return "", invalidDataValue(b)
		}
	}
	total := len(hrp) + 1 + len(data) + ChecksumLength
	if limit > 0 && total > limit {
		return "", tooLong(total, limit)
	}

	chk := createChecksum(hrp, data, v)

	// Build result: hrp + "1" + data + checksum
	var sb strings.Builder
	sb.Grow(total)
	sb.WriteString(hrp)
	sb.WriteByte(Separator)
	for _, b := range data {
		sb.WriteByte(charset[b])
	}
	for _, b := range chk {
		sb.WriteByte(charset[b])
	}
	return sb.String(), nil
}

// normalizeHRP validates an hrp for encoding and returns it lower-cased.
func normalizeHRP(hrp string) (string, error) {
	if len(hrp) == 0 {
		return "", ErrEmptyHRP
	}
	if len(hrp) > MaxHRPLength {
		return "", hrpTooLong(len(hrp))
	}
	hasUpper, hasLower := false, false
	for i := 0; i < len(hrp); i++ {
		c := hrp[i]
		if c < 33 || c > 126 {
			return "", invalidHRPChar(c)
		}
		hasUpper = hasUpper || (c >= 'A' && c <= 'Z')
		hasLower = hasLower || (c >= 'a' && c <= 'z')
	}
	if hasUpper && hasLower {
		return "", ErrMixedCase
	}
	return strings.ToLower(hrp), nil
}

func decode(s string, limit int) (string, []byte, Variant, error) {
	if len(s) < minLength {
		return "", nil, 0, tooShort(len(s))
	}
	if limit > 0 && len(s) > limit {
		return "", nil, 0, tooLong(len(s), limit)
	}

	// Reject mixed case and anything outside printable US-ASCII.
	hasUpper, hasLower := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 33 || c > 126 {
			return "", nil, 0, invalidChar(c, i)
		}
		hasUpper = hasUpper || (c >= 'A' && c <= 'Z')
		hasLower = hasLower || (c >= 'a' && c <= 'z')
	}
	if hasUpper && hasLower {
		return "", nil, 0, ErrMixedCase
	}

	// Work in lowercase.
	s = strings.ToLower(s)

	// Find the last '1' separator.
	sepIdx := strings.LastIndexByte(s, Separator)
	if sepIdx < 1 || sepIdx+ChecksumLength+1 > len(s) {
		return "", nil, 0, separatorAt(sepIdx)
	}
	if sepIdx > MaxHRPLength {
		return "", nil, 0, hrpTooLong(sepIdx)
	}

	hrp := s[:sepIdx]
	dataStr := s[sepIdx+1:]

	data := make([]byte, len(dataStr))
	for i := 0; i < len(dataStr); i++ {
		val := charsetRev[dataStr[i]]
		if val < 0 {
			return "", nil, 0, invalidChar(dataStr[i], sepIdx+1+i)
		}
		data[i] = byte(val)
	}

	var v Variant
	switch polymod(hrpExpand(hrp), data) {
	case bech32Const:
		v = Bech32
	case bech32mConst:
		v = Bech32m
	default:
		return "", nil, 0, ErrChecksumMismatch
	}

	return hrp, data[:len(data)-ChecksumLength], v, nil
}

// polymod computes the BCH checksum over the concatenation of the given
// value slices.
func polymod(parts ...[]byte) uint32 {
	gen := [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}
	chk := uint32(1)
	for _, values := range parts {
		for _, v := range values {
			top := chk >> 25
			chk = (chk&0x1ffffff)<<5 ^ uint32(v)
			for i := 0; i < 5; i++ {
				if (top>>uint(i))&1 == 1 {
					chk ^= gen[i]
				}
			}
		}
	}
	return chk
}

// hrpExpand expands the HRP for checksum computation.
func hrpExpand(hrp string) []byte {
	ret := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]>>5)
	}
	ret = append(ret, 0)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]&31)
	}
	return ret
}

// createChecksum creates the 6-symbol checksum for the given HRP and data.
func createChecksum(hrp string, data []byte, v Variant) []byte {
	var zeros [ChecksumLength]byte
	mod := polymod(hrpExpand(hrp), data, zeros[:]) ^ v.constant()
	ret := make([]byte, ChecksumLength)
	for i := 0; i < ChecksumLength; i++ {
		ret[i] = byte((mod >> uint(5*(5-i))) & 31)
	}
	return ret
}

// VerifyChecksum reports whether data (including its trailing checksum)
// verifies under the given variant for hrp. The hrp must be lower case.
func VerifyChecksum(hrp string, data []byte, v Variant) bool {
	return polymod(hrpExpand(hrp), data) == v.constant()
}
