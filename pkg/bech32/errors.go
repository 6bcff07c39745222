package bech32

import (
	"errors"
	"fmt"
)

// Error kinds. Specific errors wrap one of these, so callers can match with
// errors.Is on either.
var (
	// ErrInvalidLength is returned when a string, hrp or payload is outside
	// its allowed length bounds.
	ErrInvalidLength = errors.New("bech32: invalid length")

	// ErrInvalidCharacter is returned for symbols outside the alphabet,
	// out-of-range bytes and mixed-case input.
	ErrInvalidCharacter = errors.New("bech32: invalid character")

	// ErrChecksumMismatch is returned when the checksum does not verify.
	ErrChecksumMismatch = errors.New("bech32: checksum mismatch")

	// ErrInvalidPadding is returned by ConvertBits when the leftover bits of
	// an unpadded conversion are non-zero or too many.
	ErrInvalidPadding = errors.New("bech32: invalid padding")

	// ErrInvalidDataRange is returned by ConvertBits for an input value wider
	// than the source group size.
	ErrInvalidDataRange = errors.New("bech32: invalid data range")
)

var (
	// ErrMixedCase is returned when a string mixes upper and lower case.
	ErrMixedCase = fmt.Errorf("%w: mixed case", ErrInvalidCharacter)

	// ErrEmptyHRP is returned when the human-readable part is empty.
	ErrEmptyHRP = fmt.Errorf("%w: empty hrp", ErrInvalidLength)

	// ErrInvalidSeparator is returned when the separator is missing or leaves
	// an empty hrp or a data part shorter than the checksum.
	ErrInvalidSeparator = fmt.Errorf("%w: separator position", ErrInvalidLength)
)

func tooShort(n int) error {
	return fmt.Errorf("%w: %d characters, need at least %d", ErrInvalidLength, n, minLength)
}

func tooLong(n, limit int) error {
	return fmt.Errorf("%w: %d characters, max %d", ErrInvalidLength, n, limit)
}

func hrpTooLong(n int) error {
	return fmt.Errorf("%w: hrp is %d characters, max %d", ErrInvalidLength, n, MaxHRPLength)
}

// invalidHRPChar reports an hrp byte outside 33..126 during encoding. The hrp
// bound is a length/shape constraint of the encoder, hence ErrInvalidLength.
func invalidHRPChar(c byte) error {
	return fmt.Errorf("%w: hrp character 0x%02x out of range", ErrInvalidLength, c)
}

func invalidChar(c byte, pos int) error {
	return fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, c, pos)
}

func invalidDataValue(v byte) error {
	return fmt.Errorf("%w: data value %d exceeds 5 bits", ErrInvalidCharacter, v)
}

func separatorAt(idx int) error {
	if idx < 0 {
		return fmt.Errorf("%w: missing", ErrInvalidSeparator)
	}
	return fmt.Errorf("%w: at %d", ErrInvalidSeparator, idx)
}
