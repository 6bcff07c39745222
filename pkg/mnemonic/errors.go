package mnemonic

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is the generic length error.
	ErrInvalidLength = errors.New("mnemonic: invalid length")

	// ErrInvalidEntropyLength is returned for entropy that is not 128, 160,
	// 192, 224 or 256 bits.
	ErrInvalidEntropyLength = fmt.Errorf("%w: entropy must be 128..256 bits in steps of 32", ErrInvalidLength)

	// ErrInvalidPhraseLength is returned for a word count outside
	// 12, 15, 18, 21, 24.
	ErrInvalidPhraseLength = errors.New("mnemonic: invalid phrase length")

	// ErrUnknownWord is returned for a word missing from the wordlist.
	ErrUnknownWord = errors.New("mnemonic: unknown word")

	// ErrChecksumMismatch is returned when the embedded checksum bits do not
	// match the entropy.
	ErrChecksumMismatch = errors.New("mnemonic: checksum mismatch")

	// ErrUnknownLanguage is returned for a language without a wordlist.
	ErrUnknownLanguage = errors.New("mnemonic: unknown language")
)
