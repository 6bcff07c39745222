package address

import (
	"errors"

	"github.com/Klingon-tech/klingnet-hd/pkg/bech32"
)

var (
	// ErrInvalidWitnessVersion is returned for a witness version above 16.
	ErrInvalidWitnessVersion = errors.New("address: invalid witness version")

	// ErrInvalidProgramLength is returned for a program outside 2..40 bytes
	// or a version 0 program that is neither 20 nor 32 bytes.
	ErrInvalidProgramLength = errors.New("address: invalid program length")

	// ErrInvalidPadding is the bech32 regrouping padding error.
	ErrInvalidPadding = bech32.ErrInvalidPadding

	// ErrWrongNetwork is returned when an address hrp does not belong to the
	// requested network.
	ErrWrongNetwork = errors.New("address: wrong network")

	// ErrInvalidScript is returned when an output script is not a witness
	// program.
	ErrInvalidScript = errors.New("address: not a witness program script")

	// ErrInvalidPublicKey is returned by P2WPKH for anything but a valid
	// compressed public key.
	ErrInvalidPublicKey = errors.New("address: invalid public key")
)
