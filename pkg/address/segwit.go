// Package address encodes and decodes segregated witness addresses: a witness
// version and program carried in a bech32 string.
package address

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-hd/pkg/bech32"
)

// Witness program bounds.
const (
	MaxWitnessVersion = 16
	MinProgramSize    = 2
	MaxProgramSize    = 40
)

// ChecksumPolicy chooses the bech32 checksum variant per witness version.
type ChecksumPolicy int

const (
	// PolicyBIP173 uses the original bech32 checksum for every version.
	PolicyBIP173 ChecksumPolicy = iota
	// PolicyBIP350 uses bech32 for version 0 and bech32m for versions 1..16.
	PolicyBIP350
)

func (p ChecksumPolicy) variant(version byte) bech32.Variant {
	if p == PolicyBIP350 && version > 0 {
		return bech32.Bech32m
	}
	return bech32.Bech32
}

// WitnessProgram is a witness version and its program bytes.
type WitnessProgram struct {
	Version byte
	Program []byte
}

// Validate checks the version and program length rules.
func (w WitnessProgram) Validate() error {
	return validateProgram(w.Version, w.Program)
}

func validateProgram(version byte, program []byte) error {
	if version > MaxWitnessVersion {
		return fmt.Errorf("%w: %d", ErrInvalidWitnessVersion, version)
	}
	if len(program) < MinProgramSize || len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes", ErrInvalidProgramLength, len(program))
	}
	if version == 0 && len(program) != 20 && len(program) != 32 {
		return fmt.Errorf("%w: version 0 program of %d bytes", ErrInvalidProgramLength, len(program))
	}
	return nil
}

// Encode encodes a witness program under hrp using the BIP-173 checksum.
func Encode(hrp string, version byte, program []byte) (string, error) {
	return EncodeWithPolicy(hrp, version, program, PolicyBIP173)
}

// EncodeWithPolicy is Encode with an explicit checksum policy.
func EncodeWithPolicy(hrp string, version byte, program []byte, policy ChecksumPolicy) (string, error) {
	if err := validateProgram(version, program); err != nil {
		return "", err
	}
	conv, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", err
	}
	data := make([]byte, 0, len(conv)+1)
	data = append(data, version)
	data = append(data, conv...)
	return bech32.EncodeVariant(hrp, data, policy.variant(version))
}

// Decode decodes a witness address and returns its lower-case hrp, version
// and program. Only the BIP-173 checksum is accepted.
func Decode(addr string) (string, byte, []byte, error) {
	return DecodeWithPolicy(addr, PolicyBIP173)
}

// DecodeWithPolicy is Decode with an explicit checksum policy. Under
// PolicyBIP350 a checksum variant that does not match the version is a
// bech32.ErrChecksumMismatch.
func DecodeWithPolicy(addr string, policy ChecksumPolicy) (string, byte, []byte, error) {
	hrp, data, v, err := bech32.DecodeGeneric(addr)
	if err != nil {
		return "", 0, nil, err
	}
	if len(data) < 1 {
		return "", 0, nil, fmt.Errorf("%w: missing witness version", ErrInvalidProgramLength)
	}

	version := data[0]
	if v != policy.variant(version) {
		return "", 0, nil, fmt.Errorf("%w: %s checksum for version %d", bech32.ErrChecksumMismatch, v, version)
	}
	if version > MaxWitnessVersion {
		return "", 0, nil, fmt.Errorf("%w: %d", ErrInvalidWitnessVersion, version)
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return "", 0, nil, err
	}
	if err := validateProgram(version, program); err != nil {
		return "", 0, nil, err
	}
	return hrp, version, program, nil
}
