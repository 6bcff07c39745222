package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-hd/internal/log"
	"github.com/Klingon-tech/klingnet-hd/pkg/mnemonic"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = mnemonic.SeedSize

// SeedFromMnemonic derives a 512-bit seed from a mnemonic and optional passphrase
// using PBKDF2-SHA512 as specified in BIP-39.
func SeedFromMnemonic(phrase, passphrase string) ([]byte, error) {
	m, err := mnemonic.Parse(phrase, "", passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}
	defer log.Benchmark(log.Mnemonic, "seed")()
	return m.Seed(), nil
}
