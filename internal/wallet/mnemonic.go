// Package wallet derives BIP-44 style account trees and addresses from a
// mnemonic or an account xpub.
package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-hd/config"
	"github.com/Klingon-tech/klingnet-hd/internal/log"
	"github.com/Klingon-tech/klingnet-hd/pkg/mnemonic"
)

// GenerateMnemonic creates a new mnemonic with the configured entropy size
// and language.
func GenerateMnemonic(cfg *config.Config) (*mnemonic.Mnemonic, error) {
	m, err := mnemonic.Generate(cfg.Wallet.EntropyBits, mnemonic.Language(cfg.Wallet.Language))
	if err != nil {
		return nil, fmt.Errorf("generate mnemonic: %w", err)
	}
	log.Mnemonic.Debug().
		Str("language", string(m.Language())).
		Int("words", len(m.Words())).
		Msg("Generated mnemonic")
	return m, nil
}

// ValidateMnemonic checks if a phrase is valid in any supported language
// (correct word count, known words, valid checksum).
func ValidateMnemonic(phrase string) bool {
	return mnemonic.IsValid(phrase, "")
}
