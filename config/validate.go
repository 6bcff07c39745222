package config

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-hd/internal/log"
	"github.com/Klingon-tech/klingnet-hd/pkg/mnemonic"
)

// Validate checks runtime config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.Network == "" {
		return fmt.Errorf("network is required")
	}
	if _, err := cfg.Params(); err != nil {
		return fmt.Errorf("network %q: %w", cfg.Network, err)
	}

	if _, err := mnemonic.Wordlist(mnemonic.Language(cfg.Wallet.Language)); err != nil {
		return fmt.Errorf("wallet.language: %w", err)
	}
	switch cfg.Wallet.EntropyBits {
	case 128, 160, 192, 224, 256:
	default:
		return fmt.Errorf("wallet.entropy_bits must be one of 128, 160, 192, 224, 256")
	}
	switch cfg.Wallet.Purpose {
	case PurposeBIP44, PurposeBIP49, PurposeBIP84:
	default:
		return fmt.Errorf("wallet.purpose must be %d, %d or %d", PurposeBIP44, PurposeBIP49, PurposeBIP84)
	}
	if cfg.Wallet.Account >= 1<<31 {
		return fmt.Errorf("wallet.account must be below 2^31")
	}
	if cfg.Wallet.Lookahead < 1 || cfg.Wallet.Lookahead > MaxLookahead {
		return fmt.Errorf("wallet.lookahead must be in range [1, %d]", MaxLookahead)
	}

	if cfg.Log.Level != "" {
		if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	return nil
}
