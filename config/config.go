// Package config handles wallet toolkit configuration.
//
// Settings are read from a key = value file and applied on top of the
// defaults for the selected network. Secrets (phrases, passphrases) are never
// part of the configuration.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Klingon-tech/klingnet-hd/pkg/netparams"
)

// Config holds the runtime configuration.
type Config struct {
	// Core
	Network string `conf:"network"`
	DataDir string `conf:"datadir"`

	// Wallet derivation
	Wallet WalletConfig

	// Custom network definition, used when Network names it.
	Custom CustomNetConfig

	// Logging
	Log LogConfig
}

// BIP-43 purposes supported for account derivation.
const (
	PurposeBIP44 uint32 = 44 // legacy P2PKH
	PurposeBIP49 uint32 = 49 // P2WPKH nested in P2SH
	PurposeBIP84 uint32 = 84 // native P2WPKH
)

// MaxLookahead caps the number of addresses derived per batch.
const MaxLookahead = 10000

// WalletConfig holds mnemonic and account settings.
type WalletConfig struct {
	Language    string `conf:"wallet.language"`
	EntropyBits int    `conf:"wallet.entropy_bits"`
	Purpose     uint32 `conf:"wallet.purpose"`
	Account     uint32 `conf:"wallet.account"`
	Lookahead   int    `conf:"wallet.lookahead"`
}

// CustomNetConfig describes a network missing from the built-in tables.
type CustomNetConfig struct {
	Name     string `conf:"custom.name"`
	HRP      string `conf:"custom.hrp"`
	XPrv     string `conf:"custom.xprv"` // 4-byte version, hex
	XPub     string `conf:"custom.xpub"` // 4-byte version, hex
	CoinType uint32 `conf:"custom.cointype"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// Params resolves the configured network.
func (c *Config) Params() (*netparams.Params, error) {
	if p, err := netparams.ByName(c.Network); err == nil {
		return p, nil
	}
	if c.Custom.Name == "" || !strings.EqualFold(c.Custom.Name, c.Network) {
		return nil, fmt.Errorf("%w: %q", netparams.ErrUnknownNetwork, c.Network)
	}
	priv, err := parseVersion(c.Custom.XPrv)
	if err != nil {
		return nil, fmt.Errorf("custom.xprv: %w", err)
	}
	pub, err := parseVersion(c.Custom.XPub)
	if err != nil {
		return nil, fmt.Errorf("custom.xpub: %w", err)
	}
	return netparams.New(c.Custom.Name, c.Custom.HRP, priv, pub, c.Custom.CoinType)
}

// parseVersion decodes 8 hex characters into extended key version bytes.
func parseVersion(s string) ([4]byte, error) {
	var v [4]byte
	b, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(s), "0x"))
	if err != nil || len(b) != len(v) {
		return v, fmt.Errorf("must be 8 hex characters, got %q", s)
	}
	copy(v[:], b)
	return v, nil
}

// =============================================================================
// Directory helpers
// =============================================================================

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.klingnet-hd
//	macOS:   ~/Library/Application Support/KlingnetHD
//	Windows: %APPDATA%\KlingnetHD
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".klingnet-hd"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "KlingnetHD")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "KlingnetHD")
		}
		return filepath.Join(home, "AppData", "Roaming", "KlingnetHD")
	default:
		return filepath.Join(home, ".klingnet-hd")
	}
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "klingnet-hd.conf")
}

// LogsDir returns the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}
