package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Klingon-tech/klingnet-hd/internal/log"
)

// LoadFile loads configuration from a .conf file.
// Format: key = value (one per line, # for comments)
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse key = value
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

// Load reads path and applies it on top of Default for the network the file
// names. A missing file yields the mainnet defaults. Logging is initialized
// from the resulting log.* settings.
func Load(path string) (*Config, error) {
	return load(path, "")
}

// LoadDataDir loads the config file inside dir. An empty dir means
// DefaultDataDir. A datadir key in the file overrides dir.
func LoadDataDir(dir string) (*Config, error) {
	if dir == "" {
		dir = DefaultDataDir()
	}
	return load((&Config{DataDir: dir}).ConfigFile(), dir)
}

func load(path, dataDir string) (*Config, error) {
	values, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default(values["network"])
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if err := ApplyFileConfig(cfg, values); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	if err := cfg.InitLogging(); err != nil {
		return nil, err
	}
	log.Config.Debug().
		Str("path", path).
		Int("keys", len(values)).
		Str("network", cfg.Network).
		Msg("Loaded config")
	return cfg, nil
}

// LogFile returns the resolved log file path, or "" when file logging is
// off. Relative paths live under LogsDir.
func (c *Config) LogFile() string {
	if c.Log.File == "" || filepath.IsAbs(c.Log.File) {
		return c.Log.File
	}
	return filepath.Join(c.LogsDir(), c.Log.File)
}

// InitLogging applies the log.* settings to the global logger.
func (c *Config) InitLogging() error {
	file := c.LogFile()
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}
	return log.Init(c.Log.Level, c.Log.JSON, file)
}

// setConfigValue sets a config value by key.
func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	// Core
	case "network":
		cfg.Network = strings.ToLower(value)
	case "datadir":
		cfg.DataDir = value

	// Wallet
	case "wallet.language":
		cfg.Wallet.Language = strings.ToLower(value)
	case "wallet.entropy_bits":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Wallet.EntropyBits = n
	case "wallet.purpose":
		n, err := parseUint32(value)
		if err != nil {
			return err
		}
		cfg.Wallet.Purpose = n
	case "wallet.account":
		n, err := parseUint32(value)
		if err != nil {
			return err
		}
		cfg.Wallet.Account = n
	case "wallet.lookahead":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Wallet.Lookahead = n

	// Custom network
	case "custom.name":
		cfg.Custom.Name = strings.ToLower(value)
	case "custom.hrp":
		cfg.Custom.HRP = value
	case "custom.xprv":
		cfg.Custom.XPrv = value
	case "custom.xpub":
		cfg.Custom.XPub = value
	case "custom.cointype":
		n, err := parseUint32(value)
		if err != nil {
			return err
		}
		cfg.Custom.CoinType = n

	// Logging
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	default:
		// Unknown keys are ignored
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

func parseUint32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

// WriteDefaultConfig writes a default configuration file.
func WriteDefaultConfig(path string, network string) error {
	content := `# Klingnet HD Wallet Configuration
#
# This file holds derivation settings only.
# Mnemonic phrases and passphrases never belong here.

# Network: mainnet, testnet3, regtest, simnet, signet or a custom.name
network = ` + network + `

# Data directory (default: ~/.klingnet-hd)
# datadir = ~/.klingnet-hd

# ============================================================================
# Wallet
# ============================================================================

# Mnemonic wordlist: english, japanese, chinese-simplified,
# chinese-traditional, french, italian, spanish, korean, czech
wallet.language = english

# Entropy for new mnemonics: 128, 160, 192, 224 or 256
wallet.entropy_bits = 256

# Derivation purpose: 44, 49 or 84
wallet.purpose = 84
wallet.account = 0

# Addresses derived per batch
wallet.lookahead = 20

# ============================================================================
# Custom Network
# ============================================================================

# custom.name = mychain
# custom.hrp = my
# custom.xprv = 0488ade4
# custom.xpub = 0488b21e
# custom.cointype = 1

# ============================================================================
# Logging
# ============================================================================

# Level: trace, debug, info, warn, error, off
log.level = info
# Relative paths resolve under <datadir>/logs
# log.file = hd.log
log.json = false
`
	return os.WriteFile(path, []byte(content), 0644)
}
