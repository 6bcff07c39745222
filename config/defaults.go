package config

import "github.com/Klingon-tech/klingnet-hd/pkg/netparams"

// DefaultMainnet returns the default configuration for mainnet.
func DefaultMainnet() *Config {
	return &Config{
		Network: netparams.MainNet.Name,
		DataDir: DefaultDataDir(),
		Wallet: WalletConfig{
			Language:    "english",
			EntropyBits: 256,
			Purpose:     PurposeBIP84,
			Account:     0,
			Lookahead:   20,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}

// DefaultTestnet returns the default configuration for testnet3.
func DefaultTestnet() *Config {
	cfg := DefaultMainnet()
	cfg.Network = netparams.TestNet.Name
	return cfg
}

// Default returns the default configuration for the given network name.
// Unknown names keep the mainnet wallet defaults.
func Default(network string) *Config {
	cfg := DefaultMainnet()
	if p, err := netparams.ByName(network); err == nil {
		cfg.Network = p.Name
	} else if network != "" {
		cfg.Network = network
	}
	return cfg
}
