package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-hd/config"
	"github.com/Klingon-tech/klingnet-hd/internal/log"
	"github.com/Klingon-tech/klingnet-hd/pkg/hdkey"
	"github.com/Klingon-tech/klingnet-hd/pkg/mnemonic"
	"github.com/Klingon-tech/klingnet-hd/pkg/netparams"
	"github.com/rs/zerolog"
)

// Change branches.
// Full path: m/purpose'/coin'/account'/change/index
const (
	// ChangeExternal is for receiving addresses.
	ChangeExternal = 0

	// ChangeInternal is for change addresses.
	ChangeInternal = 1
)

// Wallet is an HD account tree for one network and purpose.
//
// A Wallet is immutable once opened and safe for concurrent use.
type Wallet struct {
	net       *netparams.Params
	purpose   uint32
	lookahead int

	// master is nil for watch-only wallets.
	master *hdkey.ExtendedKey

	// watched is the account key of a watch-only wallet.
	watched        *hdkey.ExtendedKey
	watchedAccount uint32

	log zerolog.Logger
}

// Open builds a wallet from a mnemonic using the network, purpose and
// lookahead in cfg.
func Open(cfg *config.Config, m *mnemonic.Mnemonic) (*Wallet, error) {
	w, err := newWallet(cfg)
	if err != nil {
		return nil, err
	}

	done := log.Benchmark(w.log, "seed")
	master, err := hdkey.FromMnemonic(m, w.net)
	done()
	if err != nil {
		return nil, fmt.Errorf("master key: %w", err)
	}
	w.master = master

	w.log.Info().
		Uint32("purpose", w.purpose).
		Str("fingerprint", fmt.Sprintf("%08x", master.Fingerprint())).
		Msg("Wallet opened")
	return w, nil
}

// OpenWatchOnly builds a wallet that can only derive addresses for the
// account of the given extended key. The key must sit at account depth.
// A private key is neutered first.
func OpenWatchOnly(cfg *config.Config, xpub string) (*Wallet, error) {
	w, err := newWallet(cfg)
	if err != nil {
		return nil, err
	}

	key, err := hdkey.ParseForNetwork(xpub, w.net)
	if err != nil {
		return nil, fmt.Errorf("parse account key: %w", err)
	}
	if key.Depth() != 3 || !key.IsHardened() {
		return nil, fmt.Errorf("%w: key at depth %d is not an account key", ErrInvalidAccount, key.Depth())
	}
	w.watched = key.Neuter()
	w.watchedAccount = key.ChildIndex() - hdkey.HardenedKeyStart

	w.log.Info().
		Uint32("account", w.watchedAccount).
		Msg("Watch-only wallet opened")
	return w, nil
}

func newWallet(cfg *config.Config) (*Wallet, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	net, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	if cfg.Wallet.Purpose != config.PurposeBIP84 && !net.HasLegacyAddresses() {
		return nil, fmt.Errorf("%w: %d on %s", ErrUnsupportedPurpose, cfg.Wallet.Purpose, net.Name)
	}
	return &Wallet{
		net:       net,
		purpose:   cfg.Wallet.Purpose,
		lookahead: cfg.Wallet.Lookahead,
		log:       log.WithNetwork(log.Wallet, net.Name),
	}, nil
}

// Network returns the wallet's network.
func (w *Wallet) Network() *netparams.Params { return w.net }

// Purpose returns the BIP-43 purpose of the account tree.
func (w *Wallet) Purpose() uint32 { return w.purpose }

// IsWatchOnly reports whether the wallet holds no private keys.
func (w *Wallet) IsWatchOnly() bool { return w.master == nil }

// AccountPath returns m/purpose'/coin'/account'.
func (w *Wallet) AccountPath(account uint32) hdkey.Path {
	h := hdkey.HardenedKeyStart
	return hdkey.Path{w.purpose + h, w.net.HDCoinType + h, account + h}
}

// AccountKey returns the extended key for an account. Watch-only wallets
// return the public key of the watched account.
func (w *Wallet) AccountKey(account uint32) (*hdkey.ExtendedKey, error) {
	if account >= hdkey.HardenedKeyStart {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAccount, account)
	}
	if w.master == nil {
		if account != w.watchedAccount {
			return nil, fmt.Errorf("%w: account %d not available", ErrWatchOnly, account)
		}
		return w.watched, nil
	}
	path := w.AccountPath(account)
	key, err := w.master.DerivePath(path...)
	if err != nil {
		return nil, fmt.Errorf("derive account %d: %w", account, err)
	}
	log.HDKey.Debug().
		Str("path", path.String()).
		Str("parent_fp", fmt.Sprintf("%08x", key.ParentFingerprint())).
		Msg("Derived account key")
	return key, nil
}

// AccountXPub returns the serialized public key of an account.
func (w *Wallet) AccountXPub(account uint32) (string, error) {
	key, err := w.AccountKey(account)
	if err != nil {
		return "", err
	}
	return key.Neuter().String(), nil
}
