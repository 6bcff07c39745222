package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-hd/config"
	"github.com/Klingon-tech/klingnet-hd/pkg/address"
	"github.com/Klingon-tech/klingnet-hd/pkg/crypto"
	"github.com/Klingon-tech/klingnet-hd/pkg/hdkey"
)

// AddressInfo is one derived address.
type AddressInfo struct {
	Address   string
	Path      hdkey.Path
	PublicKey []byte
	Change    uint32
	// Index is the child index actually used. It is larger than the
	// requested one when invalid children were skipped.
	Index uint32
}

// DeriveAddress derives the address at m/purpose'/coin'/account'/change/index.
// Indices that yield an invalid key are skipped, so the returned Index may
// exceed the requested one.
func (w *Wallet) DeriveAddress(account, change, index uint32) (*AddressInfo, error) {
	if change != ChangeExternal && change != ChangeInternal {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChange, change)
	}
	if index >= hdkey.HardenedKeyStart {
		return nil, fmt.Errorf("%w: index %d is hardened", hdkey.ErrInvalidPath, index)
	}
	acct, err := w.AccountKey(account)
	if err != nil {
		return nil, err
	}
	branch, err := acct.Derive(change)
	if err != nil {
		return nil, fmt.Errorf("derive change %d: %w", change, err)
	}
	return w.deriveFromBranch(branch, account, change, index)
}

func (w *Wallet) deriveFromBranch(branch *hdkey.ExtendedKey, account, change, index uint32) (*AddressInfo, error) {
	key, used, err := branch.DeriveNonZero(index)
	if err != nil {
		return nil, fmt.Errorf("derive index %d: %w", index, err)
	}
	if used != index {
		w.log.Warn().
			Uint32("account", account).
			Uint32("change", change).
			Uint32("index", index).
			Uint32("used", used).
			Msg("Skipped invalid child index")
	}

	pub := key.PublicKeyBytes()
	addr, err := w.encodeAddress(pub)
	if err != nil {
		return nil, err
	}
	path := append(w.AccountPath(account), change, used)
	return &AddressInfo{
		Address:   addr,
		Path:      path,
		PublicKey: pub,
		Change:    change,
		Index:     used,
	}, nil
}

// Addresses derives count consecutive addresses on a branch starting at
// start. A count of zero or less uses the configured lookahead.
func (w *Wallet) Addresses(account, change, start uint32, count int) ([]*AddressInfo, error) {
	if count <= 0 {
		count = w.lookahead
	}
	if change != ChangeExternal && change != ChangeInternal {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChange, change)
	}
	acct, err := w.AccountKey(account)
	if err != nil {
		return nil, err
	}
	branch, err := acct.Derive(change)
	if err != nil {
		return nil, fmt.Errorf("derive change %d: %w", change, err)
	}

	out := make([]*AddressInfo, 0, count)
	next := start
	for len(out) < count {
		if next >= hdkey.HardenedKeyStart {
			return nil, fmt.Errorf("%w: index %d is hardened", hdkey.ErrInvalidPath, next)
		}
		info, err := w.deriveFromBranch(branch, account, change, next)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
		next = info.Index + 1
	}

	w.log.Debug().
		Uint32("account", account).
		Uint32("change", change).
		Uint32("start", start).
		Int("count", count).
		Msg("Derived addresses")
	return out, nil
}

// encodeAddress renders the address type for the wallet's purpose:
// P2PKH for 44, P2WPKH nested in P2SH for 49 and native P2WPKH for 84.
func (w *Wallet) encodeAddress(pubKey []byte) (string, error) {
	prog, err := address.P2WPKH(pubKey)
	if err != nil {
		return "", err
	}

	switch w.purpose {
	case config.PurposeBIP84:
		return address.Encode(w.net.Bech32HRP, prog.Version, prog.Program)
	case config.PurposeBIP49:
		redeem, err := prog.Script()
		if err != nil {
			return "", err
		}
		return base58Address(w.net.ScriptHashAddrID, crypto.Hash160(redeem)), nil
	case config.PurposeBIP44:
		return base58Address(w.net.PubKeyHashAddrID, prog.Program), nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnsupportedPurpose, w.purpose)
}

func base58Address(version byte, hash []byte) string {
	payload := make([]byte, 0, 1+len(hash))
	payload = append(payload, version)
	payload = append(payload, hash...)
	return crypto.Base58CheckEncode(payload)
}
