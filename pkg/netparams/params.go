// Package netparams holds the per-network prefixes used by the address and
// extended key codecs.
//
// Built-in networks mirror btcd's chaincfg tables. The package-level values
// are initialised once and must not be modified.
package netparams

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

// Lookup errors.
var (
	ErrUnknownNetwork = errors.New("netparams: unknown network")
	ErrUnknownVersion = errors.New("netparams: unknown extended key version")
	ErrInvalidParams  = errors.New("netparams: invalid parameters")
)

// Params describes one network's encodings.
type Params struct {
	// Name is the canonical network name (e.g. "mainnet").
	Name string

	// Bech32HRP is the human-readable part of segwit addresses.
	Bech32HRP string

	// BIP32 version bytes (xprv/xpub, tprv/tpub, ...).
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// HDCoinType is the BIP-44 coin type (unhardened).
	HDCoinType uint32

	// Base58 address versions. Only set for built-in networks.
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	legacy           bool
}

func fromChaincfg(p *chaincfg.Params) *Params {
	return &Params{
		Name:           p.Name,
		Bech32HRP:      p.Bech32HRPSegwit,
		HDPrivateKeyID: p.HDPrivateKeyID,
		HDPublicKeyID:  p.HDPublicKeyID,
		HDCoinType:     p.HDCoinType,

		PubKeyHashAddrID: p.PubKeyHashAddrID,
		ScriptHashAddrID: p.ScriptHashAddrID,
		legacy:           true,
	}
}

// Built-in networks.
var (
	MainNet = fromChaincfg(&chaincfg.MainNetParams)
	TestNet = fromChaincfg(&chaincfg.TestNet3Params)
	RegTest = fromChaincfg(&chaincfg.RegressionNetParams)
	SimNet  = fromChaincfg(&chaincfg.SimNetParams)
	SigNet  = fromChaincfg(&chaincfg.SigNetParams)
)

// all is ordered by lookup priority. Testnet precedes regtest and signet,
// which reuse its extended key versions.
var all = []*Params{MainNet, TestNet, RegTest, SimNet, SigNet}

var aliases = map[string]*Params{
	"main":    MainNet,
	"testnet": TestNet,
	"test":    TestNet,
}

// All returns the built-in networks in lookup order.
func All() []*Params {
	out := make([]*Params, len(all))
	copy(out, all)
	return out
}

// ByName looks up a built-in network by canonical name or alias.
func ByName(name string) (*Params, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range all {
		if p.Name == name {
			return p, nil
		}
	}
	if p, ok := aliases[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}

// ByHDVersion returns the first built-in network whose private or public
// extended key version equals v, and whether v is the private version.
func ByHDVersion(v [4]byte) (*Params, bool, error) {
	for _, p := range all {
		switch v {
		case p.HDPrivateKeyID:
			return p, true, nil
		case p.HDPublicKeyID:
			return p, false, nil
		}
	}
	return nil, false, fmt.Errorf("%w: %x", ErrUnknownVersion, v[:])
}

// ByHRP returns every built-in network using the given segwit hrp.
// The comparison is case-insensitive.
func ByHRP(hrp string) []*Params {
	hrp = strings.ToLower(hrp)
	var out []*Params
	for _, p := range all {
		if p.Bech32HRP == hrp {
			out = append(out, p)
		}
	}
	return out
}

// New builds and validates a custom network definition.
func New(name, hrp string, privID, pubID [4]byte, coinType uint32) (*Params, error) {
	p := &Params{
		Name:           strings.ToLower(name),
		Bech32HRP:      strings.ToLower(hrp),
		HDPrivateKeyID: privID,
		HDPublicKeyID:  pubID,
		HDCoinType:     coinType,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that the parameters can drive the codecs.
func (p *Params) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil", ErrInvalidParams)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidParams)
	}
	if p.Bech32HRP == "" || len(p.Bech32HRP) > 83 {
		return fmt.Errorf("%w: hrp length %d", ErrInvalidParams, len(p.Bech32HRP))
	}
	for i := 0; i < len(p.Bech32HRP); i++ {
		if c := p.Bech32HRP[i]; c < 33 || c > 126 || (c >= 'A' && c <= 'Z') {
			return fmt.Errorf("%w: hrp character %q", ErrInvalidParams, c)
		}
	}
	if p.HDPrivateKeyID == p.HDPublicKeyID {
		return fmt.Errorf("%w: private and public versions are equal", ErrInvalidParams)
	}
	if p.HDCoinType >= 1<<31 {
		return fmt.Errorf("%w: coin type %d is hardened", ErrInvalidParams, p.HDCoinType)
	}
	return nil
}

// HasLegacyAddresses reports whether the base58 address versions are known.
func (p *Params) HasLegacyAddresses() bool {
	return p.legacy
}

// String returns the network name.
func (p *Params) String() string {
	return p.Name
}
