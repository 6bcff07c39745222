// Package hdkey implements BIP-32 hierarchical deterministic keys: master key
// generation, private and public child derivation, and the base-58
// serialization of extended keys.
//
// Extended keys are immutable. Derivation returns new keys and accessors
// return copies, so keys may be shared between goroutines.
package hdkey

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/Klingon-tech/klingnet-hd/pkg/crypto"
	"github.com/Klingon-tech/klingnet-hd/pkg/mnemonic"
	"github.com/Klingon-tech/klingnet-hd/pkg/netparams"
)

const (
	// HardenedKeyStart is the first hardened child index.
	HardenedKeyStart = uint32(0x80000000)

	// MinSeedBytes and MaxSeedBytes bound the master seed.
	MinSeedBytes = 16
	MaxSeedBytes = 64

	// RecommendedSeedLen is the seed length the BIP recommends.
	RecommendedSeedLen = 32

	// MaxDepth is the deepest level a key can be derived to.
	MaxDepth = 255

	chainCodeSize = 32
)

// masterHMACKey is the HMAC key for master key generation.
var masterHMACKey = []byte("Bitcoin seed")

// ExtendedKey is a private or public BIP-32 node.
type ExtendedKey struct {
	net       *netparams.Params
	key       []byte // 32-byte scalar or 33-byte compressed point
	pubKey    []byte // compressed point, cached
	chainCode []byte
	parentFP  [4]byte
	depth     uint8
	childNum  uint32
	isPrivate bool
}

// NewMaster derives the master private key for seed.
func NewMaster(seed []byte, net *netparams.Params) (*ExtendedKey, error) {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidSeedLength, len(seed))
	}
	if net == nil {
		net = netparams.MainNet
	}

	il, ir := crypto.HMACSHA512(masterHMACKey, seed)
	pub, err := crypto.ScalarBaseMult(il)
	if err != nil {
		return nil, fmt.Errorf("%w: master: %w", ErrInvalidKey, err)
	}

	return &ExtendedKey{
		net:       net,
		key:       il,
		pubKey:    pub,
		chainCode: ir,
		isPrivate: true,
	}, nil
}

// FromMnemonic derives the master key for a mnemonic's seed.
func FromMnemonic(m *mnemonic.Mnemonic, net *netparams.Params) (*ExtendedKey, error) {
	return NewMaster(m.Seed(), net)
}

// Neuter returns the public extended key for k. A public key returns itself.
func (k *ExtendedKey) Neuter() *ExtendedKey {
	if !k.isPrivate {
		return k
	}
	return &ExtendedKey{
		net:       k.net,
		key:       k.pubKey,
		pubKey:    k.pubKey,
		chainCode: k.chainCode,
		parentFP:  k.parentFP,
		depth:     k.depth,
		childNum:  k.childNum,
	}
}

// IsPrivate reports whether k holds a private key.
func (k *ExtendedKey) IsPrivate() bool { return k.isPrivate }

// IsMaster reports whether k is a root key.
func (k *ExtendedKey) IsMaster() bool { return k.depth == 0 }

// Depth returns the number of derivations from the master key.
func (k *ExtendedKey) Depth() uint8 { return k.depth }

// ChildIndex returns the index this key was derived at. Hardened indices
// include HardenedKeyStart.
func (k *ExtendedKey) ChildIndex() uint32 { return k.childNum }

// IsHardened reports whether k was derived at a hardened index.
func (k *ExtendedKey) IsHardened() bool { return k.childNum >= HardenedKeyStart }

// ParentFingerprint returns the parent key fingerprint, 0 for the master key.
func (k *ExtendedKey) ParentFingerprint() uint32 {
	return binary.BigEndian.Uint32(k.parentFP[:])
}

// Fingerprint returns the first 4 bytes of HASH160 of k's public key, as a
// big-endian integer.
func (k *ExtendedKey) Fingerprint() uint32 {
	return binary.BigEndian.Uint32(crypto.Hash160(k.pubKey)[:4])
}

// ChainCode returns a copy of the chain code.
func (k *ExtendedKey) ChainCode() []byte { return slices.Clone(k.chainCode) }

// PrivateKeyBytes returns a copy of the 32-byte private key, or nil for a
// public key.
func (k *ExtendedKey) PrivateKeyBytes() []byte {
	if !k.isPrivate {
		return nil
	}
	return slices.Clone(k.key)
}

// PublicKeyBytes returns a copy of the 33-byte compressed public key.
func (k *ExtendedKey) PublicKeyBytes() []byte { return slices.Clone(k.pubKey) }

// Network returns the network the key was created or parsed for.
func (k *ExtendedKey) Network() *netparams.Params { return k.net }

// version returns the serialization version bytes for net.
func (k *ExtendedKey) version(net *netparams.Params) [4]byte {
	if k.isPrivate {
		return net.HDPrivateKeyID
	}
	return net.HDPublicKeyID
}

// Equal reports whether both keys serialize identically on their own
// networks. Networks sharing version bytes are not distinguished.
func (k *ExtendedKey) Equal(o *ExtendedKey) bool {
	if k == nil || o == nil {
		return k == o
	}
	return k.isPrivate == o.isPrivate &&
		k.version(k.net) == o.version(o.net) &&
		k.depth == o.depth &&
		k.childNum == o.childNum &&
		k.parentFP == o.parentFP &&
		bytes.Equal(k.chainCode, o.chainCode) &&
		bytes.Equal(k.key, o.key)
}

// String returns the base-58 serialization on k's network.
func (k *ExtendedKey) String() string {
	return k.Serialize(k.net)
}
