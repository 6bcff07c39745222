package hdkey

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Klingon-tech/klingnet-hd/pkg/crypto"
)

// Derive returns the child at index. Indices at or above HardenedKeyStart
// are hardened and need a private parent.
//
// A private parent yields a private child (IL + k mod n); a public parent
// yields a public child (IL*G + K). If IL is not below the curve order or
// the child is zero or the point at infinity, ErrInvalidKey is returned and
// the caller should move on to the next index (see DeriveNonZero).
func (k *ExtendedKey) Derive(index uint32) (*ExtendedKey, error) {
	if k.depth == MaxDepth {
		return nil, ErrDepthExceeded
	}
	hardened := index >= HardenedKeyStart
	if hardened && !k.isPrivate {
		return nil, ErrDeriveHardFromPublic
	}

	// Hardened: 0x00 || ser256(k) || ser32(i). Normal: serP(K) || ser32(i).
	data := make([]byte, 0, 1+32+4)
	if hardened {
		data = append(data, 0x00)
		data = append(data, k.key...)
	} else {
		data = append(data, k.pubKey...)
	}
	data = binary.BigEndian.AppendUint32(data, index)

	il, ir := crypto.HMACSHA512(k.chainCode, data)
	if !crypto.IsValidScalar(il) {
		return nil, fmt.Errorf("%w: IL out of range at index %d", ErrInvalidKey, index)
	}

	var childKey, childPub []byte
	var err error
	if k.isPrivate {
		childKey, err = crypto.AddScalars(il, k.key)
		if err != nil {
			return nil, fmt.Errorf("%w: index %d: %w", ErrInvalidKey, index, err)
		}
		childPub, err = crypto.ScalarBaseMult(childKey)
		if err != nil {
			return nil, fmt.Errorf("%w: index %d: %w", ErrInvalidKey, index, err)
		}
	} else {
		childKey, err = crypto.AddTweakToPoint(il, k.key)
		if err != nil {
			return nil, fmt.Errorf("%w: index %d: %w", ErrInvalidKey, index, err)
		}
		childPub = childKey
	}

	child := &ExtendedKey{
		net:       k.net,
		key:       childKey,
		pubKey:    childPub,
		chainCode: ir,
		depth:     k.depth + 1,
		childNum:  index,
		isPrivate: k.isPrivate,
	}
	copy(child.parentFP[:], crypto.Hash160(k.pubKey)[:4])
	return child, nil
}

// DeriveNonZero derives the first valid child at or after start and returns
// it with the index used. It never crosses from normal into hardened
// indices or past the last hardened index.
func (k *ExtendedKey) DeriveNonZero(start uint32) (*ExtendedKey, uint32, error) {
	hardened := start >= HardenedKeyStart
	for i := start; ; i++ {
		child, err := k.Derive(i)
		if err == nil {
			return child, i, nil
		}
		if !errors.Is(err, ErrInvalidKey) {
			return nil, 0, err
		}
		if (!hardened && i == HardenedKeyStart-1) || i == ^uint32(0) {
			return nil, 0, fmt.Errorf("%w: no valid child after index %d", ErrInvalidKey, start)
		}
	}
}

// DerivePath derives along indices starting at k.
func (k *ExtendedKey) DerivePath(indices ...uint32) (*ExtendedKey, error) {
	cur := k
	for _, idx := range indices {
		child, err := cur.Derive(idx)
		if err != nil {
			return nil, err
		}
		cur = child
	}
	return cur, nil
}

// DerivePathString parses a path such as "m/84'/0'/0'/0/1" and derives
// along it.
func (k *ExtendedKey) DerivePathString(path string) (*ExtendedKey, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return k.DerivePath(p...)
}
