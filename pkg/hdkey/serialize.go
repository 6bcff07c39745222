package hdkey

import (
	"encoding/binary"
	"fmt"

	"github.com/Klingon-tech/klingnet-hd/pkg/crypto"
	"github.com/Klingon-tech/klingnet-hd/pkg/netparams"
)

// Serialized layout: version(4) depth(1) parentFP(4) childNum(4)
// chainCode(32) key(33), followed by a 4-byte checksum.
const (
	serializedKeyLen = 4 + 1 + 4 + 4 + chainCodeSize + 33
	encodedKeyLen    = serializedKeyLen + crypto.ChecksumSize
)

// Serialize returns the base-58 form of k using net's version bytes. A nil
// net uses the key's own network.
func (k *ExtendedKey) Serialize(net *netparams.Params) string {
	if net == nil {
		net = k.net
	}
	v := k.version(net)

	buf := make([]byte, 0, serializedKeyLen)
	buf = append(buf, v[:]...)
	buf = append(buf, k.depth)
	buf = append(buf, k.parentFP[:]...)
	buf = binary.BigEndian.AppendUint32(buf, k.childNum)
	buf = append(buf, k.chainCode...)
	if k.isPrivate {
		buf = append(buf, 0x00)
	}
	buf = append(buf, k.key...)
	return crypto.Base58CheckEncode(buf)
}

// Parse decodes a base-58 extended key. The network is looked up from the
// version bytes; networks sharing versions resolve to the first one in
// netparams.All order.
func Parse(s string) (*ExtendedKey, error) {
	return parse(s, netparams.ByHDVersion)
}

// ParseForNetwork decodes s and requires net's version bytes.
func ParseForNetwork(s string, net *netparams.Params) (*ExtendedKey, error) {
	if net == nil {
		return nil, fmt.Errorf("%w: nil network", netparams.ErrInvalidParams)
	}
	return parse(s, func(v [4]byte) (*netparams.Params, bool, error) {
		switch v {
		case net.HDPrivateKeyID:
			return net, true, nil
		case net.HDPublicKeyID:
			return net, false, nil
		}
		return nil, false, fmt.Errorf("%w: version %x is not %s", ErrWrongNetwork, v[:], net.Name)
	})
}

type versionResolver func(v [4]byte) (*netparams.Params, bool, error)

func parse(s string, resolve versionResolver) (*ExtendedKey, error) {
	raw, err := crypto.Base58Decode(s)
	if err != nil {
		return nil, err
	}
	if len(raw) != encodedKeyLen {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidLength, len(raw), encodedKeyLen)
	}
	payload, err := crypto.VerifyChecksum(raw)
	if err != nil {
		return nil, err
	}

	var version [4]byte
	copy(version[:], payload[:4])
	net, private, err := resolve(version)
	if err != nil {
		return nil, err
	}

	k := &ExtendedKey{
		net:       net,
		depth:     payload[4],
		childNum:  binary.BigEndian.Uint32(payload[9:13]),
		chainCode: append([]byte(nil), payload[13:45]...),
		isPrivate: private,
	}
	copy(k.parentFP[:], payload[5:9])

	if k.depth == 0 && (k.parentFP != [4]byte{} || k.childNum != 0) {
		return nil, fmt.Errorf("%w: master key with non-zero parent fingerprint or index", ErrInvalidKey)
	}

	keyData := payload[45:serializedKeyLen]
	if private {
		if keyData[0] != 0x00 {
			return nil, fmt.Errorf("%w: private key prefix 0x%02x", ErrInvalidKey, keyData[0])
		}
		k.key = append([]byte(nil), keyData[1:]...)
		k.pubKey, err = crypto.ScalarBaseMult(k.key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
		}
	} else {
		if !crypto.IsValidPublicKey(keyData) {
			return nil, fmt.Errorf("%w: public key not on curve", ErrInvalidKey)
		}
		k.key = append([]byte(nil), keyData...)
		k.pubKey = k.key
	}
	return k, nil
}
