package crypto

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Key sizes.
const (
	// PrivateKeySize is the length of a secp256k1 scalar.
	PrivateKeySize = 32

	// PublicKeySize is the length of a compressed secp256k1 point.
	PublicKeySize = 33
)

var (
	// ErrInvalidScalar is returned for a scalar that is zero or not below the
	// curve order.
	ErrInvalidScalar = errors.New("crypto: invalid scalar")

	// ErrInvalidPoint is returned for a malformed public key or a result at
	// the point at infinity.
	ErrInvalidPoint = errors.New("crypto: invalid point")
)

// parseScalar interprets b as a big-endian scalar in [1, n-1].
func parseScalar(b []byte) (*secp256k1.ModNScalar, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidScalar, len(b), PrivateKeySize)
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow {
		return nil, fmt.Errorf("%w: not below curve order", ErrInvalidScalar)
	}
	if s.IsZero() {
		return nil, fmt.Errorf("%w: zero", ErrInvalidScalar)
	}
	return &s, nil
}

// IsValidScalar reports whether b is a 32-byte scalar in [1, n-1].
func IsValidScalar(b []byte) bool {
	_, err := parseScalar(b)
	return err == nil
}

// ScalarBaseMult returns the compressed public key scalar*G.
func ScalarBaseMult(scalar []byte) ([]byte, error) {
	s, err := parseScalar(scalar)
	if err != nil {
		return nil, err
	}
	priv := secp256k1.NewPrivateKey(s)
	defer priv.Zero()
	return priv.PubKey().SerializeCompressed(), nil
}

// AddScalars returns (a + b) mod n. Both inputs must be valid scalars and the
// sum must not be zero.
func AddScalars(a, b []byte) ([]byte, error) {
	sa, err := parseScalar(a)
	if err != nil {
		return nil, err
	}
	sb, err := parseScalar(b)
	if err != nil {
		return nil, err
	}
	sa.Add(sb)
	if sa.IsZero() {
		return nil, fmt.Errorf("%w: sum is zero", ErrInvalidScalar)
	}
	out := sa.Bytes()
	sa.Zero()
	sb.Zero()
	return out[:], nil
}

// AddTweakToPoint returns the compressed point tweak*G + P.
func AddTweakToPoint(tweak, pubKey []byte) ([]byte, error) {
	t, err := parseScalar(tweak)
	if err != nil {
		return nil, err
	}
	p, err := parsePoint(pubKey)
	if err != nil {
		return nil, err
	}

	var tG, pJ, sum secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(t, &tG)
	p.AsJacobian(&pJ)
	secp256k1.AddNonConst(&tG, &pJ, &sum)

	if (sum.X.IsZero() && sum.Y.IsZero()) || sum.Z.IsZero() {
		return nil, fmt.Errorf("%w: point at infinity", ErrInvalidPoint)
	}
	sum.ToAffine()
	return secp256k1.NewPublicKey(&sum.X, &sum.Y).SerializeCompressed(), nil
}

// IsValidPublicKey reports whether b is a compressed point on the curve.
func IsValidPublicKey(b []byte) bool {
	_, err := parsePoint(b)
	return err == nil
}

func parsePoint(b []byte) (*secp256k1.PublicKey, error) {
	if len(b) != PublicKeySize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidPoint, len(b), PublicKeySize)
	}
	if b[0] != 0x02 && b[0] != 0x03 {
		return nil, fmt.Errorf("%w: prefix 0x%02x", ErrInvalidPoint, b[0])
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return pub, nil
}
