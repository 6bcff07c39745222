package bech32

import "fmt"

// ConvertBits regroups a sequence of fromBits-wide values into toBits-wide
// values (e.g. 8 and 5).
//
// With pad set, an incomplete trailing group is zero-padded. Without it, the
// leftover must be shorter than fromBits and all zero, otherwise
// ErrInvalidPadding is returned.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, fmt.Errorf("%w: group sizes %d->%d", ErrInvalidDataRange, fromBits, toBits)
	}

	acc := uint32(0)
	bits := uint8(0)
	maxv := uint32(1)<<toBits - 1
	ret := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)

	for _, b := range data {
		if uint32(b)>>fromBits != 0 {
			return nil, fmt.Errorf("%w: value %d wider than %d bits", ErrInvalidDataRange, b, fromBits)
		}
		acc = acc<<fromBits | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			ret = append(ret, byte((acc>>bits)&maxv))
		}
	}

	if pad {
		if bits > 0 {
			ret = append(ret, byte((acc<<(toBits-bits))&maxv))
		}
	} else {
		if bits >= fromBits {
			return nil, fmt.Errorf("%w: %d leftover bits", ErrInvalidPadding, bits)
		}
		if (acc<<(toBits-bits))&maxv != 0 {
			return nil, fmt.Errorf("%w: non-zero padding", ErrInvalidPadding)
		}
	}

	return ret, nil
}

// EncodeFromBase256 converts a byte payload to 5-bit groups and encodes it.
func EncodeFromBase256(hrp string, payload []byte) (string, error) {
	conv, err := ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	return Encode(hrp, conv)
}

// DecodeToBase256 decodes a bech32 string and regroups its data into bytes.
func DecodeToBase256(s string) (string, []byte, error) {
	hrp, data, err := Decode(s)
	if err != nil {
		return "", nil, err
	}
	conv, err := ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, conv, nil
}
