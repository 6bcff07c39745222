package hdkey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path is a sequence of child indices from a master key.
type Path []uint32

// ParsePath parses "m/44'/0'/0'/0/1". Hardened components end in ', h or H.
func ParsePath(s string) (Path, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if parts[0] != "m" && parts[0] != "M" {
		return nil, fmt.Errorf("%w: %q must start with m", ErrInvalidPath, s)
	}

	path := make(Path, 0, len(parts)-1)
	for _, part := range parts[1:] {
		idx, err := parseComponent(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPath, s, err)
		}
		path = append(path, idx)
	}
	return path, nil
}

func parseComponent(part string) (uint32, error) {
	hardened := false
	if n := len(part); n > 0 {
		switch part[n-1] {
		case '\'', 'h', 'H':
			hardened = true
			part = part[:n-1]
		}
	}
	if part == "" {
		return 0, errors.New("empty component")
	}
	v, err := strconv.ParseUint(part, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("component %q is not an index", part)
	}
	if uint32(v) >= HardenedKeyStart {
		return 0, fmt.Errorf("component %d out of range", v)
	}
	if hardened {
		return uint32(v) + HardenedKeyStart, nil
	}
	return uint32(v), nil
}

// String formats p with ' marking hardened indices.
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, idx := range p {
		sb.WriteByte('/')
		if idx >= HardenedKeyStart {
			sb.WriteString(strconv.FormatUint(uint64(idx-HardenedKeyStart), 10))
			sb.WriteByte('\'')
		} else {
			sb.WriteString(strconv.FormatUint(uint64(idx), 10))
		}
	}
	return sb.String()
}
