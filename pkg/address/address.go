package address

import (
	"errors"
	"fmt"

	"github.com/Klingon-tech/klingnet-hd/pkg/netparams"
)

// Address is a decoded witness address.
type Address struct {
	HRP string
	WitnessProgram
}

// String returns the bech32 encoding, or "" if the address is invalid.
func (a Address) String() string {
	s, err := Encode(a.HRP, a.Version, a.Program)
	if err != nil {
		return ""
	}
	return s
}

// IsForNet reports whether the address hrp belongs to net.
func (a Address) IsForNet(net *netparams.Params) bool {
	return net != nil && a.HRP == net.Bech32HRP
}

// ParseAddress decodes s and checks it belongs to net.
func ParseAddress(s string, net *netparams.Params) (*Address, error) {
	hrp, version, program, err := Decode(s)
	if err != nil {
		return nil, err
	}
	a := &Address{HRP: hrp, WitnessProgram: WitnessProgram{Version: version, Program: program}}
	if !a.IsForNet(net) {
		return nil, fmt.Errorf("%w: hrp %q", ErrWrongNetwork, hrp)
	}
	return a, nil
}

// ParseAddressForNetworks tries each network in order and returns the first
// match. On failure the error joins every per-network error.
func ParseAddressForNetworks(s string, nets ...*netparams.Params) (*Address, *netparams.Params, error) {
	if len(nets) == 0 {
		nets = netparams.All()
	}
	var errs []error
	for i, net := range nets {
		if net == nil {
			errs = append(errs, fmt.Errorf("network %d: %w: nil", i, netparams.ErrInvalidParams))
			continue
		}
		a, err := ParseAddress(s, net)
		if err == nil {
			return a, net, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", net.Name, err))
	}
	return nil, nil, errors.Join(errs...)
}
