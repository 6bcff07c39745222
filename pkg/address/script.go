package address

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-hd/pkg/crypto"
)

const (
	op0  = 0x00
	op1  = 0x51
	op16 = 0x60
)

// Script returns the output script: version opcode, push length, program.
func (w WitnessProgram) Script() ([]byte, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	script := make([]byte, 0, 2+len(w.Program))
	if w.Version == 0 {
		script = append(script, op0)
	} else {
		script = append(script, op1+w.Version-1)
	}
	script = append(script, byte(len(w.Program)))
	return append(script, w.Program...), nil
}

// ProgramFromScript extracts the witness program from an output script.
func ProgramFromScript(script []byte) (WitnessProgram, error) {
	if len(script) < 2+MinProgramSize || len(script) > 2+MaxProgramSize {
		return WitnessProgram{}, fmt.Errorf("%w: %d bytes", ErrInvalidScript, len(script))
	}

	var version byte
	switch op := script[0]; {
	case op == op0:
		version = 0
	case op >= op1 && op <= op16:
		version = op - op1 + 1
	default:
		return WitnessProgram{}, fmt.Errorf("%w: opcode 0x%02x", ErrInvalidScript, op)
	}
	if int(script[1]) != len(script)-2 {
		return WitnessProgram{}, fmt.Errorf("%w: push of %d, have %d", ErrInvalidScript, script[1], len(script)-2)
	}

	w := WitnessProgram{Version: version, Program: append([]byte(nil), script[2:]...)}
	if err := w.Validate(); err != nil {
		return WitnessProgram{}, err
	}
	return w, nil
}

// P2WPKH returns the version 0 program paying to a compressed public key.
func P2WPKH(pubKey []byte) (WitnessProgram, error) {
	if !crypto.IsValidPublicKey(pubKey) {
		return WitnessProgram{}, ErrInvalidPublicKey
	}
	return WitnessProgram{Version: 0, Program: crypto.Hash160(pubKey)}, nil
}

// P2WSH returns the version 0 program paying to a witness script.
func P2WSH(witnessScript []byte) WitnessProgram {
	h := crypto.Sha256(witnessScript)
	return WitnessProgram{Version: 0, Program: h[:]}
}
