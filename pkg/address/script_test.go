package address

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func TestProgramFromScript(t *testing.T) {
	for _, tt := range validAddresses {
		script := mustHex(t, tt.script)
		w, err := ProgramFromScript(script)
		if err != nil {
			t.Fatalf("ProgramFromScript(%s) error: %v", tt.script, err)
		}
		_, version, program, err := Decode(tt.addr)
		if err != nil {
			t.Fatalf("Decode() error: %v", err)
		}
		if w.Version != version || !bytes.Equal(w.Program, program) {
			t.Errorf("ProgramFromScript(%s) = %+v", tt.script, w)
		}
	}
}

func TestProgramFromScript_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   error
	}{
		{"empty", "", ErrInvalidScript},
		{"bad opcode", "4f02751e", ErrInvalidScript},
		{"push mismatch", "0015751e76e8199196d454941c45d1b3a323f1433bd6", ErrInvalidScript},
		{"v0 wrong size", "0010751e76e8199196d454941c45d1b3a323", ErrInvalidProgramLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ProgramFromScript(mustHex(t, tt.script)); !errors.Is(err, tt.want) {
				t.Errorf("ProgramFromScript() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestScript_VersionOpcodes(t *testing.T) {
	for v := byte(0); v <= MaxWitnessVersion; v++ {
		w := WitnessProgram{Version: v, Program: make([]byte, 32)}
		script, err := w.Script()
		if err != nil {
			t.Fatalf("Script(v%d) error: %v", v, err)
		}
		want := byte(0)
		if v > 0 {
			want = 0x50 + v
		}
		if script[0] != want {
			t.Errorf("v%d opcode = 0x%02x, want 0x%02x", v, script[0], want)
		}
	}
}

func TestP2WPKH(t *testing.T) {
	pub := mustHex(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	w, err := P2WPKH(pub)
	if err != nil {
		t.Fatalf("P2WPKH() error: %v", err)
	}
	if hex.EncodeToString(w.Program) != "751e76e8199196d454941c45d1b3a323f1433bd6" {
		t.Errorf("P2WPKH program = %x", w.Program)
	}

	if _, err := P2WPKH(pub[1:]); !errors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("P2WPKH(short) error = %v, want %v", err, ErrInvalidPublicKey)
	}
}

func TestP2WSH(t *testing.T) {
	// BIP-173 P2WSH example: <pubkey> CHECKSIG.
	witnessScript := mustHex(t, "210279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798ac")
	w := P2WSH(witnessScript)
	if w.Version != 0 || len(w.Program) != 32 {
		t.Fatalf("P2WSH() = %+v", w)
	}
	addr, err := Encode("tb", w.Version, w.Program)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if addr != "tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sl5k7" {
		t.Errorf("P2WSH address = %s", addr)
	}
}
