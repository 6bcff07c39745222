package address

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Klingon-tech/klingnet-hd/pkg/bech32"
	"pgregory.net/rapid"
)

func genProgram(t *rapid.T) (byte, []byte) {
	version := rapid.ByteRange(0, MaxWitnessVersion).Draw(t, "version")
	var size int
	if version == 0 {
		size = rapid.SampledFrom([]int{20, 32}).Draw(t, "size")
	} else {
		size = rapid.IntRange(MinProgramSize, MaxProgramSize).Draw(t, "size")
	}
	program := rapid.SliceOfN(rapid.Byte(), size, size).Draw(t, "program")
	return version, program
}

func TestProperty_Roundtrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hrp := rapid.SampledFrom([]string{"bc", "tb", "bcrt", "sb"}).Draw(t, "hrp")
		policy := rapid.SampledFrom([]ChecksumPolicy{PolicyBIP173, PolicyBIP350}).Draw(t, "policy")
		version, program := genProgram(t)

		addr, err := EncodeWithPolicy(hrp, version, program, policy)
		if err != nil {
			t.Fatalf("EncodeWithPolicy() error: %v", err)
		}
		gotHRP, gotVersion, gotProgram, err := DecodeWithPolicy(addr, policy)
		if err != nil {
			t.Fatalf("DecodeWithPolicy(%s) error: %v", addr, err)
		}
		if gotHRP != hrp || gotVersion != version || !bytes.Equal(gotProgram, program) {
			t.Fatalf("round trip mismatch for %s", addr)
		}
	})
}

func TestProperty_Corruption(t *testing.T) {
	const alphabet = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	rapid.Check(t, func(t *rapid.T) {
		version, program := genProgram(t)
		addr, err := Encode("bc", version, program)
		if err != nil {
			t.Fatalf("Encode() error: %v", err)
		}

		pos := rapid.IntRange(3, len(addr)-1).Draw(t, "pos")
		repl := alphabet[rapid.IntRange(0, len(alphabet)-1).Draw(t, "repl")]
		if addr[pos] == repl {
			t.Skip("no-op substitution")
		}
		corrupted := addr[:pos] + string(repl) + addr[pos+1:]

		if _, _, _, err := Decode(corrupted); !errors.Is(err, bech32.ErrChecksumMismatch) {
			t.Fatalf("Decode(%s) error = %v, want %v", corrupted, err, bech32.ErrChecksumMismatch)
		}
	})
}
