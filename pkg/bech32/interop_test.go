package bech32

import (
	"bytes"
	"testing"

	btcbech32 "github.com/btcsuite/btcd/btcutil/bech32"
	"pgregory.net/rapid"
)

// TestInterop_Btcutil checks encodings against btcutil's implementation.
func TestInterop_Btcutil(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hrp := genHRP(t)
		data := rapid.SliceOfN(rapid.ByteRange(0, 31), 0, 60).Draw(t, "data")

		ours, err := Encode(hrp, data)
		if err != nil {
			t.Fatalf("Encode() error: %v", err)
		}
		theirs, err := btcbech32.Encode(hrp, data)
		if err != nil {
			t.Fatalf("btcutil Encode() error: %v", err)
		}
		if ours != theirs {
			t.Fatalf("Encode() = %q, btcutil = %q", ours, theirs)
		}

		oursM, err := EncodeM(hrp, data)
		if err != nil {
			t.Fatalf("EncodeM() error: %v", err)
		}
		theirsM, err := btcbech32.EncodeM(hrp, data)
		if err != nil {
			t.Fatalf("btcutil EncodeM() error: %v", err)
		}
		if oursM != theirsM {
			t.Fatalf("EncodeM() = %q, btcutil = %q", oursM, theirsM)
		}

		gotHRP, got, err := btcbech32.Decode(ours)
		if err != nil {
			t.Fatalf("btcutil Decode() error: %v", err)
		}
		if gotHRP != hrp || !bytes.Equal(got, data) {
			t.Fatal("btcutil decoded a different payload")
		}
	})
}
