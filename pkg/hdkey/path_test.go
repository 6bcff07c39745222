package hdkey

import (
	"errors"
	"reflect"
	"testing"
)

func TestParsePath(t *testing.T) {
	h := HardenedKeyStart
	tests := []struct {
		in   string
		want Path
		str  string
	}{
		{"m", Path{}, "m"},
		{"m/0", Path{0}, "m/0"},
		{"m/0'", Path{h}, "m/0'"},
		{"m/0h/1H/2'", Path{h, h + 1, h + 2}, "m/0'/1'/2'"},
		{"m/84'/0'/0'/0/1", Path{h + 84, h, h, 0, 1}, "m/84'/0'/0'/0/1"},
		{" M/2147483647'/2147483647 ", Path{h + 2147483647, 2147483647}, "m/2147483647'/2147483647"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePath(tt.in)
			if err != nil {
				t.Fatalf("ParsePath() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePath() = %v, want %v", got, tt.want)
			}
			if got.String() != tt.str {
				t.Errorf("String() = %s, want %s", got.String(), tt.str)
			}
		})
	}
}

func TestParsePath_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"0/1",
		"n/0",
		"m/",
		"m//1",
		"m/'",
		"m/-1",
		"m/+1",
		"m/1x",
		"m/0x10",
		"m/2147483648",
		"m/4294967296'",
		"m/1''",
	} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParsePath(in); !errors.Is(err, ErrInvalidPath) {
				t.Errorf("ParsePath(%q) error = %v, want %v", in, err, ErrInvalidPath)
			}
		})
	}
}

func TestDerivePathString(t *testing.T) {
	master := testMaster(t)
	a, err := master.DerivePathString("m/0'/1/2h")
	if err != nil {
		t.Fatalf("DerivePathString() error: %v", err)
	}
	b, err := master.DerivePath(HardenedKeyStart, 1, HardenedKeyStart+2)
	if err != nil {
		t.Fatalf("DerivePath() error: %v", err)
	}
	if !a.Equal(b) {
		t.Error("DerivePathString should equal DerivePath")
	}

	if _, err := master.DerivePathString("m/x"); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("DerivePathString() error = %v, want %v", err, ErrInvalidPath)
	}
}
