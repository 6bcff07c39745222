package mnemonic

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex: %v", err)
	}
	return b
}

func repeatWords(w string, n int, last string) string {
	return strings.Repeat(w+" ", n) + last
}

// BIP-39 English vectors.
var englishVectors = []struct {
	entropy string
	phrase  string
}{
	{"00000000000000000000000000000000", repeatWords("abandon", 11, "about")},
	{"7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f", "legal winner thank year wave sausage worth useful legal winner thank yellow"},
	{"80808080808080808080808080808080", "letter advice cage absurd amount doctor acoustic avoid letter advice cage above"},
	{"ffffffffffffffffffffffffffffffff", repeatWords("zoo", 11, "wrong")},
	{"0000000000000000000000000000000000000000000000000000000000000000", repeatWords("abandon", 23, "art")},
}

func TestFromEntropy_Vectors(t *testing.T) {
	for _, tt := range englishVectors {
		t.Run(tt.entropy, func(t *testing.T) {
			m, err := FromEntropy(mustHex(t, tt.entropy), English)
			if err != nil {
				t.Fatalf("FromEntropy() error: %v", err)
			}
			if m.Phrase() != tt.phrase {
				t.Errorf("Phrase() = %q, want %q", m.Phrase(), tt.phrase)
			}
			if m.Bits() != len(tt.entropy)*4 {
				t.Errorf("Bits() = %d, want %d", m.Bits(), len(tt.entropy)*4)
			}
		})
	}
}

func TestParse_Vectors(t *testing.T) {
	for _, tt := range englishVectors {
		t.Run(tt.entropy, func(t *testing.T) {
			m, err := Parse(tt.phrase, English, "")
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if hex.EncodeToString(m.Entropy()) != tt.entropy {
				t.Errorf("Entropy() = %x, want %s", m.Entropy(), tt.entropy)
			}
		})
	}
}

func TestSeed_TrezorVector(t *testing.T) {
	m, err := Parse(repeatWords("abandon", 11, "about"), English, "TREZOR")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04"
	if got := hex.EncodeToString(m.Seed()); got != want {
		t.Errorf("Seed() = %s, want %s", got, want)
	}
	if got := hex.EncodeToString(DeriveSeed(m)); got != want {
		t.Errorf("DeriveSeed() = %s, want %s", got, want)
	}
}

func TestSeed_Deterministic(t *testing.T) {
	m, err := FromEntropy(bytes.Repeat([]byte{0x42}, 32), English)
	if err != nil {
		t.Fatalf("FromEntropy() error: %v", err)
	}
	s1 := m.WithPassphrase("pass").Seed()
	s2 := m.WithPassphrase("pass").Seed()
	if !bytes.Equal(s1, s2) {
		t.Error("same phrase and passphrase should give the same seed")
	}
	if len(s1) != SeedSize {
		t.Errorf("seed length = %d, want %d", len(s1), SeedSize)
	}

	s3 := m.WithPassphrase("pasS").Seed()
	if bytes.Equal(s1, s3) {
		t.Error("different passphrase should give a different seed")
	}
	if m.Passphrase() != "" {
		t.Error("WithPassphrase should not modify the receiver")
	}
}

func TestGenerate_AllLengths(t *testing.T) {
	for _, bits := range []int{128, 160, 192, 224, 256} {
		m, err := Generate(bits, English)
		if err != nil {
			t.Fatalf("Generate(%d) error: %v", bits, err)
		}
		wantWords := (bits + bits/32) / 11
		if len(m.Words()) != wantWords {
			t.Errorf("Generate(%d) words = %d, want %d", bits, len(m.Words()), wantWords)
		}

		parsed, err := Parse(m.Phrase(), English, "")
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		if !bytes.Equal(parsed.Entropy(), m.Entropy()) {
			t.Errorf("round trip entropy mismatch for %d bits", bits)
		}
		if parsed.Bits() != bits {
			t.Errorf("Bits() = %d, want %d", parsed.Bits(), bits)
		}
	}
}

func TestGenerate_InvalidBits(t *testing.T) {
	for _, bits := range []int{0, 96, 127, 129, 288} {
		_, err := Generate(bits, English)
		if !errors.Is(err, ErrInvalidEntropyLength) {
			t.Errorf("Generate(%d) error = %v, want %v", bits, err, ErrInvalidEntropyLength)
		}
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Generate(%d) error should be an ErrInvalidLength", bits)
		}
	}
}

func TestGenerate_Unique(t *testing.T) {
	m1, _ := Generate(256, English)
	m2, _ := Generate(256, English)
	if m1.Phrase() == m2.Phrase() {
		t.Error("two generated mnemonics should differ")
	}
}

func TestGenerate_ShortReader(t *testing.T) {
	_, err := generate(bytes.NewReader(make([]byte, 4)), 128, English)
	if err == nil {
		t.Error("expected error for exhausted entropy source")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		lang   Language
		want   error
	}{
		{"empty", "", English, ErrInvalidPhraseLength},
		{"11 words", repeatWords("abandon", 10, "about"), English, ErrInvalidPhraseLength},
		{"13 words", repeatWords("abandon", 12, "about"), English, ErrInvalidPhraseLength},
		{"unknown word", repeatWords("abandon", 11, "abou"), English, ErrUnknownWord},
		{"unknown word autodetect", repeatWords("abandon", 11, "bitcoin"), "", ErrUnknownWord},
		{"bad checksum", repeatWords("abandon", 11, "abandon"), English, ErrChecksumMismatch},
		{"bad checksum 24", repeatWords("zoo", 23, "zoo"), English, ErrChecksumMismatch},
		{"unknown language", repeatWords("abandon", 11, "about"), "klingon", ErrUnknownLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.phrase, tt.lang, "")
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParse_Whitespace(t *testing.T) {
	phrase := "  abandon\tabandon abandon\nabandon abandon abandon abandon abandon abandon abandon abandon   about "
	m, err := Parse(phrase, English, "")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if m.Phrase() != repeatWords("abandon", 11, "about") {
		t.Errorf("Phrase() = %q", m.Phrase())
	}
}

func TestParse_CorruptedWord(t *testing.T) {
	m, err := FromEntropy(mustHex(t, "7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f"), English)
	if err != nil {
		t.Fatalf("FromEntropy() error: %v", err)
	}
	words := m.Words()
	// Replace the last word with one that differs only in the checksum bits.
	words[len(words)-1] = "year"
	if _, err := Parse(strings.Join(words, " "), English, ""); !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("Parse() error = %v, want %v", err, ErrChecksumMismatch)
	}
}

func TestJapanese(t *testing.T) {
	m, err := FromEntropy(make([]byte, 16), Japanese)
	if err != nil {
		t.Fatalf("FromEntropy() error: %v", err)
	}
	phrase := m.Phrase()
	if strings.Count(phrase, "\u3000") != 11 {
		t.Errorf("japanese phrase should be joined by U+3000: %q", phrase)
	}

	first, _ := Word(Japanese, 0)
	if !strings.HasPrefix(phrase, first) {
		t.Errorf("phrase should start with %q", first)
	}

	// Parsing accepts ideographic or ASCII spaces.
	for _, p := range []string{phrase, strings.ReplaceAll(phrase, "\u3000", " ")} {
		parsed, err := Parse(p, "", "")
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		if parsed.Language() != Japanese {
			t.Errorf("Language() = %s, want japanese", parsed.Language())
		}
		if !bytes.Equal(parsed.Entropy(), make([]byte, 16)) {
			t.Errorf("Entropy() = %x", parsed.Entropy())
		}
	}

	// The seed depends on the words only, not the separator.
	a, _ := Parse(phrase, Japanese, "㍍ガバヴァぱばぐゞちぢ十人十色")
	b, _ := Parse(strings.ReplaceAll(phrase, "\u3000", " "), Japanese, "㍍ガバヴァぱばぐゞちぢ十人十色")
	if !bytes.Equal(a.Seed(), b.Seed()) {
		t.Error("seed should not depend on the phrase separator")
	}
	want := mustHex(t, "a262d6fb6122ecf45be09c50492b31f92e9beb7d9a845987a02cefda57a15f9c"+
		"467a17872029a9e92299b5cbdf306e3a0ee620245cbd508959b6cb7ca637bd55")
	if !bytes.Equal(a.Seed(), want) {
		t.Errorf("Seed() = %x, want %x", a.Seed(), want)
	}
	if got := m.WithPassphrase("㍍ガバヴァぱばぐゞちぢ十人十色").Seed(); !bytes.Equal(got, want) {
		t.Errorf("WithPassphrase().Seed() = %x, want %x", got, want)
	}
}

func TestString_Redacted(t *testing.T) {
	m, _ := FromEntropy(make([]byte, 16), English)
	s := m.String()
	if strings.Contains(s, "abandon") {
		t.Errorf("String() leaks the phrase: %s", s)
	}
	if s != "Mnemonic(english, 12 words)" {
		t.Errorf("String() = %q", s)
	}
}

func TestAccessors_ReturnCopies(t *testing.T) {
	m, _ := FromEntropy(make([]byte, 16), English)
	e := m.Entropy()
	e[0] = 0xff
	if m.Entropy()[0] != 0 {
		t.Error("Entropy() should return a copy")
	}
	w := m.Words()
	w[0] = "zoo"
	if m.Words()[0] != "abandon" {
		t.Error("Words() should return a copy")
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(repeatWords("abandon", 11, "about"), English) {
		t.Error("valid phrase reported invalid")
	}
	if IsValid(repeatWords("abandon", 11, "abandon"), English) {
		t.Error("bad checksum reported valid")
	}
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()
	m, _ := Parse(repeatWords("abandon", 11, "about"), English, "TREZOR")
	want := m.Seed()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !bytes.Equal(m.Seed(), want) {
				t.Error("concurrent seed mismatch")
			}
			if _, err := Parse(m.Phrase(), "", ""); err != nil {
				t.Errorf("concurrent Parse() error: %v", err)
			}
		}()
	}
	wg.Wait()
}
