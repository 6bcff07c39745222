// Package mnemonic implements BIP-39 mnemonic phrases: entropy to
// checksummed words and back, and passphrase-salted seed stretching.
//
// A Mnemonic is immutable. All functions are safe for concurrent use.
package mnemonic

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Entropy bounds, in bits.
const (
	MinEntropyBits = 128
	MaxEntropyBits = 256
	entropyStep    = 32
	bitsPerWord    = 11
)

// Mnemonic is a validated phrase with its entropy and passphrase.
type Mnemonic struct {
	lang       Language
	bits       int
	entropy    []byte
	indices    []int
	passphrase string
}

func validEntropyBits(bits int) bool {
	return bits >= MinEntropyBits && bits <= MaxEntropyBits && bits%entropyStep == 0
}

// Generate draws bits of entropy from crypto/rand and builds a mnemonic in
// lang. An empty lang means English.
func Generate(bits int, lang Language) (*Mnemonic, error) {
	return generate(rand.Reader, bits, lang)
}

func generate(r io.Reader, bits int, lang Language) (*Mnemonic, error) {
	if !validEntropyBits(bits) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidEntropyLength, bits)
	}
	entropy := make([]byte, bits/8)
	if _, err := io.ReadFull(r, entropy); err != nil {
		return nil, fmt.Errorf("read entropy: %w", err)
	}
	return FromEntropy(entropy, lang)
}

// FromEntropy builds the mnemonic for explicit entropy.
func FromEntropy(entropy []byte, lang Language) (*Mnemonic, error) {
	if lang == "" {
		lang = English
	}
	if _, err := lookup(lang); err != nil {
		return nil, err
	}
	bits := len(entropy) * 8
	if !validEntropyBits(bits) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidEntropyLength, bits)
	}

	// entropy || checksum byte, read as a bit stream.
	stream := make([]byte, 0, len(entropy)+1)
	stream = append(stream, entropy...)
	stream = append(stream, checksumByte(entropy))

	n := (bits + bits/32) / bitsPerWord
	indices := make([]int, n)
	for i := range indices {
		indices[i] = readBits(stream, i*bitsPerWord, bitsPerWord)
	}

	return &Mnemonic{
		lang:    lang,
		bits:    bits,
		entropy: slices.Clone(entropy),
		indices: indices,
	}, nil
}

// Parse validates phrase and recovers its entropy. An empty lang detects the
// language from the words.
func Parse(phrase string, lang Language, passphrase string) (*Mnemonic, error) {
	words := splitPhrase(phrase)
	switch len(words) {
	case 12, 15, 18, 21, 24:
	default:
		return nil, fmt.Errorf("%w: %d words", ErrInvalidPhraseLength, len(words))
	}

	if lang == "" {
		detected, err := DetectLanguage(phrase)
		if err != nil {
			// Report the first unknown English word instead.
			detected = English
		}
		lang = detected
	}
	wl, err := lookup(lang)
	if err != nil {
		return nil, err
	}

	indices := make([]int, len(words))
	for i, w := range words {
		idx, ok := wl.index[w]
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownWord, w, i)
		}
		indices[i] = idx
	}

	total := len(words) * bitsPerWord
	csBits := total / 33
	bits := total - csBits

	stream := make([]byte, (total+7)/8)
	for i, idx := range indices {
		writeBits(stream, i*bitsPerWord, bitsPerWord, idx)
	}
	entropy := stream[:bits/8]
	got := readBits(stream, bits, csBits)
	want := int(checksumByte(entropy) >> (8 - csBits))
	if got != want {
		return nil, ErrChecksumMismatch
	}

	return &Mnemonic{
		lang:       lang,
		bits:       bits,
		entropy:    slices.Clone(entropy),
		indices:    indices,
		passphrase: passphrase,
	}, nil
}

// IsValid reports whether phrase parses in lang.
func IsValid(phrase string, lang Language) bool {
	_, err := Parse(phrase, lang, "")
	return err == nil
}

// checksumByte returns the first byte of SHA-256(entropy). Its top bits/32
// bits are the checksum; with at most 256 bits of entropy they fit in it.
func checksumByte(entropy []byte) byte {
	h := sha256.Sum256(entropy)
	return h[0]
}

// readBits reads n bits starting at bit offset off, most significant first.
func readBits(b []byte, off, n int) int {
	v := 0
	for i := off; i < off+n; i++ {
		v = v<<1 | int(b[i/8]>>(7-uint(i%8))&1)
	}
	return v
}

// writeBits is the inverse of readBits. b must be zeroed at the target bits.
func writeBits(b []byte, off, n, v int) {
	for i := 0; i < n; i++ {
		if v>>(n-1-i)&1 == 1 {
			pos := off + i
			b[pos/8] |= 1 << (7 - uint(pos%8))
		}
	}
}

// WithPassphrase returns a copy of m carrying passphrase.
func (m *Mnemonic) WithPassphrase(passphrase string) *Mnemonic {
	c := *m
	c.entropy = slices.Clone(m.entropy)
	c.indices = slices.Clone(m.indices)
	c.passphrase = passphrase
	return &c
}

// Words returns the phrase words in order.
func (m *Mnemonic) Words() []string {
	wl := tables[m.lang]
	out := make([]string, len(m.indices))
	for i, idx := range m.indices {
		out[i] = wl.words[idx]
	}
	return out
}

// Phrase returns the words joined by the language separator.
func (m *Mnemonic) Phrase() string {
	return strings.Join(m.Words(), m.lang.Separator())
}

// Entropy returns a copy of the entropy bytes.
func (m *Mnemonic) Entropy() []byte {
	return slices.Clone(m.entropy)
}

// Bits returns the entropy size in bits.
func (m *Mnemonic) Bits() int { return m.bits }

// Language returns the wordlist language.
func (m *Mnemonic) Language() Language { return m.lang }

// Passphrase returns the seed passphrase.
func (m *Mnemonic) Passphrase() string { return m.passphrase }

// String does not reveal the phrase.
func (m *Mnemonic) String() string {
	return fmt.Sprintf("Mnemonic(%s, %d words)", m.lang, len(m.indices))
}
