package wallet

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/Klingon-tech/klingnet-hd/config"
	"github.com/Klingon-tech/klingnet-hd/pkg/hdkey"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Sealed blob layout:
// version(1) | salt(32) | memory(4) | iterations(4) | parallelism(1) | nonce(24) | ciphertext
const (
	sealVersion = 1
	SaltSize    = 32
	headerSize  = 1 + SaltSize + 4 + 4 + 1

	// maxSealMemory bounds the Argon2 memory (KiB) accepted from a blob.
	maxSealMemory = 4 * 1024 * 1024
)

// SealParams holds Argon2id parameters.
type SealParams struct {
	Memory      uint32 // in KiB
	Iterations  uint32
	Parallelism uint8
}

// DefaultSealParams returns recommended Argon2id parameters.
func DefaultSealParams() SealParams {
	return SealParams{
		Memory:      64 * 1024, // 64 MB
		Iterations:  3,
		Parallelism: 4,
	}
}

func (p SealParams) validate() error {
	if p.Memory == 0 || p.Memory > maxSealMemory || p.Iterations == 0 || p.Parallelism == 0 {
		return fmt.Errorf("argon2 parameters out of range: %+v", p)
	}
	return nil
}

func sealKey(password, salt []byte, p SealParams) []byte {
	return argon2.IDKey(password, salt, p.Iterations, p.Memory, p.Parallelism, chacha20poly1305.KeySize)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// seal encrypts data with password using Argon2id + XChaCha20-Poly1305.
// The header is authenticated as associated data.
func seal(data, password []byte, p SealParams) ([]byte, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	header := make([]byte, 0, headerSize)
	header = append(header, sealVersion)
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	header = append(header, salt...)
	header = binary.LittleEndian.AppendUint32(header, p.Memory)
	header = binary.LittleEndian.AppendUint32(header, p.Iterations)
	header = append(header, p.Parallelism)

	key := sealKey(password, salt, p)
	defer zero(key)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, len(header)+len(nonce)+len(data)+aead.Overhead())
	out = append(out, header...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, data, header), nil
}

// unseal decrypts a blob produced by seal.
func unseal(blob, password []byte) ([]byte, error) {
	nonceSize := chacha20poly1305.NonceSizeX
	minSize := headerSize + nonceSize + chacha20poly1305.Overhead
	if len(blob) < minSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrDecrypt, len(blob), minSize)
	}
	if blob[0] != sealVersion {
		return nil, fmt.Errorf("%w: unknown version %d", ErrDecrypt, blob[0])
	}

	header := blob[:headerSize]
	salt := header[1 : 1+SaltSize]
	p := SealParams{
		Memory:      binary.LittleEndian.Uint32(header[1+SaltSize:]),
		Iterations:  binary.LittleEndian.Uint32(header[1+SaltSize+4:]),
		Parallelism: header[1+SaltSize+8],
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	nonce := blob[headerSize : headerSize+nonceSize]
	ciphertext := blob[headerSize+nonceSize:]

	key := sealKey(password, salt, p)
	defer zero(key)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	plain, err := aead.Open(nil, nonce, ciphertext, header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	return plain, nil
}

// Seal encrypts the wallet's master private key with password.
func (w *Wallet) Seal(password []byte, p SealParams) ([]byte, error) {
	if w.master == nil {
		return nil, ErrWatchOnly
	}
	xprv := []byte(w.master.String())
	defer zero(xprv)
	return seal(xprv, password, p)
}

// OpenSealed restores a wallet from a blob produced by Seal. The master key
// must belong to the configured network.
func OpenSealed(cfg *config.Config, blob, password []byte) (*Wallet, error) {
	w, err := newWallet(cfg)
	if err != nil {
		return nil, err
	}
	xprv, err := unseal(blob, password)
	if err != nil {
		return nil, err
	}
	defer zero(xprv)

	master, err := hdkey.ParseForNetwork(string(xprv), w.net)
	if err != nil {
		return nil, fmt.Errorf("sealed master key: %w", err)
	}
	if !master.IsPrivate() || !master.IsMaster() {
		return nil, fmt.Errorf("%w: sealed key is not a master private key", ErrDecrypt)
	}
	w.master = master

	w.log.Info().
		Uint32("purpose", w.purpose).
		Str("fingerprint", fmt.Sprintf("%08x", master.Fingerprint())).
		Msg("Wallet unsealed")
	return w, nil
}
