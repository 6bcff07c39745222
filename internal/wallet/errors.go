package wallet

import "errors"

var (
	// ErrInvalidMnemonic is returned when a phrase fails BIP-39 validation.
	ErrInvalidMnemonic = errors.New("wallet: invalid mnemonic")

	// ErrWatchOnly is returned when an operation needs the master private
	// key or an account other than the watched one.
	ErrWatchOnly = errors.New("wallet: watch-only wallet")

	// ErrInvalidAccount is returned for a hardened or out-of-range account.
	ErrInvalidAccount = errors.New("wallet: invalid account")

	// ErrInvalidChange is returned for a change branch other than 0 or 1.
	ErrInvalidChange = errors.New("wallet: invalid change branch")

	// ErrUnsupportedPurpose is returned when the network cannot encode the
	// purpose's address type.
	ErrUnsupportedPurpose = errors.New("wallet: unsupported purpose")

	// ErrDecrypt is returned when a sealed blob cannot be opened.
	ErrDecrypt = errors.New("wallet: decryption failed")
)
