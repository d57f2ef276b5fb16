// Package secret generates and parses the wallet link secret.
package secret

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"linksecret/internal/shared"
)

const (
	// Size is the raw length of a link secret in bytes.
	Size = 32
	// EncodedLen is the length of the hex representation written to disk.
	EncodedLen = Size * 2
)

// LinkSecret is the holder-binding secret of the credential wallet.
// It is created from a cryptographically secure source and persisted
// as lowercase hex; the raw bytes leave this package only via Bytes.
type LinkSecret [Size]byte

// New creates a cryptographically secure random link secret.
func New() (LinkSecret, error) {
	var s LinkSecret
	if _, err := rand.Read(s[:]); err != nil {
		return LinkSecret{}, fmt.Errorf("generating link secret: %w", err)
	}
	return s, nil
}

// Hex returns the 64 character lowercase hex encoding of the secret.
func (s LinkSecret) Hex() string {
	return hex.EncodeToString(s[:])
}

// Bytes returns a copy of the raw secret bytes.
func (s LinkSecret) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, s[:])
	return b
}

// Fingerprint returns the hex encoded SHA3-256 digest of the encoded
// secret. Safe to display and log, unlike the secret itself.
func (s LinkSecret) Fingerprint() string {
	hasher := sha3.New256()
	hasher.Write([]byte(s.Hex()))
	return hex.EncodeToString(hasher.Sum(nil))
}

// FromHex parses the on-disk representation of a link secret. It is
// strict about the file format: exactly 64 lowercase hex characters,
// no whitespace, no trailing newline.
func FromHex(encoded string) (LinkSecret, error) {
	if len(encoded) != EncodedLen {
		return LinkSecret{}, shared.ErrSecretLength
	}

	var s LinkSecret
	if _, err := hex.Decode(s[:], []byte(encoded)); err != nil {
		return LinkSecret{}, shared.ErrSecretEncoding
	}

	// hex.Decode also accepts uppercase; the file format does not
	if encoded != s.Hex() {
		return LinkSecret{}, shared.ErrSecretEncoding
	}

	return s, nil
}
