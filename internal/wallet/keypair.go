// Package wallet holds the local signing identity for swap execution.
package wallet

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// Keypair is an ed25519 signing identity. It is passed explicitly into
// components that sign; nothing resolves it from ambient state.
type Keypair struct {
	priv ed25519.PrivateKey
}

// FromBase58 parses a base58-encoded secret key. Both the 64-byte
// seed-plus-public form and the bare 32-byte seed are accepted. The embedded
// public key must match the seed and be a canonical curve point.
func FromBase58(s string) (*Keypair, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode secret key: %w", err)
	}

	var priv ed25519.PrivateKey
	switch len(raw) {
	case ed25519.PrivateKeySize:
		priv = ed25519.PrivateKey(raw)
		derived := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
		if !bytes.Equal(derived, priv) {
			return nil, fmt.Errorf("secret key public half does not match seed")
		}
	case ed25519.SeedSize:
		priv = ed25519.NewKeyFromSeed(raw)
	default:
		return nil, fmt.Errorf("secret key must be %d or %d bytes, got %d",
			ed25519.PrivateKeySize, ed25519.SeedSize, len(raw))
	}

	pub := priv.Public().(ed25519.PublicKey)
	if _, err := new(edwards25519.Point).SetBytes(pub); err != nil {
		return nil, fmt.Errorf("public key is not a canonical curve point: %w", err)
	}

	return &Keypair{priv: priv}, nil
}

// PublicKey returns the base58-encoded public key.
func (k *Keypair) PublicKey() string {
	return base58.Encode(k.PublicKeyBytes())
}

// PublicKeyBytes returns the raw 32-byte public key.
func (k *Keypair) PublicKeyBytes() []byte {
	return k.priv.Public().(ed25519.PublicKey)
}

// Sign returns the 64-byte ed25519 signature over msg.
func (k *Keypair) Sign(msg []byte) []byte {
	return ed25519.Sign(k.priv, msg)
}
