package wallet

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
)

func generateEncoded(t *testing.T) (ed25519.PublicKey, string) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	return pub, base58.Encode(priv)
}

func TestFromBase58_FullKey(t *testing.T) {
	pub, encoded := generateEncoded(t)

	k, err := FromBase58(encoded)
	if err != nil {
		t.Fatalf("FromBase58 failed: %v", err)
	}
	if !bytes.Equal(k.PublicKeyBytes(), pub) {
		t.Error("public key mismatch")
	}
	if k.PublicKey() != base58.Encode(pub) {
		t.Error("base58 public key mismatch")
	}
}

func TestFromBase58_SeedOnly(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}

	k, err := FromBase58(base58.Encode(priv.Seed()))
	if err != nil {
		t.Fatalf("FromBase58 failed: %v", err)
	}
	if !bytes.Equal(k.PublicKeyBytes(), pub) {
		t.Error("public key mismatch from seed form")
	}
}

func TestFromBase58_Rejects(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}

	// Corrupt the embedded public half.
	bad := append([]byte(nil), priv...)
	bad[40] ^= 0xff

	cases := map[string]string{
		"not base58":          "l0OI!!",
		"wrong length":        base58.Encode([]byte("short")),
		"mismatched pub half": base58.Encode(bad),
	}
	for name, encoded := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := FromBase58(encoded); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSign_Verifies(t *testing.T) {
	pub, encoded := generateEncoded(t)
	k, err := FromBase58(encoded)
	if err != nil {
		t.Fatal(err)
	}

	msg := []byte("swap message bytes")
	sig := k.Sign(msg)
	if len(sig) != ed25519.SignatureSize {
		t.Fatalf("signature size = %d", len(sig))
	}
	if !ed25519.Verify(pub, msg, sig) {
		t.Error("signature does not verify")
	}
}
