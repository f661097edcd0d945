package solana

import (
	"fmt"
)

// SignatureLength is the size of an ed25519 signature.
const SignatureLength = 64

// Signer produces ed25519 signatures for transaction messages.
type Signer interface {
	Sign(msg []byte) []byte
}

// VersionedTransaction is a wire-format transaction: a shortvec-counted
// signature array followed by the message bytes. The message is kept opaque
// except for the signer-count byte in its header; signing only needs the
// exact message bytes, not their interpretation.
type VersionedTransaction struct {
	Signatures [][]byte
	Message    []byte
}

// ParseTransaction deserializes raw transaction bytes.
func ParseTransaction(raw []byte) (*VersionedTransaction, error) {
	count, offset, err := decodeShortVec(raw)
	if err != nil {
		return nil, fmt.Errorf("signature count: %w", err)
	}

	need := offset + count*SignatureLength
	if len(raw) < need {
		return nil, fmt.Errorf("truncated signatures: have %d bytes, need %d", len(raw), need)
	}

	tx := &VersionedTransaction{
		Signatures: make([][]byte, count),
	}
	for i := 0; i < count; i++ {
		sig := make([]byte, SignatureLength)
		copy(sig, raw[offset+i*SignatureLength:])
		tx.Signatures[i] = sig
	}

	tx.Message = make([]byte, len(raw)-need)
	copy(tx.Message, raw[need:])
	if len(tx.Message) == 0 {
		return nil, fmt.Errorf("empty message")
	}

	return tx, nil
}

// RequiredSignatures reads the signer count from the message header.
// A high bit on the first byte marks a versioned message whose header
// starts one byte later.
func (tx *VersionedTransaction) RequiredSignatures() (int, error) {
	if len(tx.Message) == 0 {
		return 0, fmt.Errorf("empty message")
	}
	idx := 0
	if tx.Message[0]&0x80 != 0 {
		idx = 1
	}
	if len(tx.Message) <= idx {
		return 0, fmt.Errorf("message too short for header")
	}
	return int(tx.Message[idx]), nil
}

// Sign replaces the transaction's signature set with a single signature by
// signer over the exact message bytes. Transactions requiring more than one
// signature cannot be signed locally and are rejected.
func (tx *VersionedTransaction) Sign(signer Signer) error {
	required, err := tx.RequiredSignatures()
	if err != nil {
		return err
	}
	if required != 1 {
		return fmt.Errorf("transaction requires %d signatures, single local signer cannot satisfy it", required)
	}

	sig := signer.Sign(tx.Message)
	if len(sig) != SignatureLength {
		return fmt.Errorf("signer produced %d-byte signature, want %d", len(sig), SignatureLength)
	}
	tx.Signatures = [][]byte{sig}
	return nil
}

// Serialize re-encodes the transaction to wire format.
func (tx *VersionedTransaction) Serialize() []byte {
	out := appendShortVec(nil, len(tx.Signatures))
	for _, sig := range tx.Signatures {
		out = append(out, sig...)
	}
	return append(out, tx.Message...)
}

// decodeShortVec reads a compact-u16 length prefix, returning the value and
// the number of bytes consumed.
func decodeShortVec(b []byte) (int, int, error) {
	value := 0
	for i := 0; i < 3; i++ {
		if i >= len(b) {
			return 0, 0, fmt.Errorf("truncated shortvec")
		}
		elem := int(b[i])
		value |= (elem & 0x7f) << (7 * i)
		if elem&0x80 == 0 {
			return value, i + 1, nil
		}
	}
	return 0, 0, fmt.Errorf("shortvec longer than 3 bytes")
}

// appendShortVec appends n as a compact-u16 length prefix.
func appendShortVec(out []byte, n int) []byte {
	for {
		if n < 0x80 {
			return append(out, byte(n))
		}
		out = append(out, byte(n&0x7f|0x80))
		n >>= 7
	}
}
