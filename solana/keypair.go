package solana

import (
	"crypto/ed25519"
	"crypto/subtle"
	"fmt"
	"io"
	"strings"

	"github.com/AlexZinkM/sentinel/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// KeypairLen is the raw keypair size: 32-byte seed followed by 32-byte public key.
const KeypairLen = ed25519.PrivateKeySize

// Keypair is a Solana account keypair held in plaintext only for the
// duration of one operation. Call Zero when done.
type Keypair struct {
	key solana.PrivateKey
}

// newKeypair copies raw into a Keypair after checking that the public half
// really belongs to the seed.
func newKeypair(raw []byte) (*Keypair, bool) {
	if len(raw) != KeypairLen {
		return nil, false
	}
	derived := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	defer clear(derived)
	if subtle.ConstantTimeCompare(derived[ed25519.SeedSize:], raw[ed25519.SeedSize:]) != 1 {
		return nil, false
	}

	key := make(solana.PrivateKey, KeypairLen)
	copy(key, raw)
	return &Keypair{key: key}, true
}

// PublicKey returns the account address. It is the wallet identity.
func (k *Keypair) PublicKey() solana.PublicKey {
	return k.key.PublicKey()
}

// Sign signs message with the private key.
func (k *Keypair) Sign(message []byte) (solana.Signature, error) {
	return k.key.Sign(message)
}

// Zero wipes the private key.
func (k *Keypair) Zero() {
	if k == nil {
		return
	}
	clear(k.key)
}

// String prints the public key only.
func (k Keypair) String() string {
	if len(k.key) != KeypairLen {
		return "Keypair(<empty>)"
	}
	return "Keypair(" + k.key.PublicKey().String() + ")"
}

// Format implements fmt.Formatter so no verb can print the private key.
func (k Keypair) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, k.String())
}

// encodePortable renders the keypair as a base58 portable key string.
func encodePortable(k *Keypair) string {
	return base58.Encode(k.key)
}

// decodePortable parses a portable key string into raw keypair bytes.
// Length is checked before the bytes are used for anything.
// Caller must clear the result.
func decodePortable(portable string) ([]byte, error) {
	raw, err := base58.Decode(strings.TrimSpace(portable))
	if err != nil {
		return nil, model.NewError(model.KindEncoding, "private key is not valid base58", nil)
	}
	if len(raw) != KeypairLen {
		n := len(raw)
		clear(raw)
		return nil, model.NewError(model.KindEncoding,
			fmt.Sprintf("private key must decode to %d bytes, got %d", KeypairLen, n), nil)
	}
	return raw, nil
}
