package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/AlexZinkM/sentinel/internal/model"
)

const (
	// NonceLen is the AES-GCM nonce size (96 bits).
	NonceLen = 12
	// TagLen is the AES-GCM authentication tag size (128 bits).
	TagLen = 16
)

// Envelope is the only storable form of sealed key material.
// Wire layout: nonce (12) || ciphertext (N) || tag (16).
type Envelope struct {
	Nonce  [NonceLen]byte
	Sealed []byte // ciphertext || tag
}

// Bytes returns the wire layout of the envelope.
func (e *Envelope) Bytes() []byte {
	out := make([]byte, 0, NonceLen+len(e.Sealed))
	out = append(out, e.Nonce[:]...)
	return append(out, e.Sealed...)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (e *Envelope) MarshalBinary() ([]byte, error) {
	return e.Bytes(), nil
}

// ParseEnvelope splits a stored blob into nonce and sealed parts.
// Blobs too short to hold a nonce and a tag are rejected as unauthenticated.
func ParseEnvelope(blob []byte) (*Envelope, error) {
	if len(blob) < NonceLen+TagLen {
		return nil, model.NewError(model.KindAuthentication, "envelope truncated",
			fmt.Errorf("got %d bytes, need at least %d", len(blob), NonceLen+TagLen))
	}
	env := &Envelope{Sealed: make([]byte, len(blob)-NonceLen)}
	copy(env.Nonce[:], blob[:NonceLen])
	copy(env.Sealed, blob[NonceLen:])
	return env, nil
}

// Seal encrypts plaintext under key with a fresh random nonce.
// There is deliberately no way to pass a nonce in.
func Seal(key *MasterKey, plaintext []byte) (*Envelope, error) {
	aesGCM, err := key.gcm()
	if err != nil {
		return nil, err
	}

	env := &Envelope{}
	if _, err := io.ReadFull(rand.Reader, env.Nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	env.Sealed = aesGCM.Seal(nil, env.Nonce[:], plaintext, nil)
	return env, nil
}

// Open authenticates and decrypts env under key.
// Any failure yields model.ErrAuthentication and no plaintext.
// Caller should clear the returned slice after use.
func Open(key *MasterKey, env *Envelope) ([]byte, error) {
	if env == nil || len(env.Sealed) < TagLen {
		return nil, model.NewError(model.KindAuthentication, "envelope truncated", nil)
	}

	aesGCM, err := key.gcm()
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, env.Nonce[:], env.Sealed, nil)
	if err != nil {
		return nil, model.NewError(model.KindAuthentication, "invalid password or corrupted envelope", nil)
	}
	return plaintext, nil
}
