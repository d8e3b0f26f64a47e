package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"
)

const redacted = "[MASTER KEY]"

var (
	errNotSerializable = errors.New("master key is not serializable")
	// ErrKeyWiped is returned by Seal and Open once the key has been zeroed.
	ErrKeyWiped = errors.New("master key has been wiped")
)

// MasterKey is the AES-256 key derived from the user password.
// It lives only in memory: every formatting and marshaling path is redacted.
type MasterKey struct {
	b     [MasterKeyLen]byte
	wiped bool
}

func (k MasterKey) String() string { return redacted }

func (k MasterKey) GoString() string { return redacted }

// Format implements fmt.Formatter so %v, %+v, %#v and %x never print the key.
func (k MasterKey) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, redacted)
}

func (k MasterKey) MarshalJSON() ([]byte, error) { return nil, errNotSerializable }

func (k MasterKey) MarshalText() ([]byte, error) { return nil, errNotSerializable }

func (k MasterKey) MarshalBinary() ([]byte, error) { return nil, errNotSerializable }

// Zero overwrites the key. Seal and Open fail with ErrKeyWiped afterwards.
// Zero must not run concurrently with other use of the key.
func (k *MasterKey) Zero() {
	if k == nil {
		return
	}
	clear(k.b[:])
	k.wiped = true
}

func (k *MasterKey) gcm() (cipher.AEAD, error) {
	if k == nil {
		return nil, errors.New("nil master key")
	}
	if k.wiped {
		return nil, ErrKeyWiped
	}
	block, err := aes.NewCipher(k.b[:])
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
