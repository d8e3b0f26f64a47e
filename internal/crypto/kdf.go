package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/AlexZinkM/sentinel/internal/model"

	"golang.org/x/crypto/argon2"
)

const (
	// AlgorithmArgon2id names the derivation recorded next to the salt.
	AlgorithmArgon2id = "argon2id"

	// MasterKeyLen is the AES-256 key size.
	MasterKeyLen = 32
	// SaltLen is the size of a freshly generated installation salt.
	SaltLen    = 16
	minSaltLen = 16
)

// KDFParams are the Argon2id cost parameters.
type KDFParams struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// DefaultKDFParams for the master key.
//
// 64 MiB, 3 passes, 4 lanes (~100-400ms on desktop CPUs):
//   - an offline guess costs 64 MiB of RAM, which kills GPU/ASIC parallelism
//   - stays interactive on phones and small VPS boxes
//
// Changing these makes every existing envelope undecryptable, so the values in
// use are stored with the salt and reused at unlock.
var DefaultKDFParams = KDFParams{
	Time:      3,
	MemoryKiB: 64 * 1024,
	Threads:   4,
}

func (p KDFParams) validate() error {
	if p.Time == 0 {
		return fmt.Errorf("time cost must be positive")
	}
	if p.Threads == 0 {
		return fmt.Errorf("threads must be positive")
	}
	if p.MemoryKiB < 8*uint32(p.Threads) {
		return fmt.Errorf("memory must be at least %d KiB for %d threads", 8*uint32(p.Threads), p.Threads)
	}
	return nil
}

// DeriveKey derives the master key from password and salt with Argon2id.
// The result is deterministic for identical inputs.
// password must be []byte for security (caller should zero it after use)
func DeriveKey(password, salt []byte, params KDFParams) (*MasterKey, error) {
	if err := params.validate(); err != nil {
		return nil, model.NewError(model.KindDerivation, "invalid KDF parameters", err)
	}
	if len(salt) < minSaltLen {
		return nil, model.NewError(model.KindDerivation, "invalid KDF parameters",
			fmt.Errorf("salt must be at least %d bytes, got %d", minSaltLen, len(salt)))
	}

	raw := argon2.IDKey(password, salt, params.Time, params.MemoryKiB, params.Threads, MasterKeyLen)
	defer clear(raw)

	key := &MasterKey{}
	copy(key.b[:], raw)
	return key, nil
}

// NewSalt generates a random installation salt.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}
