package crypto

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/AlexZinkM/sentinel/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T, password string) *MasterKey {
	t.Helper()
	key, err := DeriveKey([]byte(password), testSalt(), testParams)
	require.NoError(t, err)
	return key
}

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := testKey(t, "pw")

	for _, size := range []int{0, 1, 32, 64, 1000} {
		plaintext := randomBytes(t, size)
		env, err := Seal(key, plaintext)
		require.NoError(t, err)
		assert.Len(t, env.Sealed, size+TagLen)

		// Fresh derivation of the same key must open it
		opened, err := Open(testKey(t, "pw"), env)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(plaintext, opened))
	}
}

func TestEnvelopeWireLayout(t *testing.T) {
	key := testKey(t, "pw")
	plaintext := randomBytes(t, 64)

	env, err := Seal(key, plaintext)
	require.NoError(t, err)

	blob := env.Bytes()
	require.Len(t, blob, NonceLen+64+TagLen)
	assert.Equal(t, env.Nonce[:], blob[:NonceLen])

	parsed, err := ParseEnvelope(blob)
	require.NoError(t, err)
	assert.Equal(t, env, parsed)

	opened, err := Open(key, parsed)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestOpen_WrongPassword(t *testing.T) {
	env, err := Seal(testKey(t, "password one"), randomBytes(t, 64))
	require.NoError(t, err)

	opened, err := Open(testKey(t, "password two"), env)
	require.ErrorIs(t, err, model.ErrAuthentication)
	assert.Nil(t, opened)
}

func TestSeal_NonceUniqueness(t *testing.T) {
	key := testKey(t, "pw")
	plaintext := []byte("same plaintext every time")

	seen := make(map[[NonceLen]byte]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		env, err := Seal(key, plaintext)
		require.NoError(t, err)
		_, dup := seen[env.Nonce]
		require.False(t, dup, "nonce repeated after %d seals", i)
		seen[env.Nonce] = struct{}{}
	}
}

func TestOpen_TamperDetection(t *testing.T) {
	key := testKey(t, "pw")
	env, err := Seal(key, randomBytes(t, 64))
	require.NoError(t, err)

	// every bit of ciphertext and tag
	for i := 0; i < len(env.Sealed)*8; i++ {
		tampered := &Envelope{Nonce: env.Nonce, Sealed: bytes.Clone(env.Sealed)}
		tampered.Sealed[i/8] ^= 1 << (i % 8)

		opened, err := Open(key, tampered)
		require.ErrorIs(t, err, model.ErrAuthentication, "bit %d", i)
		require.Nil(t, opened)
	}

	// and the nonce
	for i := 0; i < NonceLen*8; i++ {
		tampered := &Envelope{Nonce: env.Nonce, Sealed: bytes.Clone(env.Sealed)}
		tampered.Nonce[i/8] ^= 1 << (i % 8)

		_, err := Open(key, tampered)
		require.ErrorIs(t, err, model.ErrAuthentication, "nonce bit %d", i)
	}
}

func TestOpen_Truncation(t *testing.T) {
	key := testKey(t, "pw")
	env, err := Seal(key, randomBytes(t, 64))
	require.NoError(t, err)
	blob := env.Bytes()

	for _, n := range []int{0, NonceLen, NonceLen + TagLen - 1} {
		_, err := ParseEnvelope(blob[:n])
		require.ErrorIs(t, err, model.ErrAuthentication)
	}

	// long enough to parse, but a byte is missing
	short, err := ParseEnvelope(blob[:len(blob)-1])
	require.NoError(t, err)
	_, err = Open(key, short)
	require.ErrorIs(t, err, model.ErrAuthentication)

	_, err = Open(key, nil)
	require.ErrorIs(t, err, model.ErrAuthentication)
}
