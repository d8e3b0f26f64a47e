package crypto

import (
	"bytes"
	"testing"

	"github.com/AlexZinkM/sentinel/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testParams keeps Argon2id cheap in tests; production uses DefaultKDFParams.
var testParams = KDFParams{Time: 1, MemoryKiB: 8 * 1024, Threads: 1}

func testSalt() []byte {
	return bytes.Repeat([]byte{0x5a}, SaltLen)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	k1, err := DeriveKey([]byte("correct horse battery staple"), testSalt(), testParams)
	require.NoError(t, err)
	k2, err := DeriveKey([]byte("correct horse battery staple"), testSalt(), testParams)
	require.NoError(t, err)

	assert.Equal(t, k1.b, k2.b)
	assert.NotEqual(t, [MasterKeyLen]byte{}, k1.b)
}

func TestDeriveKey_InputsMatter(t *testing.T) {
	base, err := DeriveKey([]byte("pw"), testSalt(), testParams)
	require.NoError(t, err)

	otherPassword, err := DeriveKey([]byte("pw2"), testSalt(), testParams)
	require.NoError(t, err)
	assert.NotEqual(t, base.b, otherPassword.b)

	otherSalt, err := DeriveKey([]byte("pw"), bytes.Repeat([]byte{0x01}, SaltLen), testParams)
	require.NoError(t, err)
	assert.NotEqual(t, base.b, otherSalt.b)
}

func TestDeriveKey_Misconfiguration(t *testing.T) {
	cases := []struct {
		name   string
		salt   []byte
		params KDFParams
	}{
		{"zero time", testSalt(), KDFParams{Time: 0, MemoryKiB: 8 * 1024, Threads: 1}},
		{"zero threads", testSalt(), KDFParams{Time: 1, MemoryKiB: 8 * 1024, Threads: 0}},
		{"memory below lanes", testSalt(), KDFParams{Time: 1, MemoryKiB: 16, Threads: 4}},
		{"short salt", []byte("short"), testParams},
		{"no salt", nil, testParams},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			key, err := DeriveKey([]byte("pw"), c.salt, c.params)
			require.ErrorIs(t, err, model.ErrDerivation)
			assert.Nil(t, key)
		})
	}
}

func TestDefaultKDFParamsValid(t *testing.T) {
	require.NoError(t, DefaultKDFParams.validate())
}

func TestNewSalt(t *testing.T) {
	s1, err := NewSalt()
	require.NoError(t, err)
	s2, err := NewSalt()
	require.NoError(t, err)

	assert.Len(t, s1, SaltLen)
	assert.NotEqual(t, s1, s2)
}
