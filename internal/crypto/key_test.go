package crypto

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMasterKeyRedacted(t *testing.T) {
	key, err := DeriveKey([]byte("pw"), testSalt(), testParams)
	require.NoError(t, err)
	secretHex := hex.EncodeToString(key.b[:])

	outputs := []string{
		fmt.Sprint(key),
		fmt.Sprintf("%v %+v %#v %s %x", key, key, key, key, key),
		fmt.Sprintf("%v %x", *key, *key),
		fmt.Sprintf("%+v", struct{ K MasterKey }{*key}),
	}
	for _, out := range outputs {
		assert.NotContains(t, out, secretHex)
		assert.NotContains(t, strings.ToLower(out), secretHex[:16])
		assert.Contains(t, out, redacted)
	}

	_, err = json.Marshal(key)
	assert.Error(t, err)
	_, err = key.MarshalBinary()
	assert.Error(t, err)
}

func TestMasterKeyZero(t *testing.T) {
	key, err := DeriveKey([]byte("pw"), testSalt(), testParams)
	require.NoError(t, err)

	key.Zero()
	assert.Equal(t, [MasterKeyLen]byte{}, key.b)

	var nilKey *MasterKey
	assert.NotPanics(t, func() { nilKey.Zero() })
}

func TestWipedKeyRefusesUse(t *testing.T) {
	key, err := DeriveKey([]byte("pw"), testSalt(), testParams)
	require.NoError(t, err)
	env, err := Seal(key, []byte("secret"))
	require.NoError(t, err)

	key.Zero()

	sealed, err := Seal(key, []byte("secret"))
	require.ErrorIs(t, err, ErrKeyWiped)
	assert.Nil(t, sealed)

	opened, err := Open(key, env)
	require.ErrorIs(t, err, ErrKeyWiped)
	assert.Nil(t, opened)
}
