package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexZinkM/sentinel/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/scrypt"
)

// writeCWT writes a .cwt file the way the local wallet service did.
func writeCWT(t *testing.T, aesGCM cipher.AEAD, salt []byte, payload any) string {
	t.Helper()

	plaintext, err := json.Marshal(payload)
	require.NoError(t, err)
	nonce := randomBytes(t, NonceLen)

	fileData, err := json.MarshalIndent(model.CWTFile{
		Network:    "solana",
		Address:    "addr",
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(aesGCM.Seal(nil, nonce, plaintext, nil)),
	}, "", "  ")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "wallet.cwt")
	utf8BOM := []byte{0xEF, 0xBB, 0xBF}
	require.NoError(t, os.WriteFile(path, append(utf8BOM, fileData...), 0600))
	return path
}

func TestDecryptCWT(t *testing.T) {
	password := []byte("dev")
	salt := randomBytes(t, 32)
	key, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, scryptKeyLen)
	require.NoError(t, err)
	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	aesGCM, err := cipher.NewGCM(block)
	require.NoError(t, err)

	t.Run("current format", func(t *testing.T) {
		privateKey := randomBytes(t, 64)
		path := writeCWT(t, aesGCM, salt, model.CWTWalletData{PrivateKey: privateKey, CreatedAt: "2025-01-01T00:00:00Z"})

		file, data, err := DecryptCWT(path, password)
		require.NoError(t, err)
		assert.Equal(t, "addr", file.Address)
		assert.Equal(t, privateKey, data.PrivateKey)
		assert.Equal(t, "2025-01-01T00:00:00Z", data.CreatedAt)
	})

	t.Run("hex seed format", func(t *testing.T) {
		seed := randomBytes(t, 32)
		path := writeCWT(t, aesGCM, salt, map[string]string{"privateKey": hex.EncodeToString(seed), "createdAt": "x"})

		_, data, err := DecryptCWT(path, password)
		require.NoError(t, err)
		assert.Equal(t, seed, data.PrivateKey)
	})

	t.Run("wrong password", func(t *testing.T) {
		path := writeCWT(t, aesGCM, salt, model.CWTWalletData{PrivateKey: randomBytes(t, 64)})

		_, _, err := DecryptCWT(path, []byte("not dev"))
		require.ErrorIs(t, err, model.ErrAuthentication)
	})
}

func TestParseCWTPayload_BadKeyLength(t *testing.T) {
	// 48 bytes encode to 64 base64 chars, the same width as a hex seed
	payload, err := json.Marshal(model.CWTWalletData{PrivateKey: bytes.Repeat([]byte{0xff}, 48)})
	require.NoError(t, err)

	_, err = parseCWTPayload(payload)
	require.ErrorIs(t, err, model.ErrEncoding)
}

func TestReadCWTFile_Missing(t *testing.T) {
	_, err := readCWTFile(filepath.Join(t.TempDir(), "none.cwt"))
	require.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.cwt")
	require.NoError(t, os.WriteFile(empty, nil, 0600))
	_, err = readCWTFile(empty)
	require.Error(t, err)
}
