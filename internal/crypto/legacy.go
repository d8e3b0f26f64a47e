package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/sentinel/internal/model"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters of the legacy .cwt wallet format
const (
	scryptN      = 1 << 18
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
)

// DecryptCWT reads and decrypts a legacy .cwt wallet file.
// The returned PrivateKey is either a 32-byte seed (oldest files) or a full
// 64-byte keypair; caller must clear it after use.
// password must be []byte for security (caller should zero it after use)
func DecryptCWT(filePath string, password []byte) (*model.CWTFile, *model.CWTWalletData, error) {
	cwtFile, err := readCWTFile(filePath)
	if err != nil {
		return nil, nil, err
	}

	// Decode salt and nonce
	salt, err := base64.StdEncoding.DecodeString(cwtFile.Salt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(cwtFile.Nonce)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode nonce: %w", err)
	}
	if len(nonce) != NonceLen {
		return nil, nil, fmt.Errorf("invalid nonce length %d", len(nonce))
	}

	ciphertext, err := base64.StdEncoding.DecodeString(cwtFile.CipherText)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	key, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, nil, model.NewError(model.KindDerivation, "failed to derive legacy key", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, nil, model.NewError(model.KindAuthentication, "invalid password", nil)
	}
	defer clear(plaintext)

	walletData, err := parseCWTPayload(plaintext)
	if err != nil {
		return nil, nil, err
	}
	return cwtFile, walletData, nil
}

// parseCWTPayload accepts both payload generations:
// privateKey as a 64-char hex seed (old) or base64 bytes (current).
func parseCWTPayload(plaintext []byte) (*model.CWTWalletData, error) {
	var raw struct {
		PrivateKey string `json:"privateKey"`
		CreatedAt  string `json:"createdAt"`
	}
	if err := json.Unmarshal(plaintext, &raw); err != nil {
		return nil, model.NewError(model.KindEncoding, "failed to unmarshal wallet data", nil)
	}

	var (
		keyBytes []byte
		err      error
	)
	if len(raw.PrivateKey) == 2*32 {
		keyBytes, err = hex.DecodeString(raw.PrivateKey)
	}
	if keyBytes == nil || err != nil {
		keyBytes, err = base64.StdEncoding.DecodeString(raw.PrivateKey)
		if err != nil {
			return nil, model.NewError(model.KindEncoding, "invalid private key encoding in wallet data", nil)
		}
	}
	if len(keyBytes) != 32 && len(keyBytes) != 64 {
		clear(keyBytes)
		return nil, model.NewError(model.KindEncoding, "invalid private key length in wallet data", nil)
	}

	return &model.CWTWalletData{
		PrivateKey: keyBytes,
		CreatedAt:  raw.CreatedAt,
	}, nil
}

// readCWTFile reads the .cwt structure without decrypting it
func readCWTFile(filePath string) (*model.CWTFile, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("file does not exist")
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if fileInfo.Size() == 0 {
		return nil, errors.New("file is empty")
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Skip UTF-8 BOM if present
	if len(fileData) >= 3 && fileData[0] == 0xEF && fileData[1] == 0xBB && fileData[2] == 0xBF {
		fileData = fileData[3:]
	}

	var cwtFile model.CWTFile
	if err := json.Unmarshal(fileData, &cwtFile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cwt file: %w", err)
	}
	return &cwtFile, nil
}
