package database

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	vaultKeyIterations = 4096
	vaultSaltSize      = 16
)

// encryptedVault wraps an encrypted export payload. All binary fields are
// base64 encoded so the file stays plain JSON.
type encryptedVault struct {
	Encrypted bool   `json:"encrypted"`
	Salt      string `json:"salt"`
	Nonce     string `json:"nonce"`
	Data      string `json:"data"`
}

func vaultKey(passphrase string, salt []byte) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, vaultKeyIterations, 32, sha256.New)
}

func encryptVault(payload []byte, passphrase string) ([]byte, error) {
	salt := make([]byte, vaultSaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	block, err := aes.NewCipher(vaultKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	sealed := gcm.Seal(nil, nonce, payload, nil)
	return json.Marshal(encryptedVault{
		Encrypted: true,
		Salt:      base64.StdEncoding.EncodeToString(salt),
		Nonce:     base64.StdEncoding.EncodeToString(nonce),
		Data:      base64.StdEncoding.EncodeToString(sealed),
	})
}

// IsEncryptedVault reports whether payload is an encrypted vault wrapper
// rather than plain export JSON.
func IsEncryptedVault(payload []byte) bool {
	var probe struct {
		Encrypted bool `json:"encrypted"`
	}
	return json.Unmarshal(payload, &probe) == nil && probe.Encrypted
}

// DecryptVault unseals an encrypted vault payload. A payload that is not
// encrypted is returned unchanged. Tamper or a wrong passphrase both
// surface as ErrWrongPassphrase.
func DecryptVault(payload []byte, passphrase string) ([]byte, error) {
	var wrapped encryptedVault
	if err := json.Unmarshal(payload, &wrapped); err != nil {
		return nil, fmt.Errorf("parse encrypted vault: %w", err)
	}
	if !wrapped.Encrypted {
		return payload, nil
	}
	salt, err := base64.StdEncoding.DecodeString(wrapped.Salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(wrapped.Nonce)
	if err != nil {
		return nil, fmt.Errorf("decode nonce: %w", err)
	}
	sealed, err := base64.StdEncoding.DecodeString(wrapped.Data)
	if err != nil {
		return nil, fmt.Errorf("decode data: %w", err)
	}
	block, err := aes.NewCipher(vaultKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, ErrWrongPassphrase
	}
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return plaintext, nil
}
