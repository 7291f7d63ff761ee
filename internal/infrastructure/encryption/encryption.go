// Package encryption secures message content at rest. Ciphertexts are
// versioned so the key can be rotated without rewriting old rows.
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Version is the current encryption scheme identifier stored next to each
// ciphertext.
const Version = "v1"

const (
	keyLength      = 32
	kdfIterations  = 100000
	derivationSalt = "caresma_salt_v1"
)

// Cipher encrypts and decrypts strings with AES-256-GCM.
type Cipher struct {
	aead cipher.AEAD
}

// New builds a Cipher from the configured secret. A 32-byte base64 secret is
// used directly as the key; anything else is treated as a passphrase and run
// through PBKDF2.
func New(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, fmt.Errorf("encryption secret is empty")
	}

	key, err := base64.URLEncoding.DecodeString(secret)
	if err != nil || len(key) != keyLength {
		key = pbkdf2.Key([]byte(secret), []byte(derivationSalt), kdfIterations, keyLength, sha256.New)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext and returns the ciphertext together with the
// scheme version it was produced under. Empty input passes through.
func (c *Cipher) Encrypt(plaintext string) (string, string, error) {
	if plaintext == "" {
		return plaintext, Version, nil
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), Version, nil
}

// Decrypt opens a ciphertext produced by Encrypt. The version argument
// selects the scheme; only v1 exists today.
func (c *Cipher) Decrypt(ciphertext, version string) (string, error) {
	if ciphertext == "" {
		return ciphertext, nil
	}

	if version != "" && version != Version {
		return "", fmt.Errorf("unknown encryption version: %s", version)
	}

	raw, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	plaintext, err := c.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("open ciphertext: %w", err)
	}

	return string(plaintext), nil
}
