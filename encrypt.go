package castable

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"
)

// Encryption errors.
var (
	ErrInvalidKeySize   = errors.New("invalid key size")
	ErrCiphertextShort  = errors.New("ciphertext too short")
	ErrDecryptionFailed = errors.New("decryption failed")
)

// Encrypter is the opaque encryption service consumed by the encrypted
// cast family. Ciphertext is a storable string. Failures propagate to
// the caller verbatim; the engine never retries.
type Encrypter interface {
	// Encrypt encrypts plaintext and returns a storable ciphertext string.
	Encrypt(plaintext string) (string, error)

	// Decrypt decrypts a ciphertext string produced by Encrypt.
	Decrypt(ciphertext string) (string, error)
}

// Process-wide default encrypter, used by engines without an explicit
// WithEncrypter option. Swappable at runtime.
var (
	defaultEncMu sync.RWMutex
	defaultEnc   Encrypter
)

// DefaultEncrypter returns the process-wide encrypter, or nil if none
// has been configured.
func DefaultEncrypter() Encrypter {
	defaultEncMu.RLock()
	defer defaultEncMu.RUnlock()
	return defaultEnc
}

// SetDefaultEncrypter replaces the process-wide encrypter. Safe for
// concurrent use.
func SetDefaultEncrypter(enc Encrypter) {
	defaultEncMu.Lock()
	defer defaultEncMu.Unlock()
	defaultEnc = enc
}

// aesEncrypter implements AES-GCM encryption with base64 ciphertext.
type aesEncrypter struct {
	gcm cipher.AEAD
}

// AES returns an AES-GCM encrypter.
// Key must be 16, 24, or 32 bytes for AES-128, AES-192, or AES-256.
func AES(key []byte) (Encrypter, error) {
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, fmt.Errorf("%w: must be 16, 24, or 32 bytes, got %d", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &aesEncrypter{gcm: gcm}, nil
}

func (e *aesEncrypter) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	// Prepend nonce to ciphertext
	sealed := e.gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (e *aesEncrypter) Decrypt(ciphertext string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	nonceSize := e.gcm.NonceSize()
	if len(sealed) < nonceSize {
		return "", ErrCiphertextShort
	}

	nonce, sealed := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := e.gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}
