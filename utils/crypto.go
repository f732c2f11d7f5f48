package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
	"sync"

	"golang.org/x/crypto/scrypt"
)

const saltSize = 32

var (
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	errEmptyPassphrase    = errors.New("encryption passphrase is empty")
)

func deriveKey(passphrase string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(passphrase), salt, 32768, 8, 1, 32)
}

// Sealer encrypts with AES-256-GCM under keys derived from one passphrase.
// Output layout: salt | nonce | ciphertext. A Sealer seals everything with
// one random salt and remembers the cipher of every salt it has seen, so
// scrypt runs once per salt rather than once per call.
type Sealer struct {
	passphrase string

	mu      sync.Mutex
	salt    []byte
	ciphers map[string]cipher.AEAD
}

func NewSealer(passphrase string) *Sealer {
	return &Sealer{passphrase: passphrase, ciphers: make(map[string]cipher.AEAD)}
}

func (s *Sealer) cipherFor(salt []byte) (cipher.AEAD, error) {
	if gcm, ok := s.ciphers[string(salt)]; ok {
		return gcm, nil
	}
	gcm, err := newGCM(s.passphrase, salt)
	if err != nil {
		return nil, err
	}
	s.ciphers[string(salt)] = gcm
	return gcm, nil
}

// Seal encrypts plaintext with a fresh nonce.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	if s.passphrase == "" {
		return nil, errEmptyPassphrase
	}

	s.mu.Lock()
	if s.salt == nil {
		salt := make([]byte, saltSize)
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			s.mu.Unlock()
			return nil, err
		}
		s.salt = salt
	}
	salt := s.salt
	gcm, err := s.cipherFor(salt)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	out := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plaintext, nil), nil
}

// Open reverses Seal, whatever salt the data was sealed with.
func (s *Sealer) Open(data []byte) ([]byte, error) {
	if s.passphrase == "" {
		return nil, errEmptyPassphrase
	}
	if len(data) < saltSize {
		return nil, ErrCiphertextTooShort
	}

	salt, rest := data[:saltSize], data[saltSize:]
	s.mu.Lock()
	gcm, err := s.cipherFor(salt)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.New("wrong encryption key or corrupted data")
	}
	return plaintext, nil
}

// Encrypt seals plaintext under a new random salt.
func Encrypt(passphrase string, plaintext []byte) ([]byte, error) {
	return NewSealer(passphrase).Seal(plaintext)
}

// Decrypt reverses Encrypt.
func Decrypt(passphrase string, data []byte) ([]byte, error) {
	return NewSealer(passphrase).Open(data)
}

func newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
