package vault

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Zero securely wipes a byte slice from memory.
func Zero(b []byte) { zero(b) }

func randBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Init verifies the cryptographically secure random source is usable. Call
// it once at startup, before any encryption or key derivation; if it fails
// the process has no business handling secrets.
func Init() error {
	if _, err := randBytes(SaltLen); err != nil {
		return fmt.Errorf("crypto init: random source unavailable: %w", err)
	}
	return nil
}

// seal encrypts plaintext with XChaCha20-Poly1305 and returns
// ciphertext‖tag. key must be KeyLen bytes and nonce NonceLen bytes.
func seal(key, nonce, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// open verifies the tag and decrypts. The tag check is constant-time and
// happens before any plaintext is released; a single flipped bit anywhere
// in key, nonce or sealed yields ErrAuthFailed, never partial plaintext.
func open(key, nonce, sealed []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthFailed
	}
	return plaintext, nil
}
