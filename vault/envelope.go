package vault

import "fmt"

// The envelope is the raw byte layout persisted to disk:
//
//	[salt SaltLen][nonce NonceLen][ciphertext || tag]
//
// No magic number, no version field. Salt and nonce are not secret and
// travel in the clear; both are generated fresh for every Encode call.

// Encode encrypts plaintext under a key derived from password. Each call
// draws a new random salt and nonce, so encoding the same plaintext twice
// produces different envelopes.
func Encode(plaintext, password []byte) ([]byte, error) {
	salt, err := randBytes(SaltLen)
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key, err := DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer zero(key)

	nonce, err := randBytes(NonceLen)
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	sealed, err := seal(key, nonce, plaintext)
	if err != nil {
		return nil, err
	}

	envelope := make([]byte, 0, SaltLen+NonceLen+len(sealed))
	envelope = append(envelope, salt...)
	envelope = append(envelope, nonce...)
	envelope = append(envelope, sealed...)
	return envelope, nil
}

// Decode reverses Encode. It returns ErrMalformedEnvelope for input too
// short to possibly hold a valid ciphertext (checked before the expensive
// derivation), ErrAuthFailed when the password is wrong or the envelope has
// been tampered with, and ErrKeyDerivation only on internal KDF failure.
func Decode(envelope, password []byte) ([]byte, error) {
	if len(envelope) < MinEnvelopeLen {
		return nil, ErrMalformedEnvelope
	}

	salt := envelope[:SaltLen]
	nonce := envelope[SaltLen : SaltLen+NonceLen]
	sealed := envelope[SaltLen+NonceLen:]

	key, err := DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer zero(key)

	return open(key, nonce, sealed)
}
