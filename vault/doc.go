// Package vault implements a password-protected encrypted credential store.
//
// On-disk format (no magic number, no version field):
//
//	[salt 16][nonce 24][ciphertext || tag 16]
//
// The key is derived from the master password with Argon2id (fixed cost
// parameters, libsodium "interactive" strength) followed by an HKDF-SHA256
// expand; encryption is XChaCha20-Poly1305. A fresh salt and nonce are drawn
// for every save. A wrong password and a tampered file are indistinguishable
// by construction: both surface as ErrAuthFailed.
//
// The plaintext is a JSON array of entries. Everything is synchronous and
// single-owner; nothing is persisted except through an explicit Save.
package vault
