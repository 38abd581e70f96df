package vault

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

// Argon2id cost parameters. These are part of the on-disk format contract:
// changing any of them makes previously saved vaults unreadable, since the
// envelope carries no version field. They correspond to libsodium's
// "interactive" strength.
const (
	argonTime    = 2
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 1
)

// kdfInfo domain-separates the HKDF expansion step.
var kdfInfo = []byte("lockbox v1")

// DeriveKey derives a KeyLen-byte encryption key from a master password and
// salt. Same (password, salt) always yields the same key. The Argon2id pass
// is deliberately memory-hard and slow; callers should expect it to block
// for a noticeable fraction of a second.
func DeriveKey(password, salt []byte) ([]byte, error) {
	if len(salt) != SaltLen {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrKeyDerivation, SaltLen, len(salt))
	}

	master := argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, KeyLen)
	defer zero(master)

	h := hkdf.New(sha256.New, master, nil, kdfInfo)
	key := make([]byte, KeyLen)
	if _, err := io.ReadFull(h, key); err != nil {
		zero(key)
		return nil, fmt.Errorf("%w: %v", ErrKeyDerivation, err)
	}
	return key, nil
}
