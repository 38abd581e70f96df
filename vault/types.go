package vault

import "errors"

const (
	// SaltLen is the Argon2id salt length, matching libsodium's
	// crypto_pwhash_SALTBYTES.
	SaltLen = 16
	// NonceLen is the XChaCha20-Poly1305 nonce length.
	NonceLen = 24
	// TagLen is the Poly1305 authentication tag appended to the ciphertext.
	TagLen = 16
	// KeyLen is the symmetric key length.
	KeyLen = 32

	// MinEnvelopeLen is the shortest decodable envelope: an empty
	// plaintext still carries a salt, a nonce and a full tag.
	MinEnvelopeLen = SaltLen + NonceLen + TagLen
)

var (
	// ErrKeyDerivation reports an internal key-derivation failure. It is
	// never returned for a wrong password.
	ErrKeyDerivation = errors.New("vault: key derivation failed")

	// ErrAuthFailed covers both a wrong master password and a
	// corrupted or tampered envelope; the two are indistinguishable.
	ErrAuthFailed = errors.New("vault: authentication failed")

	// ErrMalformedEnvelope is returned for data too short to contain a
	// valid envelope, before any key derivation happens.
	ErrMalformedEnvelope = errors.New("vault: malformed envelope")

	// ErrBadRecordFormat means the bytes decrypted fine but are not a
	// well-formed entry list (version skew or an internal bug).
	ErrBadRecordFormat = errors.New("vault: bad record format")

	// ErrNoVault is the fresh-vault case: no file exists at the path yet.
	ErrNoVault = errors.New("vault: no vault file")

	// ErrNoCharClasses is returned by GeneratePassword when every
	// character class is disabled.
	ErrNoCharClasses = errors.New("vault: no character classes selected")
)

// Entry is a single stored credential. All fields are opaque text to the
// vault; Secret is a byte slice so it can be wiped.
type Entry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Username string `json:"username"`
	Secret   []byte `json:"password"`
	URL      string `json:"url"`
	Notes    string `json:"notes"`
}
