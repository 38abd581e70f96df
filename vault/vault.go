package vault

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Vault owns the ordered in-memory entry collection and its persistence.
// It is single-owner: no internal locking, callers must not mutate it from
// multiple goroutines. Nothing is written to disk except through Save.
type Vault struct {
	Path string

	log     *zap.Logger
	entries []Entry
}

func NewVault(path string, log *zap.Logger) *Vault {
	if log == nil {
		log = zap.NewNop()
	}
	return &Vault{Path: path, log: log}
}

// List returns the entries in insertion order. The slice is shared with the
// vault; treat it as read-only.
func (v *Vault) List() []Entry { return v.entries }

func (v *Vault) Len() int { return len(v.entries) }

// Add appends a new entry. If an entry with the same ID already exists it
// is replaced in place, keeping its position; identifiers stay unique.
func (v *Vault) Add(e Entry) {
	for i := range v.entries {
		if v.entries[i].ID == e.ID {
			zero(v.entries[i].Secret)
			v.entries[i] = e
			return
		}
	}
	v.entries = append(v.entries, e)
}

// Delete removes the entry with the given ID. Deleting an unknown ID is a
// no-op.
func (v *Vault) Delete(id string) {
	for i := range v.entries {
		if v.entries[i].ID == id {
			zero(v.entries[i].Secret)
			v.entries = append(v.entries[:i], v.entries[i+1:]...)
			return
		}
	}
}

// Get returns a mutable reference to the entry with the given ID for
// in-place edits, or nil if it does not exist. The reference is valid until
// the next Add or Delete.
func (v *Vault) Get(id string) *Entry {
	for i := range v.entries {
		if v.entries[i].ID == id {
			return &v.entries[i]
		}
	}
	return nil
}

// Clear wipes every stored secret and empties the collection. This is the
// lock transition; the file on disk is untouched.
func (v *Vault) Clear() {
	for i := range v.entries {
		zero(v.entries[i].Secret)
	}
	v.entries = nil
	v.log.Debug("vault cleared")
}

// serialize produces the canonical plaintext: a JSON array of entries.
// deserialize is its exact inverse.
func (v *Vault) serialize() ([]byte, error) {
	if v.entries == nil {
		return json.Marshal([]Entry{})
	}
	return json.Marshal(v.entries)
}

func deserialize(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecordFormat, err)
	}
	return entries, nil
}

// Save serializes, encrypts and atomically writes the vault to its path.
// A fresh salt and nonce are drawn on every call. I/O failures come back as
// wrapped os errors, distinct from the crypto sentinels.
func (v *Vault) Save(password []byte) error {
	plaintext, err := v.serialize()
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	defer zero(plaintext)

	envelope, err := Encode(plaintext, password)
	if err != nil {
		return err
	}

	if err := atomicWriteFile(v.Path, envelope, 0600); err != nil {
		return fmt.Errorf("write vault: %w", err)
	}
	v.log.Info("vault saved", zap.Int("entries", len(v.entries)))
	return nil
}

// Load reads and decrypts the vault file, replacing the in-memory
// collection only on full success; on any failure the prior state is left
// untouched. A missing file is ErrNoVault ("no vault yet"), distinct from
// ErrAuthFailed and from real I/O errors.
func (v *Vault) Load(password []byte) error {
	envelope, err := os.ReadFile(v.Path)
	if os.IsNotExist(err) {
		return ErrNoVault
	}
	if err != nil {
		return fmt.Errorf("read vault: %w", err)
	}

	plaintext, err := Decode(envelope, password)
	if err != nil {
		return err
	}
	defer zero(plaintext)

	entries, err := deserialize(plaintext)
	if err != nil {
		return err
	}

	v.Clear()
	v.entries = entries
	v.log.Info("vault loaded", zap.Int("entries", len(v.entries)))
	return nil
}
