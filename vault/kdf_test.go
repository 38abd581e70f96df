package vault

import (
	"bytes"
	"errors"
	"testing"
)

func TestDeriveKeyDeterministic(t *testing.T) {
	password := []byte("master")
	salt := bytes.Repeat([]byte{0x42}, SaltLen)

	k1, err := DeriveKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	k2, err := DeriveKey([]byte("master"), salt)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}

	if len(k1) != KeyLen {
		t.Errorf("key length = %d, want %d", len(k1), KeyLen)
	}
	if !bytes.Equal(k1, k2) {
		t.Error("same (password, salt) produced different keys")
	}
}

func TestDeriveKeySaltSensitive(t *testing.T) {
	password := []byte("master")
	saltA := bytes.Repeat([]byte{0x01}, SaltLen)
	saltB := bytes.Repeat([]byte{0x02}, SaltLen)

	kA, err := DeriveKey(password, saltA)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	kB, err := DeriveKey(password, saltB)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if bytes.Equal(kA, kB) {
		t.Error("different salts produced the same key")
	}
}

func TestDeriveKeyBadSaltLength(t *testing.T) {
	if _, err := DeriveKey([]byte("pw"), make([]byte, SaltLen-1)); !errors.Is(err, ErrKeyDerivation) {
		t.Errorf("DeriveKey with short salt = %v, want ErrKeyDerivation", err)
	}
}
