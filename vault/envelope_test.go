package vault

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	plaintext := []byte("hello")
	password := []byte("correct-password")

	envelope, err := Encode(plaintext, password)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	wantLen := SaltLen + NonceLen + len(plaintext) + TagLen
	if len(envelope) != wantLen {
		t.Errorf("envelope length = %d, want %d", len(envelope), wantLen)
	}

	decoded, err := Decode(envelope, password)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, plaintext) {
		t.Errorf("Decode = %q, want %q", decoded, plaintext)
	}
}

func TestDecodeWrongPassword(t *testing.T) {
	envelope, err := Encode([]byte("hello"), []byte("correct-password"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if _, err := Decode(envelope, []byte("wrong-password")); !errors.Is(err, ErrAuthFailed) {
		t.Errorf("Decode with wrong password = %v, want ErrAuthFailed", err)
	}
}

func TestEncodeNondeterministic(t *testing.T) {
	plaintext := []byte("same plaintext")
	password := []byte("same password")

	first, err := Encode(plaintext, password)
	if err != nil {
		t.Fatalf("first Encode failed: %v", err)
	}
	second, err := Encode(plaintext, password)
	if err != nil {
		t.Fatalf("second Encode failed: %v", err)
	}

	if bytes.Equal(first, second) {
		t.Error("two encodings of the same input are identical; salt/nonce not fresh")
	}
	if bytes.Equal(first[:SaltLen], second[:SaltLen]) {
		t.Error("salt repeated across encodings")
	}
	if bytes.Equal(first[SaltLen:SaltLen+NonceLen], second[SaltLen:SaltLen+NonceLen]) {
		t.Error("nonce repeated across encodings")
	}
}

func TestDecodeTampered(t *testing.T) {
	password := []byte("correct-password")
	envelope, err := Encode([]byte("tamper me"), password)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// One flipped bit in each region of the envelope must break
	// authentication: salt, nonce, first ciphertext byte, last tag byte.
	offsets := []int{0, SaltLen, SaltLen + NonceLen, len(envelope) - 1}
	for _, off := range offsets {
		tampered := append([]byte(nil), envelope...)
		tampered[off] ^= 0x01
		if _, err := Decode(tampered, password); !errors.Is(err, ErrAuthFailed) {
			t.Errorf("Decode with bit flipped at offset %d = %v, want ErrAuthFailed", off, err)
		}
	}

	// Truncating by one byte must fail too.
	if _, err := Decode(envelope[:len(envelope)-1], password); !errors.Is(err, ErrAuthFailed) {
		t.Errorf("Decode of truncated envelope = %v, want ErrAuthFailed", err)
	}
}

func TestDecodeShortInput(t *testing.T) {
	for _, n := range []int{0, 1, SaltLen, SaltLen + NonceLen, MinEnvelopeLen - 1} {
		if _, err := Decode(make([]byte, n), []byte("pw")); !errors.Is(err, ErrMalformedEnvelope) {
			t.Errorf("Decode of %d bytes = %v, want ErrMalformedEnvelope", n, err)
		}
	}
}

func TestEncodeEmptyPlaintext(t *testing.T) {
	password := []byte("pw")
	envelope, err := Encode(nil, password)
	if err != nil {
		t.Fatalf("Encode of empty plaintext failed: %v", err)
	}
	if len(envelope) != MinEnvelopeLen {
		t.Errorf("envelope length = %d, want %d", len(envelope), MinEnvelopeLen)
	}
	decoded, err := Decode(envelope, password)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("decoded %d bytes, want empty", len(decoded))
	}
}
