package vault

import (
	"errors"
	"strings"
	"testing"
)

func TestGeneratePasswordLength(t *testing.T) {
	for _, n := range []int{1, 8, 32, 128} {
		pw, err := GeneratePassword(n, true, true, true, true)
		if err != nil {
			t.Fatalf("GeneratePassword(%d) failed: %v", n, err)
		}
		if len(pw) != n {
			t.Errorf("len = %d, want %d", len(pw), n)
		}
	}
}

func TestGeneratePasswordHonorsClasses(t *testing.T) {
	pw, err := GeneratePassword(64, false, false, true, false)
	if err != nil {
		t.Fatalf("GeneratePassword failed: %v", err)
	}
	for _, c := range pw {
		if !strings.ContainsRune(digitChars, c) {
			t.Fatalf("digits-only password contains %q", c)
		}
	}

	pw, err = GeneratePassword(64, true, false, false, false)
	if err != nil {
		t.Fatalf("GeneratePassword failed: %v", err)
	}
	for _, c := range pw {
		if !strings.ContainsRune(upperChars, c) {
			t.Fatalf("uppercase-only password contains %q", c)
		}
	}
}

func TestGeneratePasswordNoClasses(t *testing.T) {
	if _, err := GeneratePassword(16, false, false, false, false); !errors.Is(err, ErrNoCharClasses) {
		t.Errorf("no classes = %v, want ErrNoCharClasses", err)
	}
}

func TestGeneratePasswordBadLength(t *testing.T) {
	for _, n := range []int{0, -5} {
		if _, err := GeneratePassword(n, true, true, true, true); err == nil {
			t.Errorf("GeneratePassword(%d) succeeded, want error", n)
		}
	}
}
