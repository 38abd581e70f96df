package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/term"
)

// DefaultVaultPath returns ~/.lockbox/vault.dat, creating the directory if
// needed.
func DefaultVaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".lockbox")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}

	return filepath.Join(dir, "vault.dat"), nil
}

// DefaultLogPath returns ~/.lockbox/lockbox.log.
func DefaultLogPath() (string, error) {
	p, err := DefaultVaultPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(p), "lockbox.log"), nil
}

func ReadPassword(prompt string) ([]byte, error) {
	fmt.Print(prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()

	return pw, err
}

// ReadPasswordMasked prompts for a password, echoing an asterisk per rune.
func ReadPasswordMasked(prompt string) []byte {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	state, _ := term.MakeRaw(fd)
	defer term.Restore(fd, state)

	var input []rune
	for {
		var buf [1]byte
		os.Stdin.Read(buf[:])
		c := buf[0]

		switch c {
		case 13, 10: // Enter
			fmt.Println()
			return []byte(string(input))
		case 127, 8: // Backspace
			if len(input) > 0 {
				input = input[:len(input)-1]
				fmt.Print("\b \b")
			}
		default:
			r, _ := utf8.DecodeRune(buf[:])
			input = append(input, r)
			fmt.Print("*")
		}
	}
}
