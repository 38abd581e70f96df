// Package cli is the terminal shell around the vault: configuration,
// password prompts, an interactive TUI and a plain command loop.
package cli

import (
	"flag"
	"os"
)

// Options holds the runtime configuration for the lockbox binary.
type Options struct {
	// VaultPath is the encrypted vault file location.
	VaultPath string

	// LogPath is where structured logs go; the terminal stays clean for
	// the interface.
	LogPath string

	// Plain disables the TUI in favor of the line-based command loop.
	Plain bool
}

// ParseOptions reads command-line flags and environment overrides.
// LOCKBOX_VAULT and LOCKBOX_LOG take precedence over the flags.
func ParseOptions() (*Options, error) {
	vaultPath, err := DefaultVaultPath()
	if err != nil {
		return nil, err
	}
	logPath, err := DefaultLogPath()
	if err != nil {
		return nil, err
	}

	opts := &Options{}
	flag.StringVar(&opts.VaultPath, "vault", vaultPath, "path to the vault file")
	flag.StringVar(&opts.LogPath, "log", logPath, "path to the log file")
	flag.BoolVar(&opts.Plain, "plain", false, "use the plain command loop instead of the TUI")
	flag.Parse()

	if v := os.Getenv("LOCKBOX_VAULT"); v != "" {
		opts.VaultPath = v
	}
	if v := os.Getenv("LOCKBOX_LOG"); v != "" {
		opts.LogPath = v
	}

	return opts, nil
}
