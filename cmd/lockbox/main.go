package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/avasiliev/lockbox/cli"
	"github.com/avasiliev/lockbox/vault"
)

func main() {
	opts, err := cli.ParseOptions()
	if err != nil {
		fmt.Println("Error resolving paths:", err)
		os.Exit(1)
	}

	logger, err := newLogger(opts.LogPath)
	if err != nil {
		fmt.Println("Error opening log file:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// The random source must be usable before any key derivation or
	// encryption; without it the process cannot handle secrets at all.
	if err := vault.Init(); err != nil {
		logger.Error("crypto init failed", zap.Error(err))
		fmt.Println("Fatal:", err)
		os.Exit(1)
	}

	v := vault.NewVault(opts.VaultPath, logger)

	if opts.Plain {
		runPlain(v, logger)
		return
	}

	if err := cli.RunTUI(v, logger); err != nil {
		logger.Error("tui failed", zap.Error(err))
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

// runPlain unlocks in the terminal and hands off to the command loop.
func runPlain(v *vault.Vault, logger *zap.Logger) {
	var password []byte
	for {
		password = cli.ReadPasswordMasked("Enter master password: ")
		err := v.Load(password)
		if err == nil {
			break
		}
		if errors.Is(err, vault.ErrNoVault) {
			fmt.Println("New vault. It is written to disk on first save.")
			break
		}
		vault.Zero(password)
		if errors.Is(err, vault.ErrAuthFailed) || errors.Is(err, vault.ErrMalformedEnvelope) {
			fmt.Println("Wrong password or corrupt vault file.")
			continue
		}
		logger.Error("unlock failed", zap.Error(err))
		fmt.Println("Error opening vault:", err)
		os.Exit(1)
	}
	defer func() {
		v.Clear()
		vault.Zero(password)
	}()

	cli.RunCommands(v, password)
}

// newLogger writes structured logs to a file so the terminal stays free for
// the interface.
func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
