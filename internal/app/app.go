package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"networkbook/internal/config"
	"networkbook/internal/encryption"
	"networkbook/internal/nb"
	"networkbook/internal/parser"
	"networkbook/internal/person"
	"networkbook/internal/storage"
	"networkbook/internal/vault"
)

// ErrKeysMissing is returned by Backup when encryption is enabled but the
// key pair has not been generated.
var ErrKeysMissing = errors.New("encryption keys not found: run `networkbook config init --encrypt`")

// NBApp is the application layer between the CLI and NBService.
// It constructs all dependencies from config, accepts raw command lines,
// and releases storage and the log file on Close.
type NBApp struct {
	cfg       *config.Config
	storage   nb.Storage
	vault     nb.Vault
	encryptor nb.Encryptor
	service   *nb.NBService
	op        *Operation
	logger    *slog.Logger
	logFile   *os.File
}

// NewNBApp creates a fully wired NBApp from the given config and loads the
// stored contacts. operation identifies the CLI command being run (e.g.
// "Exec", "Backup"). The caller must call Close when done.
func NewNBApp(cfg *config.Config, operation, parameters string) (*NBApp, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	st, err := storage.NewStorageFromConfig(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("creating storage: %w", err)
	}

	if db, ok := st.(*storage.SQLiteStorage); ok {
		if err := db.CheckMigrations(); err != nil {
			st.Close()
			return nil, fmt.Errorf("database schema out of date: %w", err)
		}
	}

	// Backups are optional; without a vault, backup and restore report ErrNoVault.
	var v nb.Vault
	if len(cfg.Vaults) > 0 {
		v, err = vault.NewVaultFromConfig(cfg.Vaults[0])
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("creating vault: %w", err)
		}
	}

	enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating encryptor: %w", err)
	}

	opID := time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(cfg.LogDir, opID, level)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	svc := nb.NewNBService(st, v, storage.JSONCodec{}, enc, &slogAdapter{l: logger}, nb.RealClock{}, nb.UUIDGenerator{}, cfg.BookID)
	if err := svc.Load(); err != nil {
		st.Close()
		logFile.Close()
		return nil, err
	}

	return &NBApp{
		cfg:       cfg,
		storage:   st,
		vault:     v,
		encryptor: enc,
		service:   svc,
		op:        NewOperation(opID, operation, parameters),
		logger:    logger,
		logFile:   logFile,
	}, nil
}

// Execute parses line as a user command and runs it against the book.
func (a *NBApp) Execute(line string) (nb.Result, error) {
	cmd, err := parser.ParseCommand(line)
	if err != nil {
		a.op.Record(err)
		return nb.Result{}, err
	}
	result, err := a.service.Execute(cmd)
	a.op.Record(err)
	return result, err
}

// Displayed returns the contacts the last list, find, filter or sort left
// on screen. Command indexes refer to positions in this list.
func (a *NBApp) Displayed() []person.Person {
	return a.service.Model().Displayed()
}

// Backup uploads an encrypted snapshot of the whole book to the vault.
func (a *NBApp) Backup() (*nb.Snapshot, error) {
	if !a.encryptor.IsConfigured() {
		err := ErrKeysMissing
		a.op.Record(err)
		return nil, err
	}
	snap, err := a.service.Backup()
	a.op.Record(err)
	return snap, err
}

// Restore replaces the book with the newest snapshot in the vault.
// Returns the number of contacts restored.
func (a *NBApp) Restore(passphrase string) (int, error) {
	n, err := a.service.Restore(passphrase)
	a.op.Record(err)
	return n, err
}

// Encrypted reports whether backups are sealed with a passphrase-protected key.
func (a *NBApp) Encrypted() bool {
	return a.cfg.Encryption.Type == "age"
}

// CheckVault verifies the configured vault is reachable.
func (a *NBApp) CheckVault() error {
	if a.vault == nil {
		return nb.ErrNoVault
	}
	if err := a.vault.ValidateSetup(); err != nil {
		return fmt.Errorf("validating vault: %w", err)
	}
	return nil
}

// Close logs the operation outcome and closes all resources.
func (a *NBApp) Close() error {
	a.logger.Info("operation finished",
		"operation", a.op.Operation,
		"parameters", a.op.Parameters,
		"status", a.op.Status,
		"commands", a.op.Commands)

	var errs []error
	if err := a.storage.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing storage: %w", err))
	}
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing log file: %w", err))
		}
	}
	return errors.Join(errs...)
}
