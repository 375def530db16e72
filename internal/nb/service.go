package nb

import (
	"bytes"
	"fmt"
	"time"
)

// NBService is the orchestration layer that runs commands against the
// session's Model and keeps storage and the backup vault in step with it.
type NBService struct {
	model     *Model
	storage   Storage
	vault     Vault
	codec     Codec
	encryptor Encryptor
	logger    Logger
	clock     Clock
	idgen     IDGenerator
	bookID    string
}

// NewNBService creates a new NBService with the provided dependencies.
// vault may be nil, in which case Backup and Restore return ErrNoVault.
// Call Load before executing commands.
func NewNBService(storage Storage, vault Vault, codec Codec, encryptor Encryptor, logger Logger, clock Clock, idgen IDGenerator, bookID string) *NBService {
	return &NBService{
		model:     &Model{},
		storage:   storage,
		vault:     vault,
		codec:     codec,
		encryptor: encryptor,
		logger:    logger,
		clock:     clock,
		idgen:     idgen,
		bookID:    bookID,
	}
}

// Load replaces the session's contacts with the stored ones.
func (s *NBService) Load() error {
	persons, err := s.storage.Load()
	if err != nil {
		return fmt.Errorf("loading contacts: %w", err)
	}
	model, err := NewModel(persons...)
	if err != nil {
		return fmt.Errorf("loading contacts: %w", err)
	}
	s.model = model
	s.logger.Debug("contacts loaded", "count", len(persons))
	return nil
}

// Model returns the session's contact book.
func (s *NBService) Model() *Model {
	return s.model
}

// Execute runs cmd and saves the book if cmd changed it. When the save
// fails the change is rolled back, so the session never shows contacts
// that are not on disk.
func (s *NBService) Execute(cmd Command) (Result, error) {
	before := s.model.Version()
	snapshot := s.model.Persons()

	result, err := cmd.Execute(s.model)
	if err != nil {
		s.logger.Warn("command failed", "command", fmt.Sprintf("%T", cmd), "error", err)
		return Result{}, err
	}

	if s.model.Version() != before {
		if err := s.storage.Save(s.model.Persons()); err != nil {
			if rbErr := s.model.Replace(snapshot); rbErr != nil {
				s.logger.Error("rolling back model", "error", rbErr)
			}
			return Result{}, fmt.Errorf("saving contacts: %w", err)
		}
		s.logger.Info("contacts saved", "command", fmt.Sprintf("%T", cmd), "count", len(s.model.persons))
	}

	return result, nil
}

// Snapshot describes a backup stored in the vault.
type Snapshot struct {
	ID        string
	Version   int64
	Persons   int
	Size      int64
	CreatedAt time.Time
}

// Backup encodes the whole book, encrypts it and stores it in the vault
// under the next version number.
func (s *NBService) Backup() (*Snapshot, error) {
	if s.vault == nil {
		return nil, ErrNoVault
	}

	persons := s.model.Persons()
	var plain bytes.Buffer
	if err := s.codec.Encode(&plain, persons); err != nil {
		return nil, fmt.Errorf("encoding contacts: %w", err)
	}

	var sealed bytes.Buffer
	if err := s.encryptor.Encrypt(&plain, &sealed); err != nil {
		return nil, fmt.Errorf("encrypting snapshot: %w", err)
	}

	current, err := s.vault.GetSnapshotVersion(s.bookID)
	if err != nil {
		return nil, fmt.Errorf("checking snapshot version: %w", err)
	}

	snap := &Snapshot{
		ID:        s.idgen.New(),
		Version:   current + 1,
		Persons:   len(persons),
		Size:      int64(sealed.Len()),
		CreatedAt: s.clock.Now(),
	}
	if err := s.vault.PutSnapshot(s.bookID, &sealed, snap.Size, snap.Version); err != nil {
		return nil, fmt.Errorf("uploading snapshot: %w", err)
	}

	s.logger.Info("backup complete", "snapshot", snap.ID, "version", snap.Version, "count", snap.Persons)
	return snap, nil
}

// Restore replaces the book with the newest snapshot in the vault. The
// snapshot is decrypted with passphrase and fully validated before anything
// local is touched. Returns the number of contacts restored.
func (s *NBService) Restore(passphrase string) (int, error) {
	if s.vault == nil {
		return 0, ErrNoVault
	}

	var sealed bytes.Buffer
	if err := s.vault.GetSnapshot(s.bookID, &sealed); err != nil {
		return 0, fmt.Errorf("downloading snapshot: %w", err)
	}

	dc, err := s.encryptor.Unlock(passphrase)
	if err != nil {
		return 0, fmt.Errorf("unlocking private key: %w", err)
	}
	var plain bytes.Buffer
	if err := dc.Decrypt(&sealed, &plain); err != nil {
		return 0, fmt.Errorf("decrypting snapshot: %w", err)
	}

	persons, err := s.codec.Decode(&plain)
	if err != nil {
		return 0, fmt.Errorf("decoding snapshot: %w", err)
	}
	model, err := NewModel(persons...)
	if err != nil {
		return 0, fmt.Errorf("decoding snapshot: %w", err)
	}

	if err := s.storage.Save(persons); err != nil {
		return 0, fmt.Errorf("saving restored contacts: %w", err)
	}
	s.model = model

	s.logger.Info("restore complete", "count", len(persons))
	return len(persons), nil
}
