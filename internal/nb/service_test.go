package nb_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"networkbook/internal/nb"
	"networkbook/internal/storage"
	"networkbook/internal/testutil"
)

const testBookID = "book-1"

type serviceFixture struct {
	svc     *nb.NBService
	storage *testutil.FlakyStorage
	vault   nb.Vault
	clock   *testutil.StubClock
}

func newServiceFixture(t *testing.T, vault nb.Vault) serviceFixture {
	t.Helper()
	store := testutil.NewFlakyStorage(testutil.TypicalPersons(t)...)
	clock := testutil.FixedClock()
	svc := nb.NewNBService(store, vault, storage.JSONCodec{}, testutil.NewTestEncryptor(),
		nb.NewNopLogger(), clock, testutil.NewStubIDGenerator(), testBookID)
	if err := svc.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return serviceFixture{svc: svc, storage: store, vault: vault, clock: clock}
}

func TestNBService_Load(t *testing.T) {
	f := newServiceFixture(t, nil)
	assertNames(t, names(f.svc.Model().Displayed()),
		[]string{"Alice Pauline", "Benson Meier", "Carl Kurz", "Daniel Meier", "Elle Meyer"})

	t.Run("duplicate stored contacts", func(t *testing.T) {
		alice := testutil.Alice(t)
		store := testutil.NewFlakyStorage(alice, alice)
		svc := nb.NewNBService(store, nil, storage.JSONCodec{}, testutil.NewTestEncryptor(),
			nb.NewNopLogger(), testutil.FixedClock(), testutil.NewStubIDGenerator(), testBookID)
		if err := svc.Load(); !errors.Is(err, nb.ErrDuplicateRecord) {
			t.Errorf("Load() error = %v, want ErrDuplicateRecord", err)
		}
	})
}

func TestNBService_Execute(t *testing.T) {
	t.Run("saves after a change", func(t *testing.T) {
		f := newServiceFixture(t, nil)
		if _, err := f.svc.Execute(&nb.CreateCommand{Person: testutil.Amy(t)}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if f.storage.Saves() != 1 {
			t.Errorf("Saves() = %d, want 1", f.storage.Saves())
		}
		if got := len(f.storage.Persons()); got != 6 {
			t.Errorf("stored %d persons, want 6", got)
		}
	})

	t.Run("does not save when nothing changed", func(t *testing.T) {
		f := newServiceFixture(t, nil)
		for _, cmd := range []nb.Command{
			nb.ListCommand{},
			&nb.FindCommand{Terms: []string{"meier"}},
			&nb.SortCommand{Field: nb.SortByName, Order: nb.Ascending},
			nb.HelpCommand{},
		} {
			if _, err := f.svc.Execute(cmd); err != nil {
				t.Fatalf("Execute(%T) error = %v", cmd, err)
			}
		}
		if f.storage.Saves() != 0 {
			t.Errorf("Saves() = %d, want 0", f.storage.Saves())
		}
	})

	t.Run("does not save after a failed command", func(t *testing.T) {
		f := newServiceFixture(t, nil)
		if _, err := f.svc.Execute(&nb.CreateCommand{Person: testutil.Alice(t)}); !errors.Is(err, nb.ErrDuplicateRecord) {
			t.Fatalf("Execute() error = %v, want ErrDuplicateRecord", err)
		}
		if f.storage.Saves() != 0 {
			t.Errorf("Saves() = %d, want 0", f.storage.Saves())
		}
	})

	t.Run("rolls back when the save fails", func(t *testing.T) {
		f := newServiceFixture(t, nil)
		f.storage.Fail()

		_, err := f.svc.Execute(&nb.DeleteCommand{Index: 0})
		if !errors.Is(err, testutil.ErrStorageFailed) {
			t.Fatalf("Execute() error = %v, want ErrStorageFailed", err)
		}
		if got := len(f.svc.Model().Persons()); got != 5 {
			t.Errorf("len(Persons()) = %d after failed save, want 5", got)
		}
		if !f.svc.Model().HasPerson(testutil.Alice(t)) {
			t.Error("deleted person was not restored")
		}
	})
}

func TestNBService_Backup(t *testing.T) {
	t.Run("stores an encrypted snapshot", func(t *testing.T) {
		f := newServiceFixture(t, testutil.NewTestVault())

		snap, err := f.svc.Backup()
		if err != nil {
			t.Fatalf("Backup() error = %v", err)
		}
		if snap.ID != "snap-1" || snap.Version != 1 || snap.Persons != 5 {
			t.Errorf("Backup() = %+v, want snap-1 version 1 with 5 persons", snap)
		}
		if !snap.CreatedAt.Equal(f.clock.Now()) {
			t.Errorf("CreatedAt = %v, want %v", snap.CreatedAt, f.clock.Now())
		}

		var stored bytes.Buffer
		if err := f.vault.GetSnapshot(testBookID, &stored); err != nil {
			t.Fatalf("GetSnapshot() error = %v", err)
		}
		if int64(stored.Len()) != snap.Size {
			t.Errorf("stored %d bytes, snapshot reports %d", stored.Len(), snap.Size)
		}
		if strings.HasPrefix(stored.String(), "{") {
			t.Error("snapshot stored as plaintext")
		}
	})

	t.Run("versions increase", func(t *testing.T) {
		f := newServiceFixture(t, testutil.NewTestVault())
		for want := int64(1); want <= 3; want++ {
			f.clock.Advance(time.Hour)
			snap, err := f.svc.Backup()
			if err != nil {
				t.Fatalf("Backup() error = %v", err)
			}
			if snap.Version != want {
				t.Errorf("Backup() version = %d, want %d", snap.Version, want)
			}
			if !snap.CreatedAt.Equal(f.clock.Now()) {
				t.Errorf("CreatedAt = %v, want %v", snap.CreatedAt, f.clock.Now())
			}
		}
	})

	t.Run("without a vault", func(t *testing.T) {
		f := newServiceFixture(t, nil)
		if _, err := f.svc.Backup(); !errors.Is(err, nb.ErrNoVault) {
			t.Errorf("Backup() error = %v, want ErrNoVault", err)
		}
	})
}

func TestNBService_Restore(t *testing.T) {
	t.Run("restores the latest snapshot", func(t *testing.T) {
		f := newServiceFixture(t, testutil.NewTestVault())
		if _, err := f.svc.Backup(); err != nil {
			t.Fatalf("Backup() error = %v", err)
		}
		if _, err := f.svc.Execute(nb.ClearCommand{}); err != nil {
			t.Fatalf("clear error = %v", err)
		}

		n, err := f.svc.Restore("any passphrase")
		if err != nil {
			t.Fatalf("Restore() error = %v", err)
		}
		if n != 5 {
			t.Errorf("Restore() = %d, want 5", n)
		}

		want := testutil.TypicalPersons(t)
		for _, got := range [][]string{names(f.svc.Model().Persons()), names(f.storage.Persons())} {
			assertNames(t, got, names(want))
		}
		restored := f.svc.Model().Persons()
		for i := range want {
			if !restored[i].Equal(want[i]) {
				t.Errorf("restored person %d = %v, want %v", i, restored[i], want[i])
			}
		}
	})

	t.Run("invalid snapshot leaves the book untouched", func(t *testing.T) {
		vault := testutil.NewTestVault()
		f := newServiceFixture(t, vault)

		var sealed bytes.Buffer
		doc := `{"persons": [{"name": "Alex Yeoh"}]}`
		if err := testutil.NewTestEncryptor().Encrypt(strings.NewReader(doc), &sealed); err != nil {
			t.Fatalf("Encrypt() error = %v", err)
		}
		if err := vault.PutSnapshot(testBookID, &sealed, int64(sealed.Len()), 1); err != nil {
			t.Fatalf("PutSnapshot() error = %v", err)
		}

		if _, err := f.svc.Restore("any"); err == nil {
			t.Fatal("Restore() expected error for invalid snapshot")
		}
		if got := len(f.svc.Model().Persons()); got != 5 {
			t.Errorf("len(Persons()) = %d, want 5", got)
		}
		if f.storage.Saves() != 0 {
			t.Errorf("Saves() = %d, want 0", f.storage.Saves())
		}
	})

	t.Run("without a vault", func(t *testing.T) {
		f := newServiceFixture(t, nil)
		if _, err := f.svc.Restore("any"); !errors.Is(err, nb.ErrNoVault) {
			t.Errorf("Restore() error = %v, want ErrNoVault", err)
		}
	})
}
