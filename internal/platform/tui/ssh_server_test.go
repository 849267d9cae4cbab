package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/siggyrun/internal/storage"
)

func TestResolveHostKeyPathCreatesDir(t *testing.T) {
	want := filepath.Join(t.TempDir(), "keys", "nested", "host_key")

	got, err := resolveHostKeyPath(want)
	if err != nil {
		t.Fatalf("resolveHostKeyPath() failed: %v", err)
	}
	if got != want {
		t.Errorf("resolveHostKeyPath() = %q, expected %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}
}

func TestRecordsForIsolatesUsers(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "ssh.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	srv := &SSHServer{store: store, logger: log.New(io.Discard)}

	alice := srv.recordsFor("alice")
	if err := alice.SetName("alice"); err != nil {
		t.Fatalf("SetName() failed: %v", err)
	}
	if _, err := alice.Commit(1234, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Commit() failed: %v", err)
	}

	bob := srv.recordsFor("bob")
	if bob.Name() != "" || bob.PersonalBest() != 0 {
		t.Errorf("bob sees alice's records: name %q best %d", bob.Name(), bob.PersonalBest())
	}
	if bob.Board().Rank("alice") != 0 {
		t.Error("alice should not be on bob's leaderboard")
	}

	again := srv.recordsFor("alice")
	if again.Name() != "alice" || again.PersonalBest() != 1234 {
		t.Errorf("alice reloaded: name %q best %d", again.Name(), again.PersonalBest())
	}
}

func TestRecordsForWithoutStore(t *testing.T) {
	srv := &SSHServer{logger: log.New(io.Discard)}

	records := srv.recordsFor("carol")
	if _, err := records.Commit(50, time.Now()); err != nil {
		t.Errorf("in-memory Commit() failed: %v", err)
	}
	if records.PersonalBest() != 50 {
		t.Errorf("PersonalBest() = %d, expected 50", records.PersonalBest())
	}
}
