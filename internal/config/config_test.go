package config

import (
	"os"
	"path/filepath"
	"testing"

	"venuebook/internal/domain/venue"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != BackendFile || cfg.EventsFile != "events.txt" || cfg.ParticipantsFile != "participants.txt" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Locale != "en" || cfg.LogLevel != "info" {
		t.Errorf("defaults = %+v", cfg)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		t.Fatal(err)
	}
	if catalog.Len() != 7 {
		t.Errorf("default catalog has %d rooms", catalog.Len())
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORE_BACKEND", "SQLite")
	t.Setenv("VENUEBOOK_SQLITE_PATH", "/tmp/x.db")
	t.Setenv("LOCALE", "fr")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != BackendSQLite || cfg.SQLitePath != "/tmp/x.db" || cfg.Locale != "fr" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("VENUEBOOK_TICKETS_DIR=tickets\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("VENUEBOOK_TICKETS_DIR") })
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TicketsDir != "tickets" {
		t.Errorf("TicketsDir = %q", cfg.TicketsDir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"file", Config{Backend: "file", EventsFile: "e", ParticipantsFile: "p", Locale: "en"}, false},
		{"unknown backend", Config{Backend: "redis", Locale: "en"}, true},
		{"postgres without dsn", Config{Backend: "postgres", Locale: "en"}, true},
		{"postgres bad dsn", Config{Backend: "postgres", DatabaseURL: "localhost", Locale: "en"}, true},
		{"postgres", Config{Backend: "postgres", DatabaseURL: "postgres://localhost:5432/venuebook", Locale: "en"}, false},
		{"bad locale", Config{Backend: "sqlite", SQLitePath: "x.db", Locale: "not a locale!"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.toml")
	content := `
[[room]]
id = "Seminar hall"
capacity = 120

[[room]]
id = "Lab 3"
capacity = 24
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := &Config{RoomsFile: path}
	catalog, err := cfg.Catalog()
	if err != nil {
		t.Fatal(err)
	}
	rooms := catalog.Rooms()
	if len(rooms) != 2 || rooms[0].ID != "Lab 3" || rooms[1].Capacity != 120 {
		t.Errorf("rooms = %+v", rooms)
	}

	if err := os.WriteFile(path, []byte("[[room]]\nid = \"A\"\ncapacity = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Error("zero capacity accepted")
	}
}

func TestExampleRoomsMatchDefaults(t *testing.T) {
	catalog, err := LoadCatalog(filepath.Join("..", "..", "rooms.example.toml"))
	if err != nil {
		t.Fatal(err)
	}
	want := venue.MustCatalog(venue.DefaultRooms()).Rooms()
	got := catalog.Rooms()
	if len(got) != len(want) {
		t.Fatalf("got %d rooms, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("room %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory for the duration of the test and restores it after.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
