package ticket

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"venuebook/internal/domain/entities"
)

func TestIssueWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tickets")
	p := &entities.Participant{Name: "Bob", RollNumber: "CS/042", Department: "CS", Phone: "555", EventName: "Intro to Go"}

	path, err := NewIssuer(dir).Issue(p)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if want := filepath.Join(dir, "Intro_to_Go_CS_042.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("ticket is not a PNG")
	}
}

func TestFileNameSanitized(t *testing.T) {
	tests := []struct {
		event, roll, want string
	}{
		{"Hackathon", "R1", "Hackathon_R1.png"},
		{"../etc", "passwd", "etc_passwd.png"},
		{"???", "", "x_x.png"},
	}
	for _, tt := range tests {
		got := FileName(&entities.Participant{EventName: tt.event, RollNumber: tt.roll})
		if got != tt.want {
			t.Errorf("FileName(%q, %q) = %q, want %q", tt.event, tt.roll, got, tt.want)
		}
	}
}
