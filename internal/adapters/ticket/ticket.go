// Package ticket writes a QR-code PNG for every registration.
package ticket

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"

	"venuebook/internal/domain/entities"
)

const size = 256

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type Issuer struct {
	dir string
}

// NewIssuer writes tickets under dir, creating it when needed.
func NewIssuer(dir string) *Issuer {
	return &Issuer{dir: dir}
}

// Payload is the text encoded in the QR code.
func Payload(p *entities.Participant) string {
	return fmt.Sprintf("VENUEBOOK\nevent=%s\nroll=%s\nname=%s\ndepartment=%s",
		p.EventName, p.RollNumber, p.Name, p.Department)
}

// FileName is <event>_<roll>.png with anything outside [A-Za-z0-9._-]
// collapsed to "_".
func FileName(p *entities.Participant) string {
	return sanitize(p.EventName) + "_" + sanitize(p.RollNumber) + ".png"
}

func sanitize(s string) string {
	s = strings.Trim(unsafeChars.ReplaceAllString(s, "_"), "_.")
	if s == "" {
		return "x"
	}
	return s
}

// Issue writes the ticket for p and returns its path.
func (i *Issuer) Issue(p *entities.Participant) (string, error) {
	if err := os.MkdirAll(i.dir, 0o755); err != nil {
		return "", fmt.Errorf("create ticket dir: %w", err)
	}
	path := filepath.Join(i.dir, FileName(p))
	if err := qrcode.WriteFile(Payload(p), qrcode.Medium, size, path); err != nil {
		return "", fmt.Errorf("write ticket %s: %w", path, err)
	}
	log.WithFields(log.Fields{"event": p.EventName, "roll": p.RollNumber, "path": path}).Info("🎟️ Ticket issued")
	return path, nil
}
