// Package flatfile stores events and participants as one delimited record
// per line. Fields are CSV-quoted when they contain the delimiter or quotes,
// so plain legacy lines and quoted lines read the same way.
package flatfile

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"venuebook/internal/domain"
	"venuebook/internal/domain/entities"
	"venuebook/pkg/schedule"
)

const (
	eventFields       = 8
	participantFields = 5

	// maxLineBytes bounds one stored record. Longer lines are skipped.
	maxLineBytes = 64 * 1024
)

// decodeLine splits one record. Bare quotes inside unquoted fields are
// kept as text, as older files wrote them unescaped.
func decodeLine(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.Read()
}

func eventToRecord(e *entities.Event) []string {
	return []string{
		e.Name,
		e.Organizer,
		string(e.Category),
		e.Date,
		e.StartTime,
		e.EndTime,
		strconv.Itoa(e.Seats),
		e.Venue,
	}
}

func recordToEvent(rec []string) (entities.Event, error) {
	if len(rec) != eventFields {
		return entities.Event{}, fmt.Errorf("want %d fields, got %d", eventFields, len(rec))
	}
	seats, err := strconv.Atoi(strings.TrimSpace(rec[6]))
	if err != nil {
		return entities.Event{}, fmt.Errorf("seats %q: %w", rec[6], err)
	}
	if seats <= 0 {
		return entities.Event{}, fmt.Errorf("seats %d: must be positive", seats)
	}
	category, err := entities.ParseCategory(rec[2])
	if err != nil {
		return entities.Event{}, fmt.Errorf("category %q: %w", rec[2], err)
	}
	// Older files hold times as typed ("9:00 AM"); availability compares
	// zero-padded 24h strings.
	slot, err := schedule.ValidateSlot(rec[3], rec[4], rec[5])
	if err != nil {
		return entities.Event{}, fmt.Errorf("schedule %s %s-%s: %w", rec[3], rec[4], rec[5], err)
	}
	return entities.Event{
		Name:      strings.TrimSpace(rec[0]),
		Organizer: strings.TrimSpace(rec[1]),
		Category:  category,
		Date:      slot.Date,
		StartTime: slot.Start,
		EndTime:   slot.End,
		Seats:     seats,
		Venue:     strings.TrimSpace(rec[7]),
	}, nil
}

func participantToRecord(p *entities.Participant) []string {
	return []string{p.Name, p.RollNumber, p.Department, p.Phone, p.EventName}
}

func recordToParticipant(rec []string) (entities.Participant, error) {
	if len(rec) != participantFields {
		return entities.Participant{}, fmt.Errorf("want %d fields, got %d", participantFields, len(rec))
	}
	return entities.Participant{
		Name:       rec[0],
		RollNumber: rec[1],
		Department: rec[2],
		Phone:      rec[3],
		EventName:  rec[4],
	}, nil
}

// readRecords decodes every line of path with parse. Malformed lines are
// logged and skipped. A missing file holds no records.
func readRecords[T any](path string, parse func([]string) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.StoreError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	var out []T
	r := bufio.NewReader(f)
	lineNo := 0
	for {
		line, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, &domain.StoreError{Op: "read", Path: path, Err: readErr}
		}
		if line != "" {
			lineNo++
			if v, err := parseLine(line, parse); err != nil {
				log.WithFields(log.Fields{"file": path, "line": lineNo}).Warnf("⚠️ Skipping malformed record: %v", err)
			} else if v != nil {
				out = append(out, *v)
			}
		}
		if readErr != nil {
			return out, nil
		}
	}
}

// parseLine decodes one raw line. Blank lines give nil and no error.
func parseLine[T any](line string, parse func([]string) (T, error)) (*T, error) {
	if len(line) > maxLineBytes {
		return nil, fmt.Errorf("line is %d bytes, limit %d", len(line), maxLineBytes)
	}
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	rec, err := decodeLine(line)
	if err != nil {
		return nil, err
	}
	v, err := parse(rec)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// appendRecord adds one line at the end of path, creating it if needed.
func appendRecord(path string, fields []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &domain.StoreError{Op: "open", Path: path, Err: err}
	}
	w := csv.NewWriter(f)
	if err := w.Write(fields); err != nil {
		f.Close()
		return &domain.StoreError{Op: "write", Path: path, Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return &domain.StoreError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &domain.StoreError{Op: "close", Path: path, Err: err}
	}
	return nil
}

// rewrite replaces path with the given records through a temp file and a
// rename, so readers never see a half-written store.
func rewrite(path string, records [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return &domain.StoreError{Op: "encode", Path: path, Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &domain.StoreError{Op: "encode", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return &domain.StoreError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &domain.StoreError{Op: "chmod", Path: tmpName, Err: err}
	}
	if _, err := io.Copy(tmp, &buf); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &domain.StoreError{Op: "write", Path: tmpName, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &domain.StoreError{Op: "close", Path: tmpName, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &domain.StoreError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
