package store

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pomocli/pomo/internal/session"
)

const filePermission = 0o600

// logHeader is the CSV header row, written only when the log file is newly
// created or empty.
var logHeader = []string{"title", "minutes", "datetime", "type"}

// FileStore persists the activity log as an append-only CSV file and the
// last-used title as a single-line text file.
type FileStore struct {
	logPath   string
	titlePath string
}

// NewFileStore returns a store backed by the given CSV log and title state
// file paths.
func NewFileStore(logPath, titlePath string) *FileStore {
	return &FileStore{
		logPath:   logPath,
		titlePath: titlePath,
	}
}

// formatMinutes renders a minutes value with the fewest digits necessary,
// so completed sessions read "25" while partials read "1.5".
func formatMinutes(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

// Append writes one record to the CSV log, creating the file and its header
// row on first use.
func (f *FileStore) Append(r *session.Record) error {
	file, err := os.OpenFile(
		f.logPath,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		filePermission,
	)
	if err != nil {
		return err
	}

	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	w := csv.NewWriter(file)

	if info.Size() == 0 {
		if err = w.Write(logHeader); err != nil {
			return err
		}
	}

	err = w.Write([]string{
		r.Title,
		formatMinutes(r.Minutes),
		r.Timestamp.Format(time.RFC3339),
		r.Type,
	})
	if err != nil {
		return err
	}

	w.Flush()

	return w.Error()
}

// LastTitle reads the persisted session title, trimmed of surrounding
// whitespace. A missing file means no previous title and is not an error.
func (f *FileStore) LastTitle() (string, error) {
	b, err := os.ReadFile(f.titlePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}

		return "", err
	}

	return strings.TrimSpace(string(b)), nil
}

// SaveTitle overwrites the title state file with the given title.
func (f *FileStore) SaveTitle(title string) error {
	return os.WriteFile(f.titlePath, []byte(title), filePermission)
}
