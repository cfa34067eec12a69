package storage

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/expense-cli/expense/internal/expense"
	"github.com/expense-cli/expense/internal/log"
)

// JSONFile stores the collection as a pretty-printed JSON array.
type JSONFile struct {
	path string
	log  *log.Logger
}

// JSONFileOption configures a JSONFile.
type JSONFileOption func(*JSONFile)

// WithFileLogger logs loads and saves under the storage component.
func WithFileLogger(l *log.Logger) JSONFileOption {
	return func(s *JSONFile) {
		s.log = l.WithComponent(log.ComponentStorage)
	}
}

// NewJSONFile returns a store backed by the JSON file at path.
func NewJSONFile(path string, opts ...JSONFileOption) *JSONFile {
	s := &JSONFile{path: path, log: log.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the data file path.
func (s *JSONFile) Path() string {
	return s.path
}

// Load reads all records. A missing file returns an empty slice.
func (s *JSONFile) Load() ([]expense.Expense, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("data file missing, starting empty", log.FieldPath, s.path)
			return []expense.Expense{}, nil
		}
		return nil, fmt.Errorf("reading expenses file: %w", err)
	}

	records := []expense.Expense{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}
	if records == nil {
		// A literal "null" decodes to a nil slice
		records = []expense.Expense{}
	}
	s.log.Debug("loaded expenses", log.FieldPath, s.path, log.FieldCount, len(records))
	return records, nil
}

// Save writes all records atomically.
// Uses temp file + rename so a crash mid-write never leaves a truncated file.
func (s *JSONFile) Save(records []expense.Expense) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Create temp file in same directory for atomic rename
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing expenses: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	s.log.Debug("saved expenses", log.FieldPath, s.path, log.FieldCount, len(records))
	return nil
}

// Encode renders records the way they are persisted: a JSON array indented
// with two spaces, no HTML escaping, no trailing newline. An empty or nil
// collection encodes as [].
func Encode(records []expense.Expense) ([]byte, error) {
	if records == nil {
		records = []expense.Expense{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encoding expenses: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Hash computes a SHA256 hash of the data file's contents.
// A missing file hashes as empty content.
func (s *JSONFile) Hash() (string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			h := sha256.Sum256([]byte{})
			return hex.EncodeToString(h[:]), nil
		}
		return "", fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
