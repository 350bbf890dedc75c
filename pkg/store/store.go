package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xhad/medqa/internal/models"
)

type StoreConfig struct {
	Path   string
	Indent string
}

// JSONStore keeps records in a single JSON array file. Every Store reads the
// whole file and rewrites it, so it is meant for one writer at a time.
type JSONStore struct {
	config StoreConfig
}

func NewWithConfig(config StoreConfig) (*JSONStore, error) {
	if config.Path == "" {
		return nil, errors.New("dataset path is required")
	}
	if config.Indent == "" {
		config.Indent = "    "
	}

	return &JSONStore{
		config: config,
	}, nil
}

func New(path string) (*JSONStore, error) {
	return NewWithConfig(StoreConfig{Path: path})
}

func (s *JSONStore) Path() string {
	return s.config.Path
}

// DatasetPath builds <dir>/Med/[<ratio>_]Med<nTotal>.json, with ':' in the
// ratio replaced by '_'.
func DatasetPath(dir, ratio string, nTotal int) string {
	prefix := ""
	if ratio != "" {
		prefix = strings.ReplaceAll(ratio, ":", "_") + "_"
	}
	return filepath.Join(dir, "Med", fmt.Sprintf("%sMed%d.json", prefix, nTotal))
}

// Load returns the elements of the dataset array. A missing or unparsable
// file yields no elements; a JSON value that is not an array is returned
// as the only element.
func (s *JSONStore) Load() ([]json.RawMessage, error) {
	data, err := os.ReadFile(s.config.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return []json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var value json.RawMessage
	if err := json.Unmarshal(data, &value); err != nil {
		log.Printf("dataset %s is not valid JSON, starting a new one: %v", s.config.Path, err)
		return []json.RawMessage{}, nil
	}

	trimmed := bytes.TrimLeft(value, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []json.RawMessage{value}, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(value, &elements); err != nil {
		return nil, fmt.Errorf("failed to decode dataset array: %w", err)
	}
	if elements == nil {
		elements = []json.RawMessage{}
	}
	return elements, nil
}

func (s *JSONStore) Len() (int, error) {
	elements, err := s.Load()
	if err != nil {
		return 0, err
	}
	return len(elements), nil
}

// Store appends record to the dataset array and rewrites the file.
func (s *JSONStore) Store(record models.Record) error {
	return s.Append(sanitizeRecord(record))
}

// Append adds any JSON-encodable value to the dataset array.
func (s *JSONStore) Append(value interface{}) error {
	elements, err := s.Load()
	if err != nil {
		return err
	}

	encoded, err := encode(value, "")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	elements = append(elements, json.RawMessage(encoded))

	out, err := encode(elements, s.config.Indent)
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.config.Path), 0755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}
	if err := os.WriteFile(s.config.Path, out, 0644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	return nil
}

// encode marshals without escaping HTML characters and without the
// encoder's trailing newline.
func encode(value interface{}, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func sanitizeRecord(record models.Record) models.Record {
	clean := models.NewRecord()
	for k, v := range record.Question {
		clean.Question[sanitizeUTF8(k)] = sanitizeUTF8(v)
	}
	for k, v := range record.Answer {
		clean.Answer[sanitizeUTF8(k)] = sanitizeUTF8(v)
	}
	return clean
}

func sanitizeUTF8(s string) string {
	if !utf8.ValidString(s) {
		v := make([]rune, 0, len(s))
		for i, r := range s {
			if r == utf8.RuneError {
				_, size := utf8.DecodeRuneInString(s[i:])
				if size == 1 {
					continue
				}
			}
			v = append(v, r)
		}
		return string(v)
	}
	return s
}
