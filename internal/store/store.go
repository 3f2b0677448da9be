// Package store handles JSON persistence of the word collection.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minsu-seo/vocadrill/internal/model"
)

const wordsFileName = "words.json"

// ErrNotFound reports a lookup for a word the collection does not hold.
var ErrNotFound = errors.New("word not found")

// Store owns the words file inside a data directory. A single process is
// assumed; two processes racing on the same file lose updates at the
// granularity of a full-collection save (last writer wins).
type Store struct {
	dir  string
	path string
}

// Open ensures the data directory and an empty words file exist and returns
// a store rooted there.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	s := &Store{dir: dir, path: filepath.Join(dir, wordsFileName)}
	if _, err := os.Stat(s.path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat words file: %w", err)
		}
		if err := s.Save(map[string]*model.WordRecord{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Path returns the location of the words file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full collection, normalizes every record, and writes the
// collection back once if any record changed. The returned view is always
// fully migrated. A missing file yields an empty collection; malformed JSON
// is fatal.
func (s *Store) Load() (map[string]*model.WordRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			empty := map[string]*model.WordRecord{}
			if err := s.Save(empty); err != nil {
				return nil, err
			}
			return empty, nil
		}
		return nil, fmt.Errorf("failed to read words file: %w", err)
	}

	words := map[string]*model.WordRecord{}
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("words file %s is corrupt: %w", s.path, err)
	}

	changed := false
	for _, rec := range words {
		if Normalize(rec) {
			changed = true
		}
	}
	if changed {
		if err := s.Save(words); err != nil {
			return nil, err
		}
	}
	return words, nil
}

// Save overwrites the whole collection. Records are written indented with
// non-ASCII text kept literal so the file stays readable and diffable. The
// write goes through a temp file and rename.
func (s *Store) Save(words map[string]*model.WordRecord) error {
	tmpFile, err := os.CreateTemp(s.dir, "words-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp words file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	enc := json.NewEncoder(tmpFile)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(words); err != nil {
		return fmt.Errorf("failed to encode words: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close words file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to write words file: %w", err)
	}
	return nil
}

// Upsert adds or updates a record in the collection. Definition, examples,
// and tags are replaced; stats and the creation timestamp survive.
func Upsert(words map[string]*model.WordRecord, key, definition string, examples, tags []string) *model.WordRecord {
	rec, ok := words[key]
	if !ok {
		rec = &model.WordRecord{}
		words[key] = rec
	}
	rec.Definition = definition
	rec.Examples = append([]string{}, examples...)
	rec.Tags = append(model.TagList{}, tags...)
	Normalize(rec)
	return rec
}
