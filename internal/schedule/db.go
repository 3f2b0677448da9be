package schedule

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	activeFileName = "learning_items.json"
	doneFileName   = "completed_items.json"
)

// DB manages the active and completed item pools, each persisted as a JSON
// array file. Promotion to the completed pool is one-way.
type DB struct {
	dir        string
	activePath string
	donePath   string

	Active    []*Item
	Completed []*Item
}

// OpenDB loads both pools from the given directory, creating it when
// missing. Absent files mean empty pools; malformed files are fatal.
func OpenDB(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scheduler directory: %w", err)
	}
	db := &DB{
		dir:        dir,
		activePath: filepath.Join(dir, activeFileName),
		donePath:   filepath.Join(dir, doneFileName),
	}
	var err error
	if db.Active, err = loadPool(db.activePath); err != nil {
		return nil, err
	}
	if db.Completed, err = loadPool(db.donePath); err != nil {
		return nil, err
	}
	return db, nil
}

func loadPool(path string) ([]*Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Item{}, nil
		}
		return nil, fmt.Errorf("failed to read item pool: %w", err)
	}
	var items []*Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("item pool %s is corrupt: %w", path, err)
	}
	// Legacy items predate tags.
	for _, it := range items {
		if it.Tags == nil {
			it.Tags = []string{}
		}
		if it.History == nil {
			it.History = []HistoryEntry{}
		}
	}
	return items, nil
}

// Save writes both pools.
func (db *DB) Save() error {
	if err := savePool(db.dir, db.activePath, db.Active); err != nil {
		return err
	}
	return savePool(db.dir, db.donePath, db.Completed)
}

func savePool(dir, path string, items []*Item) error {
	tmpFile, err := os.CreateTemp(dir, "items-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp item pool: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	enc := json.NewEncoder(tmpFile)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("failed to encode item pool: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close item pool: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write item pool: %w", err)
	}
	return nil
}

// Add creates an item in the active pool and persists both pools.
func (db *DB) Add(content, summary string, tags []string) (*Item, error) {
	item := NewItem(content, summary, tags, time.Now())
	db.Active = append(db.Active, item)
	if err := db.Save(); err != nil {
		return nil, err
	}
	return item, nil
}

// Review applies a mark to an active item at the current date.
func (db *DB) Review(item *Item, mark Mark, summaryUpdate string) error {
	return db.ReviewOn(item, mark, summaryUpdate, time.Now())
}

// ReviewOn applies a mark at a specific date and moves the item to the
// completed pool when the review masters it.
func (db *DB) ReviewOn(item *Item, mark Mark, summaryUpdate string, on time.Time) error {
	if err := item.Review(mark, summaryUpdate, on); err != nil {
		return err
	}
	if item.Completed() {
		db.promote(item)
	}
	return db.Save()
}

func (db *DB) promote(item *Item) {
	for i, it := range db.Active {
		if it == item {
			db.Active = append(db.Active[:i], db.Active[i+1:]...)
			break
		}
	}
	db.Completed = append(db.Completed, item)
}

// DueItems returns active items due on or before the given date, optionally
// filtered by tags (case-insensitive intersection), sorted most-overdue and
// least-mastered first with failing items ahead of their peers.
func (db *DB) DueItems(on time.Time, tagFilter []string) []*Item {
	pool := make([]*Item, 0, len(db.Active))
	for _, it := range db.Active {
		if !it.IsDue(on) {
			continue
		}
		if len(tagFilter) > 0 && !tagsIntersectFold(it.Tags, tagFilter) {
			continue
		}
		pool = append(pool, it)
	}
	sort.SliceStable(pool, func(i, j int) bool {
		a, b := pool[i], pool[j]
		if a.NextReviewDate != b.NextReviewDate {
			return a.NextReviewDate < b.NextReviewDate
		}
		if a.MemoryCount != b.MemoryCount {
			return a.MemoryCount < b.MemoryCount
		}
		return a.Status == MarkFail && b.Status != MarkFail
	})
	return pool
}

func tagsIntersectFold(have []string, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}
