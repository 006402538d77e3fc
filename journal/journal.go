package journal

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/akrylysov/pogreb"
	"github.com/teatak/transfer/transfer"
	"github.com/teatak/transfer/util"
)

// Journal counts input fragments that had no dictionary entry, so the
// dictionary file can be extended offline. Keys are the fragment text,
// values a big-endian uint64 count.
type Journal struct {
	db *pogreb.DB
	mu sync.Mutex
}

// Candidate is a recorded fragment and how often it was seen.
type Candidate struct {
	Text  string
	Count uint64
}

// Open opens or creates a journal database directory at path.
func Open(path string) (*Journal, error) {
	db, err := pogreb.Open(path, &pogreb.Options{
		BackgroundSyncInterval:       0,
		BackgroundCompactionInterval: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	return &Journal{db: db}, nil
}

// Record adds one count for each distinct unmatched fragment of r, so a
// count is the number of inputs the fragment was seen in. Fragments are
// stripped of surrounding punctuation; all-punctuation units and fragments
// without any Han character are not recorded.
func (j *Journal) Record(r *transfer.Result) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	seen := make(map[string]bool)
	for _, unit := range r.Mapping.Unmatched() {
		if util.IsPunctuation(unit) {
			continue
		}
		text := util.TrimPunctuation(unit)
		if seen[text] || !util.HasHan(text) {
			continue
		}
		seen[text] = true
		if err := j.add(text, 1); err != nil {
			return err
		}
	}
	return nil
}

func (j *Journal) add(text string, n uint64) error {
	key := []byte(text)
	value, err := j.db.Get(key)
	if err != nil {
		return fmt.Errorf("journal get %q: %w", text, err)
	}
	var count uint64
	if len(value) == 8 {
		count = binary.BigEndian.Uint64(value)
	}
	payload := make([]byte, 8)
	binary.BigEndian.PutUint64(payload, count+n)
	if err := j.db.Put(key, payload); err != nil {
		return fmt.Errorf("journal put %q: %w", text, err)
	}
	return nil
}

// Count returns how often text was recorded.
func (j *Journal) Count(text string) (uint64, error) {
	value, err := j.db.Get([]byte(text))
	if err != nil {
		return 0, err
	}
	if len(value) != 8 {
		return 0, nil
	}
	return binary.BigEndian.Uint64(value), nil
}

// Candidates returns fragments seen at least threshold times, most frequent
// first and then by text.
func (j *Journal) Candidates(threshold uint64) ([]Candidate, error) {
	var list []Candidate
	it := j.db.Items()
	for {
		key, value, err := it.Next()
		if errors.Is(err, pogreb.ErrIterationDone) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(value) != 8 {
			continue
		}
		count := binary.BigEndian.Uint64(value)
		if count >= threshold {
			list = append(list, Candidate{Text: string(key), Count: count})
		}
	}

	sort.Slice(list, func(a, b int) bool {
		if list[a].Count != list[b].Count {
			return list[a].Count > list[b].Count
		}
		return list[a].Text < list[b].Text
	})
	return list, nil
}

// Close flushes and closes the database.
func (j *Journal) Close() error {
	return j.db.Close()
}
