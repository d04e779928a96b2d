// Package scores persists the high score table.
package scores

import (
	"fmt"
	"sort"

	"github.com/quasilyte/gdata"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the gdata namespace scores are saved under.
	AppName = "husky-loves-ducky"
	itemKey = "high_scores"
	// Max is how many entries the table keeps.
	Max = 10
)

type Score struct {
	Points uint32 `yaml:"points"`
	Name   string `yaml:"name"`
}

// Store reads and replaces the high score table.
type Store interface {
	// Get returns the scores ordered by points, highest first.
	Get() ([]Score, error)
	// Create replaces the stored table.
	Create(entries []Score) error
}

// itemStore is the subset of *gdata.Manager the store needs.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// GDataStore keeps the table as YAML in a single gdata item.
type GDataStore struct {
	items itemStore
}

var _ Store = (*GDataStore)(nil)

// Open opens the per-user save data location.
func Open() (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("failed to open save data: %w", err)
	}
	return &GDataStore{items: m}, nil
}

// Get returns an empty table when nothing was saved yet.
func (s *GDataStore) Get() ([]Score, error) {
	data, err := s.items.LoadItem(itemKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load high scores: %w", err)
	}
	if len(data) == 0 {
		return []Score{}, nil
	}
	entries, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *GDataStore) Create(entries []Score) error {
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	if err := s.items.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("failed to save high scores: %w", err)
	}
	return nil
}

// Decode parses a YAML table and sorts it.
func Decode(data []byte) ([]Score, error) {
	var entries []Score
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse high scores: %w", err)
	}
	Sort(entries)
	return entries, nil
}

func Encode(entries []Score) ([]byte, error) {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode high scores: %w", err)
	}
	return data, nil
}

// Sort orders by points descending; ties keep their order.
func Sort(entries []Score) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
}

// Insert adds s to the table and trims it to Max entries.
func Insert(entries []Score, s Score) []Score {
	out := append(append([]Score(nil), entries...), s)
	Sort(out)
	if len(out) > Max {
		out = out[:Max]
	}
	return out
}

// Add inserts s into the stored table.
func Add(store Store, s Score) error {
	entries, err := store.Get()
	if err != nil {
		return err
	}
	return store.Create(Insert(entries, s))
}
