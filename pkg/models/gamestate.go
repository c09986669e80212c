package models

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"time"

	"github.com/samber/lo"
)

// Record is the best finished race for one track and difficulty
type Record struct {
	Track   string    `json:"track"`
	Level   int       `json:"level"`
	Score   int       `json:"score"`
	Elapsed float64   `json:"elapsed"`
	SetAt   time.Time `json:"set_at"`
}

// Records is the local best-score table
type Records struct {
	Entries   []Record  `json:"entries"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRecords creates an empty table
func NewRecords() *Records {
	return &Records{
		Entries: make([]Record, 0),
	}
}

// Best returns the stored record for the track and level
func (r *Records) Best(track string, level int) (Record, bool) {
	return lo.Find(r.Entries, func(e Record) bool {
		return e.Track == track && e.Level == level
	})
}

// Submit stores rec if it beats the current record. A tie on score is
// broken by the faster time. Returns true if rec was stored.
func (r *Records) Submit(rec Record) bool {
	_, idx, found := lo.FindIndexOf(r.Entries, func(e Record) bool {
		return e.Track == rec.Track && e.Level == rec.Level
	})
	if rec.SetAt.IsZero() {
		rec.SetAt = time.Now()
	}
	if !found {
		r.Entries = append(r.Entries, rec)
		return true
	}
	cur := r.Entries[idx]
	if rec.Score < cur.Score || (rec.Score == cur.Score && rec.Elapsed >= cur.Elapsed) {
		return false
	}
	r.Entries[idx] = rec
	return true
}

// Sorted returns the entries ordered by track and level
func (r *Records) Sorted() []Record {
	ret := append([]Record(nil), r.Entries...)
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Track != ret[j].Track {
			return ret[i].Track < ret[j].Track
		}
		return ret[i].Level < ret[j].Level
	})
	return ret
}

// SaveToFile saves the records to a JSON file
func (r *Records) SaveToFile(filename string) error {
	r.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// LoadFromFile loads records from a JSON file.
// A missing file yields an empty table.
func LoadFromFile(filename string) (*Records, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return NewRecords(), nil
	}
	if err != nil {
		return nil, err
	}

	r := NewRecords()
	if err := json.Unmarshal(data, r); err != nil {
		return nil, err
	}

	return r, nil
}
