package track

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golangdaddy/circuit/pkg/geom"
)

var ErrInvalidTrackSelection = errors.New("invalid track selection")

// Selection picks one of the built-in tracks
type Selection int

const (
	Easy Selection = iota + 1
	Medium
	Hard
)

// All lists the selections in menu order
var All = []Selection{Easy, Medium, Hard}

func (s Selection) String() string {
	switch s {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("Selection(%d)", int(s))
}

// Valid reports whether s names a built-in track
func (s Selection) Valid() bool {
	_, ok := definitions[s]
	return ok
}

// ParseSelection accepts track names, menu keys (q/w/e) and numbers 1-3.
func ParseSelection(v string) (Selection, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "easy", "q", "1", "track1":
		return Easy, nil
	case "medium", "w", "2", "track2":
		return Medium, nil
	case "hard", "e", "3", "track3":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTrackSelection, v)
}

// Checkpoints returns a fresh copy of the checkpoint loop for sel.
func Checkpoints(sel Selection) ([]geom.Vec2, error) {
	if !sel.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTrackSelection, sel)
	}
	def := definitions[sel]
	ret := make([]geom.Vec2, CheckpointCount)
	copy(ret, def[:])
	return ret, nil
}

// Track is everything placed in the world for one selection.
// It is immutable once loaded and rebuilt on every track change.
type Track struct {
	Selection   Selection
	Checkpoints []geom.Vec2
	Scenery     []SceneryItem
}

// Load resolves the selection into a full track
func Load(sel Selection) (*Track, error) {
	cps, err := Checkpoints(sel)
	if err != nil {
		return nil, err
	}
	return &Track{
		Selection:   sel,
		Checkpoints: cps,
		Scenery:     scenery(),
	}, nil
}

// Bounds returns the min and max corners covering checkpoints and scenery
func (t *Track) Bounds() (minV, maxV geom.Vec2) {
	first := true
	grow := func(p geom.Vec2) {
		if first {
			minV, maxV = p, p
			first = false
			return
		}
		minV.X = min(minV.X, p.X)
		minV.Z = min(minV.Z, p.Z)
		maxV.X = max(maxV.X, p.X)
		maxV.Z = max(maxV.Z, p.Z)
	}
	for _, cp := range t.Checkpoints {
		grow(cp)
	}
	for _, s := range t.Scenery {
		grow(s.Position)
	}
	return minV, maxV
}
