package config

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/circuit/pkg/ai"
	"github.com/golangdaddy/circuit/pkg/race"
	"github.com/golangdaddy/circuit/pkg/track"
)

var ErrInvalidLaps = errors.New("laps must be positive")

// this holds the resolved configuration values from CLI
var (
	LogLevel     string  // sets the log level (zap log level values)
	LogDev       bool    // human readable log output
	Difficulty   string  // AI difficulty, 1-3 or easy/medium/hard
	Track        string  // track selection, easy/medium/hard
	Laps         int     // laps to win
	MediaDir     string  // directory with sprite overrides
	RecordsFile  string  // path to best-score file, empty disables records
	WindowWidth  int     // window width in pixels
	WindowHeight int     // window height in pixels
	TPS          int     // simulation ticks per second (simulate)
	MaxTime      float64 // simulated seconds before giving up (simulate)
)

// Game is the validated game configuration
type Game struct {
	Level       ai.Level
	Track       track.Selection
	Rules       race.Rules
	MediaDir    string
	RecordsFile string
}

// Resolve validates the raw CLI values
func Resolve() (*Game, error) {
	level, err := ai.ParseLevel(Difficulty)
	if err != nil {
		return nil, err
	}
	sel, err := track.ParseSelection(Track)
	if err != nil {
		return nil, err
	}
	if Laps <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLaps, Laps)
	}
	rules := race.DefaultRules()
	rules.MaxLaps = Laps
	return &Game{
		Level:       level,
		Track:       sel,
		Rules:       rules,
		MediaDir:    MediaDir,
		RecordsFile: RecordsFile,
	}, nil
}
