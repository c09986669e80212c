package session

import (
	"go.uber.org/zap"

	"github.com/golangdaddy/circuit/pkg/models"
	"github.com/golangdaddy/circuit/pkg/race"
)

// SubmitResult records a won race and saves the table to path when
// path is set. Lost races are never recorded.
func SubmitResult(records *models.Records, path string, res Result, logger *zap.Logger) bool {
	if res.Outcome != race.OutcomeWon {
		return false
	}
	stored := records.Submit(models.Record{
		Track:   res.Track.String(),
		Level:   int(res.Level),
		Score:   res.Score,
		Elapsed: res.Elapsed,
	})
	if !stored {
		return false
	}
	logger.Info("new best score",
		zap.Stringer("track", res.Track),
		zap.Stringer("level", res.Level),
		zap.Int("score", res.Score))
	if path == "" {
		return true
	}
	if err := records.SaveToFile(path); err != nil {
		logger.Error("could not save records", zap.String("path", path), zap.Error(err))
	}
	return true
}
