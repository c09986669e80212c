package simulate

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/golangdaddy/circuit/log"
	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/models"
	"github.com/golangdaddy/circuit/pkg/race"
	"github.com/golangdaddy/circuit/pkg/session"
)

var ErrTimeout = errors.New("simulation did not finish in time")

func NewSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "runs a race headless with the player on autopilot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve()
			if err != nil {
				return err
			}
			res, err := Run(cfg, config.TPS, config.MaxTime, log.Logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s on %s (%s): score %d after %.1fs\n",
				res.Outcome, res.Track, res.Level, res.Score, res.Elapsed)
			return nil
		},
	}

	cmd.Flags().IntVar(&config.TPS, "tps", 60, "simulation ticks per second")
	cmd.Flags().Float64Var(&config.MaxTime, "max-time", 600,
		"simulated seconds before the run is abandoned")

	return cmd
}

// Run drives one race with fixed time steps until it finishes or maxTime
// simulated seconds have passed. Won races are submitted to the records file.
func Run(cfg *config.Game, tps int, maxTime float64, logger *zap.Logger) (session.Result, error) {
	if tps <= 0 {
		return session.Result{}, fmt.Errorf("tps must be positive, got %d", tps)
	}
	records := models.NewRecords()
	if cfg.RecordsFile != "" {
		r, err := models.LoadFromFile(cfg.RecordsFile)
		if err != nil {
			return session.Result{}, fmt.Errorf("load records: %w", err)
		}
		records = r
	}

	gs, err := session.New(
		session.WithLogger(logger),
		session.WithRules(cfg.Rules),
		session.WithLevel(cfg.Level),
		session.WithTrack(cfg.Track),
		session.WithAutopilot(true),
		session.WithFinishHook(func(res session.Result) {
			session.SubmitResult(records, cfg.RecordsFile, res, logger)
		}),
	)
	if err != nil {
		return session.Result{}, err
	}
	defer gs.Shutdown()

	dt := 1 / float64(tps)
	gs.Update(session.Input{}.Press(session.ActionStart), dt)
	for t := 0.0; gs.State() != race.StateFinished; t += dt {
		if t > maxTime {
			return gs.Result(), fmt.Errorf("%w: %.0fs", ErrTimeout, maxTime)
		}
		gs.Update(session.Input{}, dt)
	}
	return gs.Result(), nil
}
