package play

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/golangdaddy/circuit/log"
	"github.com/golangdaddy/circuit/pkg/assets"
	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/game"
)

func NewPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "opens the game window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startGame()
		},
	}

	cmd.Flags().IntVar(&config.WindowWidth, "width", 1280, "window width in pixels")
	cmd.Flags().IntVar(&config.WindowHeight, "height", 720, "window height in pixels")

	return cmd
}

func startGame() error {
	cfg, err := config.Resolve()
	if err != nil {
		return err
	}
	sprites, err := assets.Load(cfg.MediaDir, log.Logger)
	if err != nil {
		log.Logger.Error("could not load sprites", zap.Error(err))
		return err
	}

	g, err := game.NewGame(cfg, sprites, log.Logger, config.WindowWidth, config.WindowHeight)
	if err != nil {
		return err
	}
	defer g.Shutdown()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Circuit")
	log.Logger.Info("starting game",
		zap.Stringer("track", cfg.Track),
		zap.Stringer("level", cfg.Level),
		zap.Int("laps", cfg.Rules.MaxLaps))
	return ebiten.RunGame(g)
}
