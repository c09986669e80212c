package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/golangdaddy/circuit/pkg/assets"
	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/models"
	"github.com/golangdaddy/circuit/pkg/session"
	"github.com/golangdaddy/circuit/pkg/ui"
)

type keyBinding struct {
	key    ebiten.Key
	action session.Action
}

// actionKeys maps edge-triggered keys to session actions, in polling order
var actionKeys = []keyBinding{
	{ebiten.KeyDigit1, session.ActionDifficulty1},
	{ebiten.KeyDigit2, session.ActionDifficulty2},
	{ebiten.KeyDigit3, session.ActionDifficulty3},
	{ebiten.KeyQ, session.ActionTrackEasy},
	{ebiten.KeyW, session.ActionTrackMedium},
	{ebiten.KeyE, session.ActionTrackHard},
	{ebiten.KeySpace, session.ActionStart},
	{ebiten.KeyP, session.ActionPause},
	{ebiten.KeyC, session.ActionContinue},
	{ebiten.KeyR, session.ActionRestart},
	{ebiten.KeyM, session.ActionMenu},
}

// Game implements the ebiten.Game interface on top of a session
type Game struct {
	logger   *zap.Logger
	state    *session.GameState
	renderer *ui.Renderer

	records     *models.Records
	recordsFile string

	width, height int
}

// NewGame creates a new game instance. Records are loaded from
// cfg.RecordsFile when one is configured.
func NewGame(cfg *config.Game, sprites *assets.Registry, logger *zap.Logger, width, height int) (*Game, error) {
	g := &Game{
		logger:      logger,
		renderer:    ui.NewRenderer(sprites),
		recordsFile: cfg.RecordsFile,
		records:     models.NewRecords(),
		width:       width,
		height:      height,
	}
	if cfg.RecordsFile != "" {
		r, err := models.LoadFromFile(cfg.RecordsFile)
		if err != nil {
			return nil, fmt.Errorf("load records: %w", err)
		}
		g.records = r
	}

	state, err := session.New(
		session.WithLogger(logger),
		session.WithRules(cfg.Rules),
		session.WithLevel(cfg.Level),
		session.WithTrack(cfg.Track),
		session.WithFinishHook(g.onFinish),
	)
	if err != nil {
		return nil, err
	}
	g.state = state
	return g, nil
}

// Update handles game logic updates. Escape ends the run loop.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.state.Update(pollInput(), 1/float64(ebiten.TPS()))
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.state, g.bestLine())
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

// Shutdown releases the session. Call it after ebiten.RunGame returns.
func (g *Game) Shutdown() {
	g.state.Shutdown()
}

func pollInput() session.Input {
	in := session.Input{
		Throttle: ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Left:     ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
	for _, k := range actionKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			in.Actions = append(in.Actions, k.action)
		}
	}
	return in
}

func (g *Game) onFinish(res session.Result) {
	session.SubmitResult(g.records, g.recordsFile, res, g.logger)
}

func (g *Game) bestLine() string {
	best, ok := g.records.Best(g.state.Track().Selection.String(), int(g.state.Level()))
	if !ok {
		return ""
	}
	return fmt.Sprintf("Best: %d (%.1fs)", best.Score, best.Elapsed)
}
