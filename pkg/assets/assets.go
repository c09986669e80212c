package assets

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/golangdaddy/circuit/pkg/assets/sprites"
)

var ErrAssetLoad = errors.New("asset load failure")

// ID names a sprite. The core only ever holds IDs, never images.
type ID string

const (
	Car        ID = "car"
	Checkpoint ID = "checkpoint"
	Barrel     ID = "barrel"
	Wall       ID = "wall"
	Garage     ID = "garage"
	Tribune    ID = "tribune"
	Lamp       ID = "lamp"
	Minimap    ID = "minimap"
)

var builtin = map[ID]func() *image.RGBA{
	Car:        sprites.Car,
	Checkpoint: sprites.Checkpoint,
	Barrel:     sprites.Barrel,
	Wall:       sprites.Wall,
	Garage:     sprites.Garage,
	Tribune:    sprites.Tribune,
	Lamp:       sprites.Lamp,
	Minimap:    sprites.Minimap,
}

// Required lists every sprite the game draws
var Required = []ID{Car, Checkpoint, Barrel, Wall, Garage, Tribune, Lamp, Minimap}

// LoadError reports a sprite that could not be loaded
type LoadError struct {
	Name ID
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v: %s (%s): %v", ErrAssetLoad, e.Name, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrAssetLoad
}

// Path is where a sprite is expected inside the media directory
func Path(mediaDir string, id ID) string {
	return filepath.Join(mediaDir, string(id)+".png")
}

// Registry holds the loaded sprites
type Registry struct {
	images map[ID]*ebiten.Image
}

// Load reads every required sprite from mediaDir. Without a media directory
// the built-in sprites are used. Any missing file fails the whole load.
func Load(mediaDir string, logger *zap.Logger) (*Registry, error) {
	r := &Registry{images: make(map[ID]*ebiten.Image, len(Required))}
	for _, id := range Required {
		if mediaDir == "" {
			r.images[id] = ebiten.NewImageFromImage(builtin[id]())
			continue
		}
		p := Path(mediaDir, id)
		img, _, err := ebitenutil.NewImageFromFile(p)
		if err != nil {
			return nil, &LoadError{Name: id, Path: p, Err: err}
		}
		logger.Debug("loaded sprite",
			zap.String("name", string(id)),
			zap.Int("width", img.Bounds().Dx()),
			zap.Int("height", img.Bounds().Dy()))
		r.images[id] = img
	}
	return r, nil
}

// Image returns the sprite for id
func (r *Registry) Image(id ID) *ebiten.Image {
	return r.images[id]
}
