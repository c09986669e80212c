package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/circuit/pkg/assets"
	"github.com/golangdaddy/circuit/pkg/geom"
	"github.com/golangdaddy/circuit/pkg/race"
	"github.com/golangdaddy/circuit/pkg/session"
	"github.com/golangdaddy/circuit/pkg/track"
)

const (
	raceScale     = 4.0 // pixels per world unit behind the player
	overviewScale = 2.6 // pixels per world unit for menu and win cameras
	roadWidth     = 20.0
	carWidth      = 5.0
)

var sceneryLook = map[track.SceneryKind]struct {
	id    assets.ID
	width float64
}{
	track.KindObstacle: {assets.Barrel, 6},
	track.KindWall:     {assets.Wall, 10},
	track.KindGarage:   {assets.Garage, 24},
	track.KindTribune:  {assets.Tribune, 12},
	track.KindLamp:     {assets.Lamp, 3},
}

// view maps world coordinates to screen pixels. +z points up the screen.
type view struct {
	center geom.Vec2
	scale  float64
	w, h   float64
}

// newView looks at the camera target. The race camera sits at its chase
// eye so the player is drawn ahead of the screen center.
func newView(width, height float64, cam session.Camera) view {
	v := view{
		center: cam.Target,
		scale:  overviewScale,
		w:      width,
		h:      height,
	}
	if cam.Mode == session.CameraRace {
		v.center = cam.Eye()
		v.scale = raceScale
	}
	return v
}

func (v view) toScreen(p geom.Vec2) (float64, float64) {
	return (p.X-v.center.X)*v.scale + v.w/2, v.h/2 - (p.Z-v.center.Z)*v.scale
}

// drawSprite draws img centered on pos, widthUnits wide, rotated by yaw
func drawSprite(screen, img *ebiten.Image, v view, pos geom.Vec2, widthUnits, yaw float64, tint color.Color) {
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	s := widthUnits * v.scale / w
	x, y := v.toScreen(pos)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(s, s)
	op.GeoM.Rotate(yaw * math.Pi / 180)
	op.GeoM.Translate(x, y)
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (r *Renderer) drawWorld(screen *ebiten.Image, gs *session.GameState) {
	v := newView(float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()), gs.Camera())
	t := gs.Track()

	r.drawGround(screen, t, v)

	road := color.RGBA{70, 70, 75, 255}
	for i := 1; i < len(t.Checkpoints); i++ {
		ax, ay := v.toScreen(t.Checkpoints[i-1])
		bx, by := v.toScreen(t.Checkpoints[i])
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by),
			float32(roadWidth*v.scale), road, true)
		vector.DrawFilledCircle(screen, float32(bx), float32(by), float32(roadWidth*v.scale/2), road, true)
	}

	next := -1
	if gs.State() != race.StateMenu {
		next = gs.Progress().Checkpoint
	}
	radius := gs.Rules().CheckpointRadius
	for i, cp := range t.Checkpoints {
		var tint color.Color
		if i == next {
			tint = green
		}
		drawSprite(screen, r.sprites.Image(assets.Checkpoint), v, cp, 2*radius, 0, tint)
	}

	for _, s := range t.Scenery {
		look := sceneryLook[s.Kind]
		drawSprite(screen, r.sprites.Image(look.id), v, s.Position, look.width, 0, nil)
	}

	carImg := r.sprites.Image(assets.Car)
	for i, o := range gs.Opponents() {
		drawSprite(screen, carImg, v, o.Body.Position, carWidth, o.Body.Heading, aiColors[i%len(aiColors)])
	}
	p := gs.Player()
	drawSprite(screen, carImg, v, p.Pos(), carWidth, p.Yaw(), playerColor)
}

// drawGround draws the grass texture under the whole track, regenerating
// it when the track changes
func (r *Renderer) drawGround(screen *ebiten.Image, t *track.Track, v view) {
	if r.ground == nil || r.groundFor != t.Selection {
		r.buildGround(t)
	}
	x, y := v.toScreen(geom.V(r.groundMin.X, r.groundMax.Z))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(v.scale/groundPixelsPerUnit, v.scale/groundPixelsPerUnit)
	op.GeoM.Translate(x, y)
	screen.DrawImage(r.ground, op)
}
