package track

import "github.com/golangdaddy/circuit/pkg/geom"

// CheckpointCount is the number of checkpoints on every track.
// The first and the last one share the start/finish line.
const CheckpointCount = 9

// checkpoint layouts, keyed by selection
var definitions = map[Selection][CheckpointCount]geom.Vec2{
	Easy: {
		{X: 0, Z: 0}, {X: 40, Z: 0}, {X: 80, Z: 30}, {X: 80, Z: 80}, {X: 40, Z: 110},
		{X: 0, Z: 110}, {X: -40, Z: 80}, {X: -40, Z: 30}, {X: 0, Z: 0},
	},
	Medium: {
		{X: 0, Z: 0}, {X: 30, Z: 20}, {X: 60, Z: 0}, {X: 90, Z: 20}, {X: 60, Z: 60},
		{X: 30, Z: 80}, {X: 0, Z: 60}, {X: -30, Z: 30}, {X: 0, Z: 0},
	},
	Hard: {
		{X: 0, Z: 0}, {X: 30, Z: 0}, {X: 60, Z: 20}, {X: 80, Z: 50}, {X: 60, Z: 90},
		{X: 30, Z: 120}, {X: -10, Z: 90}, {X: -30, Z: 40}, {X: 0, Z: 0},
	},
}

// SceneryKind tells the collision code how hard an object hits
type SceneryKind int

const (
	KindObstacle SceneryKind = iota
	KindWall
	KindGarage
	KindTribune
	KindLamp
)

func (k SceneryKind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindWall:
		return "wall"
	case KindGarage:
		return "garage"
	case KindTribune:
		return "tribune"
	case KindLamp:
		return "lamp"
	}
	return "unknown"
}

// IsObstacle reports whether the kind uses the obstacle damage rate.
// Everything else counts as wall/decoration.
func (k SceneryKind) IsObstacle() bool {
	return k == KindObstacle
}

// SceneryItem is a static object placed around the track
type SceneryItem struct {
	Kind     SceneryKind
	Position geom.Vec2
}

// Start grid positions
var (
	PlayerStart = geom.V(0, -50)
	AIStarts    = []geom.Vec2{geom.V(5, -50), geom.V(-5, -50)}
)

// scenery builds the objects shared by all tracks: barrels on the infield,
// a rectangular wall ring, the garage, the tribune and four lamps.
func scenery() []SceneryItem {
	items := make([]SceneryItem, 0, 64)

	for _, p := range []geom.Vec2{geom.V(20, 50), geom.V(-20, 60), geom.V(0, 90)} {
		items = append(items, SceneryItem{Kind: KindObstacle, Position: p})
	}

	for x := -50; x <= 50; x += 10 {
		items = append(items,
			SceneryItem{Kind: KindWall, Position: geom.V(float64(x), -20)},
			SceneryItem{Kind: KindWall, Position: geom.V(float64(x), 120)},
		)
	}
	for z := 0; z <= 100; z += 10 {
		items = append(items,
			SceneryItem{Kind: KindWall, Position: geom.V(-50, float64(z))},
			SceneryItem{Kind: KindWall, Position: geom.V(50, float64(z))},
		)
	}

	items = append(items,
		SceneryItem{Kind: KindGarage, Position: geom.V(-80, -20)},
		SceneryItem{Kind: KindTribune, Position: geom.V(100, 50)},
		SceneryItem{Kind: KindLamp, Position: geom.V(20, 10)},
		SceneryItem{Kind: KindLamp, Position: geom.V(20, 100)},
		SceneryItem{Kind: KindLamp, Position: geom.V(-20, 10)},
		SceneryItem{Kind: KindLamp, Position: geom.V(-20, 100)},
	)
	return items
}
