package world

import (
	"math/rand/v2"

	"github.com/lixenwraith/neat-arena/geom"
)

// QuadrantPlace returns a position for quadrant (0=NW, 1=NE, 2=SW, 3=SE) of
// a width x height map, jittered around the quadrant's center by a random
// coefficient. The same quadrant assignment applies whether or not map_var
// perturbs the map dimensions; only the jitter magnitude changes.
func QuadrantPlace(rng *rand.Rand, quadrant int, width, height, coefficient float64) geom.Vec2 {
	halfW, halfH := width/2, height/2
	var cx, cy float64
	switch quadrant % 4 {
	case 0:
		cx, cy = halfW/2, halfH/2
	case 1:
		cx, cy = halfW+halfW/2, halfH/2
	case 2:
		cx, cy = halfW/2, halfH+halfH/2
	default:
		cx, cy = halfW+halfW/2, halfH+halfH/2
	}

	jitterX := coefficient * (rng.Float64()*2 - 1) * (halfW / 2)
	jitterY := coefficient * (rng.Float64()*2 - 1) * (halfH / 2)

	return geom.Vec2{X: cx + jitterX, Y: cy + jitterY}.Wrap(width, height)
}

// CenterPlace returns the exact map center, used by the match runner's
// default placement when the caller supplies no explicit positions.
func CenterPlace(width, height float64) geom.Vec2 {
	return geom.Vec2{X: width / 2, Y: height / 2}
}
