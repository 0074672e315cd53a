package neat

import (
	"github.com/lixenwraith/neat-arena/config"
	"github.com/lixenwraith/neat-arena/geom"
	"github.com/lixenwraith/neat-arena/simcontrol"
)

// OutputCount is the fixed number of output neurons every genome used as a
// controller must declare: four action-kind gate logits (Idle, Thrust,
// Fire, Loot) selected by argmax, a thrust-x and thrust-y component, and a
// weapon-damage gate. This decoding is the seam between a
// genome's raw float outputs and the simcontrol.Action union, chosen to
// keep every genome structurally comparable for crossover.
const OutputCount = 7

const (
	outIdle = iota
	outThrust
	outFire
	outLoot
	outThrustX
	outThrustY
	outDamageGate
)

// maxWeaponDamage scales the damage gate output (tanh range [-1,1], clamped
// to [0,1]) into an absolute per-shot damage value.
const maxWeaponDamage = 10.0

// Controller wraps one Genome as a simcontrol.Controller. One Controller
// is constructed per match participant from a genome clone and holds no
// cross-match state beyond that copy.
type Controller struct {
	genome *Genome
	cfg    config.SimConfig
}

var _ simcontrol.Controller = (*Controller)(nil)

// NewController binds a genome to a sim config for decoding weapon range.
func NewController(genome *Genome, cfg config.SimConfig) *Controller {
	return &Controller{genome: genome, cfg: cfg}
}

// Think evaluates the genome's feed-forward network on inputs and decodes
// the result into an Action. A ShapeMismatch from Evaluate degrades to
// Idle; the tick engine itself never fails on a bad controller output.
func (c *Controller) Think(_ simcontrol.View, inputs []float64) simcontrol.Action {
	out, err := c.genome.Evaluate(inputs)
	if err != nil || len(out) < OutputCount {
		return simcontrol.Idle()
	}

	kind := argmax(out[outIdle], out[outThrust], out[outFire], out[outLoot])
	switch kind {
	case outThrust:
		return simcontrol.ThrustTo(thrustVec(out[outThrustX], out[outThrustY]))
	case outFire:
		damage := clamp01(out[outDamageGate]) * maxWeaponDamage
		return simcontrol.FireWeapon(simcontrol.LaserWeapon(damage, c.cfg.AttackRange))
	case outLoot:
		return simcontrol.Loot()
	default:
		return simcontrol.Idle()
	}
}

func argmax(values ...float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

func thrustVec(x, y float64) geom.Vec2 {
	return geom.Vec2{X: x, Y: y}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
