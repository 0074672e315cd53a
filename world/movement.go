package world

import (
	"github.com/lixenwraith/neat-arena/geom"
	"github.com/lixenwraith/neat-arena/simcontrol"
)

// movement applies every Thrust(v) command: v is scaled by friction,
// clamped to max_speed, then integrated into position with wrap (toroidal)
// or axis clamp (Euclidean). Agents with no Thrust command this tick stay
// put; velocity is not persisted, it is recomputed from the command each
// tick.
func (w *World) movement() {
	for i := range w.Agents {
		if !w.Agents[i].Alive() {
			continue
		}
		cmd, has := w.Commands[i]
		if !has || cmd.Kind != simcontrol.ActionThrust {
			continue
		}

		v := cmd.Thrust.Scale(w.Cfg.Friction)
		if speed := v.Length(); speed > w.Cfg.MaxSpeed && speed > 0 {
			v = v.Scale(w.Cfg.MaxSpeed / speed)
		}

		next := w.Agents[i].Pos.Add(v)
		if w.Cfg.DistanceMode == geom.Toroidal {
			next = next.Wrap(w.Width, w.Height)
		} else {
			next = next.Clamp(w.Width, w.Height)
		}
		w.Agents[i].Pos = next
	}
}
