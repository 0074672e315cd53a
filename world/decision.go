package world

import (
	"github.com/lixenwraith/neat-arena/simcontrol"
	"github.com/lixenwraith/neat-arena/simsensor"
)

// decision builds the sensor vector for each living agent, in ascending
// index order, and records the controller's chosen Action into the command
// map. Dead agents are skipped (skipping dead agents
// here, not issuing them a default Thrust). Overwrites within one tick are
// allowed; the command map keeps only the latest write per index.
func (w *World) decision(controllers []simcontrol.Controller) {
	for i := range w.Agents {
		if !w.Agents[i].Alive() {
			continue
		}
		view := w.ViewFor(i)
		inputs := simsensor.Scan(view, w.Cfg)
		action := controllers[i].Think(view, inputs)
		w.Commands[i] = action
	}
}
