package world

import "github.com/lixenwraith/neat-arena/simcontrol"

// loot resolves every Loot command: the nearest wreck within loot_range
// transfers min(pool, loot_fixed + loot_fraction*pool) out of the wreck;
// the agent gains that amount capped at health_max. When the cap bites, the
// excess is lost rather than left in the wreck, so transfer conservation
// holds only modulo that cap. Empty wrecks are dropped at the end of
// the phase. A Loot command with no wreck in range is a no-op.
func (w *World) loot() {
	for i := range w.Agents {
		if !w.Agents[i].Alive() {
			continue
		}
		cmd, has := w.Commands[i]
		if !has || cmd.Kind != simcontrol.ActionLoot {
			continue
		}

		wreckIdx, distSq, ok := w.nearestWreck(w.Agents[i].Pos)
		if !ok || distSq > w.Cfg.LootRange*w.Cfg.LootRange {
			continue
		}

		wr := &w.Wrecks[wreckIdx]
		transfer := w.Cfg.LootFixed + w.Cfg.LootFraction*wr.Pool
		if transfer > wr.Pool {
			transfer = wr.Pool
		}
		wr.Pool -= transfer

		a := &w.Agents[i]
		gain := transfer
		if headroom := w.Cfg.HealthMax - a.Health; gain > headroom {
			gain = headroom
		}
		if gain > 0 {
			a.Health += gain
		}
		w.LootCount++
	}

	w.dropEmptyWrecks()
}

func (w *World) dropEmptyWrecks() {
	live := w.Wrecks[:0]
	for _, wr := range w.Wrecks {
		if wr.Alive() {
			live = append(live, wr)
		}
	}
	w.Wrecks = live
}
