package world

// regen adds shield_regen_rate to every agent whose last hit was at least
// shield_regen_delay ticks ago, clamped to max_shield.
func (w *World) regen() {
	for i := range w.Agents {
		a := &w.Agents[i]
		if !a.Alive() {
			continue
		}
		if w.TickCount-a.LastHitTick < w.Cfg.ShieldRegenDelay {
			continue
		}
		a.Shield += w.Cfg.ShieldRegenRate
		if a.Shield > w.Cfg.MaxShield {
			a.Shield = w.Cfg.MaxShield
		}
	}
}
