package world

// reset clears per-tick transient state and advances the tick counter. It
// runs first in every Step, per phase 1 of the tick order.
func (w *World) reset() {
	w.HitSegments = w.HitSegments[:0]
	w.FireCount = 0
	w.LootCount = 0
	w.TickCount++
}
