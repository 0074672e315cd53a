package world

// cleanup clears the command map so the next tick's Decision phase starts
// from an empty set of commands.
func (w *World) cleanup() {
	for k := range w.Commands {
		delete(w.Commands, k)
	}
}
