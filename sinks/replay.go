// Package sinks provides the file-backed replay and snapshot writers the
// trainer emits into: one JSON line per tick for replays, and a champion
// genome plus metadata envelope for snapshots. Sink failures wrap
// simerr.ErrSinkFailure so callers can log and continue; a bad disk never
// aborts a training run.
package sinks

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/neat-arena/simerr"
	"github.com/lixenwraith/neat-arena/world"
)

// Frame is the wire form of one replay tick: agents flattened to
// {x, y, team, health, shield, last_hit_tick} rows and wrecks to
// {x, y, pool} rows, matching the engine's record layout.
type Frame struct {
	Tick   int       `json:"tick"`
	Agents []float64 `json:"agents"`
	Wrecks []float64 `json:"wrecks"`
}

// NewFrame flattens one tick's records into wire form.
func NewFrame(tick int, agents []world.Agent, wrecks []world.Wreck) Frame {
	f := Frame{
		Tick:   tick,
		Agents: make([]float64, 0, len(agents)*agentStride),
		Wrecks: make([]float64, 0, len(wrecks)*wreckStride),
	}
	for _, a := range agents {
		f.Agents = append(f.Agents,
			a.Pos.X, a.Pos.Y, float64(a.Team), a.Health, a.Shield, float64(a.LastHitTick))
	}
	for _, w := range wrecks {
		f.Wrecks = append(f.Wrecks, w.Pos.X, w.Pos.Y, w.Pool)
	}
	return f
}

// agentStride and wreckStride are the flattened row widths.
const (
	agentStride = 6
	wreckStride = 3
)

// JSONLReplay appends one JSON object per tick to an io.Writer. It is not
// safe for concurrent use; a replayed match feeds it from a single
// goroutine in tick order.
type JSONLReplay struct {
	w   *bufio.Writer
	enc *json.Encoder
}

// NewJSONLReplay wraps w in a buffered JSONL frame writer.
func NewJSONLReplay(w io.Writer) *JSONLReplay {
	bw := bufio.NewWriter(w)
	return &JSONLReplay{w: bw, enc: json.NewEncoder(bw)}
}

// WriteFrame emits one tick's frame.
func (r *JSONLReplay) WriteFrame(tick int, agents []world.Agent, wrecks []world.Wreck) error {
	if err := r.enc.Encode(NewFrame(tick, agents, wrecks)); err != nil {
		return fmt.Errorf("%w: replay frame %d: %v", simerr.ErrSinkFailure, tick, err)
	}
	return nil
}

// Flush drains the buffer to the underlying writer.
func (r *JSONLReplay) Flush() error {
	if err := r.w.Flush(); err != nil {
		return fmt.Errorf("%w: replay flush: %v", simerr.ErrSinkFailure, err)
	}
	return nil
}

// FileReplay is a JSONLReplay bound to a file it owns.
type FileReplay struct {
	*JSONLReplay
	f *os.File
}

// NewFileReplay creates (truncating) the replay file at path.
func NewFileReplay(path string) (*FileReplay, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: create replay %s: %v", simerr.ErrSinkFailure, path, err)
	}
	return &FileReplay{JSONLReplay: NewJSONLReplay(f), f: f}, nil
}

// Close flushes and closes the underlying file.
func (r *FileReplay) Close() error {
	flushErr := r.Flush()
	if err := r.f.Close(); err != nil {
		return fmt.Errorf("%w: close replay: %v", simerr.ErrSinkFailure, err)
	}
	return flushErr
}
