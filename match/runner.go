// Package match runs one simulation to completion and collects the
// resulting match Stats a fitness function scores.
package match

import (
	"github.com/lixenwraith/neat-arena/config"
	"github.com/lixenwraith/neat-arena/genetic/tracking"
	"github.com/lixenwraith/neat-arena/geom"
	"github.com/lixenwraith/neat-arena/simcontrol"
	"github.com/lixenwraith/neat-arena/world"
)

// Participant binds one controller to a team assignment for one match. The
// first element of the slice passed to Run is the subject: its team's
// fitness is what the match is scoring.
type Participant struct {
	Controller simcontrol.Controller
	Team       int
}

// Stats is the outcome of one completed match. Telemetry carries the
// tracking rollup (average/min/max subject health, survival ratio) for
// diagnostics; fitness functions never depend on it.
type Stats struct {
	Ticks                int
	SubjectTeamHealth    float64
	TotalDamageInflicted float64
	Kills                int
	Telemetry            tracking.MetricBundle
}

// ReplaySink receives one frame per tick during a replayed match.
type ReplaySink interface {
	WriteFrame(tick int, agents []world.Agent, wrecks []world.Wreck) error
}

// Run builds a map_w x map_h world, places each participant (at the map
// center unless positions is non-nil and caller-supplied), and advances up
// to evoCfg.MaxTicks. If earlyExit is set, the match stops as soon as
// either the subject team or any single opposing team has no living
// agents. The first participant's team is the subject team.
func Run(evoCfg config.EvoConfig, participants []Participant, positions []geom.Vec2, earlyExit bool) Stats {
	stats, _ := run(evoCfg, participants, positions, earlyExit, nil)
	return stats
}

// RunReplay behaves like Run but additionally writes one frame per tick to
// sink. A sink failure is surfaced to the caller via err but does not
// abort the match in progress; a broken sink must not cost the genome its
// fitness evaluation.
func RunReplay(evoCfg config.EvoConfig, participants []Participant, positions []geom.Vec2, earlyExit bool, sink ReplaySink) (Stats, error) {
	return run(evoCfg, participants, positions, earlyExit, sink)
}

func run(evoCfg config.EvoConfig, participants []Participant, positions []geom.Vec2, earlyExit bool, sink ReplaySink) (Stats, error) {
	w, controllers := build(evoCfg, participants, positions)
	subjectTeam := participants[0].Team

	initialOpponentHealth := evoCfg.Sim.HealthMax * float64(evoCfg.AgentsPerTeam*(evoCfg.TeamCount-1))

	var collector tracking.MatchCollector
	var sinkErr error
	ticks := 0
	for ticks < evoCfg.MaxTicks {
		w.Step(controllers)
		ticks++
		collector.Observe(w.TeamHealth(subjectTeam), w.LivingCount(subjectTeam))

		if sink != nil {
			if err := sink.WriteFrame(ticks, w.Agents, w.Wrecks); err != nil && sinkErr == nil {
				sinkErr = err
			}
		}

		if earlyExit && matchDecided(w, subjectTeam, evoCfg.TeamCount) {
			break
		}
	}

	currentOpponentHealth := 0.0
	kills := 0
	for team := 0; team < evoCfg.TeamCount; team++ {
		if team == subjectTeam {
			continue
		}
		currentOpponentHealth += w.TeamHealthRaw(team)
		kills += w.TeamKills(team)
	}

	return Stats{
		Ticks:                ticks,
		SubjectTeamHealth:    w.TeamHealth(subjectTeam),
		TotalDamageInflicted: initialOpponentHealth - currentOpponentHealth,
		Kills:                kills,
		Telemetry:            collector.Rollup(kills),
	}, sinkErr
}

func build(evoCfg config.EvoConfig, participants []Participant, positions []geom.Vec2) (*world.World, []simcontrol.Controller) {
	w := world.New(evoCfg.MapWidth, evoCfg.MapHeight, evoCfg.Sim)
	controllers := make([]simcontrol.Controller, len(participants))

	center := world.CenterPlace(evoCfg.MapWidth, evoCfg.MapHeight)
	for i, p := range participants {
		pos := center
		if positions != nil && i < len(positions) {
			pos = positions[i]
		}
		w.AddAgent(pos, p.Team, evoCfg.Sim.HealthMax, evoCfg.Sim.MaxShield)
		controllers[i] = p.Controller
	}
	return w, controllers
}

func matchDecided(w *world.World, subjectTeam, teamCount int) bool {
	if w.LivingCount(subjectTeam) == 0 {
		return true
	}
	for team := 0; team < teamCount; team++ {
		if team == subjectTeam {
			continue
		}
		if w.LivingCount(team) == 0 {
			return true
		}
	}
	return false
}
