package world

import (
	"github.com/lixenwraith/neat-arena/geom"
	"github.com/lixenwraith/neat-arena/simcontrol"
)

// agentView is a simcontrol.View scoped to one acting agent for one Think
// call. It is a thin read-only wrapper; it never outlives the Decision
// phase iteration that creates it.
type agentView struct {
	w     *World
	index int
}

var _ simcontrol.View = agentView{}

func (v agentView) Self() (index, team int) {
	return v.index, v.w.Agents[v.index].Team
}

func (v agentView) AgentCount() int { return len(v.w.Agents) }

func (v agentView) AgentAlive(i int) bool { return v.w.Agents[i].Alive() }

func (v agentView) AgentPos(i int) geom.Vec2 { return v.w.Agents[i].Pos }

func (v agentView) AgentTeam(i int) int { return v.w.Agents[i].Team }

func (v agentView) AgentHealth(i int) float64 { return v.w.Agents[i].Health }

func (v agentView) AgentShield(i int) float64 { return v.w.Agents[i].Shield }

func (v agentView) WreckCount() int { return len(v.w.Wrecks) }

func (v agentView) WreckAlive(i int) bool { return v.w.Wrecks[i].Alive() }

func (v agentView) WreckPos(i int) geom.Vec2 { return v.w.Wrecks[i].Pos }

func (v agentView) WreckPool(i int) float64 { return v.w.Wrecks[i].Pool }

func (v agentView) Dimensions() (width, height float64) { return v.w.Width, v.w.Height }

func (v agentView) Mode() geom.DistanceMode { return v.w.Cfg.DistanceMode }

// ViewFor builds the View passed to a Controller's Think for the given
// agent index.
func (w *World) ViewFor(index int) simcontrol.View {
	return agentView{w: w, index: index}
}
