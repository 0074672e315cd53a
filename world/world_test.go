package world

import (
	"testing"

	"github.com/lixenwraith/neat-arena/config"
	"github.com/lixenwraith/neat-arena/geom"
	"github.com/lixenwraith/neat-arena/simcontrol"
)

// scriptedController issues one fixed Action regardless of view/inputs,
// used to drive deterministic scenario tests without a real controller
// implementation.
type scriptedController struct {
	action simcontrol.Action
}

func (s scriptedController) Think(simcontrol.View, []float64) simcontrol.Action {
	return s.action
}

func newTestWorld(width, height float64) *World {
	cfg := config.DefaultSimConfig()
	cfg.MaxShield = 50
	cfg.HealthMax = 100
	return New(width, height, cfg)
}

func TestScenario1_LaserInRangeShieldAbsorbs(t *testing.T) {
	w := newTestWorld(1000, 1000)
	w.AddAgent(geom.Vec2{X: 0, Y: 0}, 0, 100, 50)
	w.AddAgent(geom.Vec2{X: 3, Y: 4}, 1, 100, 50)

	controllers := []simcontrol.Controller{
		scriptedController{action: simcontrol.FireWeapon(simcontrol.LaserWeapon(5, 10))},
		scriptedController{action: simcontrol.Idle()},
	}
	w.Step(controllers)

	target := w.Agents[1]
	if target.Shield != 45 {
		t.Errorf("target shield = %v, want 45", target.Shield)
	}
	if target.Health != 100 {
		t.Errorf("target health = %v, want 100", target.Health)
	}
	if len(w.HitSegments) != 1 {
		t.Fatalf("hit segments = %d, want 1", len(w.HitSegments))
	}
	hs := w.HitSegments[0]
	if hs.Shooter != (geom.Vec2{X: 0, Y: 0}) || hs.Target != (geom.Vec2{X: 3, Y: 4}) {
		t.Errorf("hit segment = %+v, want shooter (0,0) target (3,4)", hs)
	}
	if w.FireCount != 1 {
		t.Errorf("fire_count = %d, want 1", w.FireCount)
	}
}

func TestScenario2_NoSelfHit(t *testing.T) {
	w := newTestWorld(1000, 1000)
	w.AddAgent(geom.Vec2{X: 0, Y: 0}, 0, 100, 50)

	controllers := []simcontrol.Controller{
		scriptedController{action: simcontrol.FireWeapon(simcontrol.LaserWeapon(5, 10))},
	}
	w.Step(controllers)

	if len(w.HitSegments) != 0 {
		t.Errorf("hit segments = %d, want 0", len(w.HitSegments))
	}
	if w.FireCount != 0 {
		t.Errorf("fire_count = %d, want 0", w.FireCount)
	}
	if w.Agents[0].Health != 100 {
		t.Errorf("health changed: %v", w.Agents[0].Health)
	}
}

func TestScenario3_OutOfRange(t *testing.T) {
	w := newTestWorld(1000, 1000)
	w.AddAgent(geom.Vec2{X: 0, Y: 0}, 0, 100, 50)
	w.AddAgent(geom.Vec2{X: 100, Y: 100}, 1, 100, 50)

	controllers := []simcontrol.Controller{
		scriptedController{action: simcontrol.FireWeapon(simcontrol.LaserWeapon(5, 10))},
		scriptedController{action: simcontrol.Idle()},
	}
	w.Step(controllers)

	if len(w.HitSegments) != 0 {
		t.Errorf("expected no hit, got %d segments", len(w.HitSegments))
	}
	if w.Agents[0].Health != 100 || w.Agents[1].Health != 100 {
		t.Errorf("health changed unexpectedly: %v %v", w.Agents[0].Health, w.Agents[1].Health)
	}
}

func TestScenario4_LootAcrossWrap(t *testing.T) {
	w := newTestWorld(1000, 1000)
	w.Cfg.LootRange = 5
	w.Cfg.LootFixed = 2
	w.Cfg.LootFraction = 0.2
	idx := w.AddAgent(geom.Vec2{X: 998, Y: 0}, 0, 50, 0)
	w.Wrecks = append(w.Wrecks, Wreck{Pos: geom.Vec2{X: 2, Y: 0}, Pool: 20})

	controllers := []simcontrol.Controller{
		scriptedController{action: simcontrol.Loot()},
	}
	w.Step(controllers)

	if w.Agents[idx].Health != 56 {
		t.Errorf("agent health = %v, want 56", w.Agents[idx].Health)
	}
	if len(w.Wrecks) != 1 || w.Wrecks[0].Pool != 14 {
		t.Errorf("wreck pool = %+v, want 14", w.Wrecks)
	}
}

func TestScenario5_ShieldRegenDelay(t *testing.T) {
	w := newTestWorld(1000, 1000)
	w.Cfg.ShieldRegenDelay = 2
	w.Cfg.ShieldRegenRate = 5
	idx := w.AddAgent(geom.Vec2{X: 0, Y: 0}, 0, 100, 10)
	w.Agents[idx].LastHitTick = 0

	controllers := []simcontrol.Controller{scriptedController{action: simcontrol.Idle()}}

	w.Step(controllers) // tick 1
	if w.Agents[idx].Shield != 10 {
		t.Errorf("after tick 1, shield = %v, want 10", w.Agents[idx].Shield)
	}
	w.Step(controllers) // tick 2
	if w.Agents[idx].Shield != 15 {
		t.Errorf("after tick 2, shield = %v, want 15", w.Agents[idx].Shield)
	}
	w.Step(controllers) // tick 3
	if w.Agents[idx].Shield != 20 {
		t.Errorf("after tick 3, shield = %v, want 20", w.Agents[idx].Shield)
	}
}

func TestInvariant_PositionStaysInBoundsToroidal(t *testing.T) {
	w := newTestWorld(100, 100)
	w.AddAgent(geom.Vec2{X: 99, Y: 99}, 0, 100, 0)
	controllers := []simcontrol.Controller{
		scriptedController{action: simcontrol.ThrustTo(geom.Vec2{X: 50, Y: 50})},
	}
	for i := 0; i < 20; i++ {
		w.Step(controllers)
		p := w.Agents[0].Pos
		if p.X < 0 || p.X >= w.Width || p.Y < 0 || p.Y >= w.Height {
			t.Fatalf("tick %d: position %v out of bounds", i, p)
		}
	}
}

func TestInvariant_ShieldAndHealthBounds(t *testing.T) {
	w := newTestWorld(1000, 1000)
	w.AddAgent(geom.Vec2{X: 0, Y: 0}, 0, 100, 50)
	w.AddAgent(geom.Vec2{X: 1, Y: 0}, 1, 100, 50)
	controllers := []simcontrol.Controller{
		scriptedController{action: simcontrol.FireWeapon(simcontrol.LaserWeapon(1000, 10))},
		scriptedController{action: simcontrol.Idle()},
	}
	w.Step(controllers)
	for _, a := range w.Agents {
		if a.Shield < 0 || a.Shield > w.Cfg.MaxShield {
			t.Errorf("shield %v out of [0,%v]", a.Shield, w.Cfg.MaxShield)
		}
		if a.Health > w.Cfg.HealthMax {
			t.Errorf("health %v exceeds max %v", a.Health, w.Cfg.HealthMax)
		}
	}
}

func TestLethalDamageSpawnsExactlyOneWreck(t *testing.T) {
	w := newTestWorld(1000, 1000)
	w.AddAgent(geom.Vec2{X: 0, Y: 0}, 0, 100, 0)
	w.AddAgent(geom.Vec2{X: 1, Y: 0}, 1, 10, 0)
	controllers := []simcontrol.Controller{
		scriptedController{action: simcontrol.FireWeapon(simcontrol.LaserWeapon(50, 10))},
		scriptedController{action: simcontrol.Idle()},
	}
	w.Step(controllers)

	if len(w.Wrecks) != 1 {
		t.Fatalf("wrecks = %d, want 1", len(w.Wrecks))
	}
	wantPool := w.Cfg.HealthMax * w.Cfg.LootInitRatio
	if w.Wrecks[0].Pool != wantPool {
		t.Errorf("wreck pool = %v, want %v", w.Wrecks[0].Pool, wantPool)
	}
	if w.Wrecks[0].Pos != (geom.Vec2{X: 1, Y: 0}) {
		t.Errorf("wreck pos = %v, want victim position", w.Wrecks[0].Pos)
	}
}

func TestDeadAgentSkippedInDecision(t *testing.T) {
	w := newTestWorld(1000, 1000)
	w.AddAgent(geom.Vec2{X: 0, Y: 0}, 0, 0, 0) // already dead
	calls := 0
	controllers := []simcontrol.Controller{
		countingController{count: &calls},
	}
	w.Step(controllers)
	if calls != 0 {
		t.Errorf("controller invoked %d times for a dead agent, want 0", calls)
	}
}

type countingController struct{ count *int }

func (c countingController) Think(simcontrol.View, []float64) simcontrol.Action {
	*c.count++
	return simcontrol.Idle()
}
