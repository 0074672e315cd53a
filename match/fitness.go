package match

import (
	"github.com/lixenwraith/neat-arena/genetic/fitness"
	"github.com/lixenwraith/neat-arena/genetic/tracking"
)

// Metric keys a fitness.Function scores a match on.
const (
	metricHealth   = "subject_team_health"
	metricDamage   = "total_damage_inflicted"
	metricKills    = "kills"
	metricTicks    = "ticks"
	metricSurvived = "survived"
)

// Metrics converts a completed match's Stats into the bundle a
// fitness.Function scores. survived is present only when the subject team
// ended the match with living health, so survival-gated terms key off it.
func (s Stats) Metrics() tracking.MetricBundle {
	bundle := tracking.MetricBundle{
		metricHealth: s.SubjectTeamHealth,
		metricDamage: s.TotalDamageInflicted,
		metricKills:  float64(s.Kills),
		metricTicks:  float64(s.Ticks),
	}
	if s.SubjectTeamHealth > 0 {
		bundle[metricSurvived] = 1
	}
	return bundle
}

// HealthPlusDamage builds the base fitness function:
// w_health*subject_team_health + w_damage*total_damage_inflicted + w_kills*kills.
func HealthPlusDamage(wHealth, wDamage, wKills float64) fitness.Function {
	return fitness.Function{
		{Metric: metricHealth, Weight: wHealth},
		{Metric: metricDamage, Weight: wDamage},
		{Metric: metricKills, Weight: wKills},
	}
}

// HealthPlusDamageTime builds the survival-rewarding variant: the base
// function plus a bonus for every tick under maxTicks, counted only when
// the subject team survived.
func HealthPlusDamageTime(wHealth, wDamage, wKills, timeBonusWeight float64, maxTicks int) fitness.Function {
	fn := HealthPlusDamage(wHealth, wDamage, wKills)
	return append(fn, fitness.Term{
		Metric:        metricTicks,
		Weight:        timeBonusWeight,
		Scale:         func(ticks float64) float64 { return float64(maxTicks) - ticks },
		RequireMetric: metricSurvived,
	})
}

// ResolveFitness selects a fitness function by configuration name,
// defaulting to the time-bonus variant for any unrecognized name.
func ResolveFitness(name string, wHealth, wDamage, wKills, timeBonusWeight float64, maxTicks int) fitness.Function {
	if name == "health_plus_damage" {
		return HealthPlusDamage(wHealth, wDamage, wKills)
	}
	return HealthPlusDamageTime(wHealth, wDamage, wKills, timeBonusWeight, maxTicks)
}

// Score runs the fitness function over stats' metrics.
func Score(fn fitness.Function, stats Stats) float64 {
	return fn.Score(stats.Metrics())
}
