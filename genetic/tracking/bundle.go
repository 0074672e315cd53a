// Package tracking rolls one match's tick-by-tick subject-team telemetry
// into a flat bundle of named metrics. Fitness scoring and diagnostics
// consume the rollup; the tick engine never reads it back.
package tracking

// MetricBundle maps metric names to float64 measurements.
type MetricBundle map[string]float64

// Keys emitted by MatchCollector.Rollup.
const (
	MetricTicks         = "ticks"
	MetricKills         = "kills"
	MetricAvgHealth     = "avg_subject_health"
	MetricMinHealth     = "min_subject_health"
	MetricMaxHealth     = "max_subject_health"
	MetricPeakAlive     = "peak_alive"
	MetricFinalAlive    = "final_alive"
	MetricSurvivalRatio = "survival_ratio"
)

// Get returns the metric value, or defaultVal when absent.
func (b MetricBundle) Get(key string, defaultVal float64) float64 {
	if v, ok := b[key]; ok {
		return v
	}
	return defaultVal
}
