package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/neat-arena/neat"
	"github.com/lixenwraith/neat-arena/simsensor"
)

var (
	benchRuns     int
	benchDuration time.Duration
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure feed-forward inference latency of a minimal genome",
	Args:  cobra.NoArgs,
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchRuns, "runs", 10000, "number of evaluations (ignored when --duration is set)")
	benchCmd.Flags().DurationVar(&benchDuration, "duration", 0, "wall-clock budget instead of a fixed run count")
}

func runBench(cmd *cobra.Command, args []string) error {
	evoCfg, err := loadEvoConfig()
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(1, 1))
	genome := neat.New(simsensor.Length(evoCfg.Sim), neat.OutputCount)
	genome.RandomizeWeights(rng)

	inputs := make([]float64, genome.InputCount())
	for i := range inputs {
		inputs[i] = rng.Float64()*2 - 1
	}

	var evaluations int
	start := time.Now()
	if benchDuration > 0 {
		for time.Since(start) < benchDuration {
			if _, err := genome.Evaluate(inputs); err != nil {
				return err
			}
			evaluations++
		}
	} else {
		for evaluations = 0; evaluations < benchRuns; evaluations++ {
			if _, err := genome.Evaluate(inputs); err != nil {
				return err
			}
		}
	}
	elapsed := time.Since(start)

	avgMs := elapsed.Seconds() * 1e3 / float64(evaluations)
	fmt.Fprintf(os.Stdout, "evaluations=%d elapsed=%.3fs avg_infer_ms=%.6f\n",
		evaluations, elapsed.Seconds(), avgMs)
	return nil
}
