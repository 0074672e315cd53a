package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/neat-arena/config"
	"github.com/lixenwraith/neat-arena/evolve"
	"github.com/lixenwraith/neat-arena/genetic"
	"github.com/lixenwraith/neat-arena/genetic/persistence"
	"github.com/lixenwraith/neat-arena/match"
	"github.com/lixenwraith/neat-arena/neat"
	"github.com/lixenwraith/neat-arena/sinks"
	"github.com/lixenwraith/neat-arena/spectate"
	"github.com/lixenwraith/neat-arena/storage"
	"github.com/lixenwraith/neat-arena/world"
)

var (
	trainRuns           int
	trainDuration       time.Duration
	snapshotInterval    int
	fitnessFn           string
	wHealth             float64
	wDamage             float64
	wKills              float64
	timeBonusWeight     float64
	difficultyInterval  int
	difficultyThreshold float64
	stagnationWindow    int
	injectCount         int
	mutationScale       float64
	randomSeed          uint64
	mapVar              float64
	runID               string
	outBase             string
	listenAddr          string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Run the evolutionary training loop",
	Args:  cobra.NoArgs,
	RunE:  runTrain,
}

func init() {
	trainCmd.Flags().IntVar(&trainRuns, "runs", 0, "generation cap (0 = config default)")
	trainCmd.Flags().DurationVar(&trainDuration, "duration", 0, "wall-clock budget; checked between generations")
	trainCmd.Flags().IntVar(&snapshotInterval, "snapshot_interval", 10, "snapshot the champion every N generations")
	trainCmd.Flags().StringVar(&fitnessFn, "fitness_fn", "", "health_plus_damage or health_plus_damage_time")
	trainCmd.Flags().Float64Var(&wHealth, "w_health", 0, "fitness weight on surviving subject health")
	trainCmd.Flags().Float64Var(&wDamage, "w_damage", 0, "fitness weight on damage inflicted")
	trainCmd.Flags().Float64Var(&wKills, "w_kills", 0, "fitness weight on kills")
	trainCmd.Flags().Float64Var(&timeBonusWeight, "time_bonus_weight", 0, "fitness weight on ticks saved by winning early")
	trainCmd.Flags().IntVar(&difficultyInterval, "difficulty_interval", 0, "generations between difficulty checks (0 = config default)")
	trainCmd.Flags().Float64Var(&difficultyThreshold, "difficulty_threshold", 0, "average naive fitness required to raise difficulty")
	trainCmd.Flags().IntVar(&stagnationWindow, "stagnation_window", 0, "generations without improvement before recovery kicks in")
	trainCmd.Flags().IntVar(&injectCount, "inject_count", 0, "worst genomes replaced with fresh ones on stagnation")
	trainCmd.Flags().Float64Var(&mutationScale, "mutation_scale", 0, "mutation rate multiplier for the post-stagnation generation")
	trainCmd.Flags().Uint64Var(&randomSeed, "random_seed", 0, "deterministic seed (0 = time-derived)")
	trainCmd.Flags().Float64Var(&mapVar, "map_var", -1, "per-generation map dimension variance fraction")
	trainCmd.Flags().StringVar(&runID, "run_id", "", "output directory name under out/ (default: fresh id)")
	trainCmd.Flags().StringVar(&outBase, "out", "out", "base output directory")
	trainCmd.Flags().StringVar(&listenAddr, "listen", "", "serve live spectator websocket/stats on this address")
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg, err := loadEvoConfig()
	if err != nil {
		return err
	}
	applyTrainFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if runID == "" {
		runID = uuid.NewString()[:8]
	}
	outDir := filepath.Join(outBase, runID)

	snapshots, err := sinks.NewDirSnapshot(outDir)
	if err != nil {
		return err
	}

	db, err := storage.Open(filepath.Join(outDir, "history.db"))
	if err != nil {
		return err
	}
	defer db.Close()

	cfgJSON, _ := json.Marshal(cfg)
	startedAt := time.Now().UTC().Format(time.RFC3339)
	if err := db.CreateRun(runID, startedAt, string(cfgJSON)); err != nil {
		return err
	}

	var spectator *spectate.Server
	if listenAddr != "" {
		spectator = spectate.NewServer()
		go func() {
			if serveErr := spectator.ListenAndServe(listenAddr); serveErr != nil {
				log.Printf("spectator server stopped: %v", serveErr)
			}
		}()
		fmt.Fprintf(os.Stdout, "spectator: ws://%s/ws  stats: http://%s/stats\n", listenAddr, listenAddr)
	}

	seed := randomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	population := evolve.NewPopulation(cfg, seed, seed^0x9e3779b97f4a7c15)
	checkpoints := persistence.NewManager[*neat.Genome](outDir)

	maxGens := cfg.MaxGenerations
	start := time.Now()
	var sinkFailed bool

	for gen := 0; gen < maxGens; gen++ {
		if trainDuration > 0 && time.Since(start) >= trainDuration {
			fmt.Fprintf(os.Stdout, "duration budget reached after %d generations\n", gen)
			break
		}

		report := population.RunGeneration()
		fmt.Fprintf(os.Stdout, "[%7.1fs] gen %3d  best=%.2f avg=%.2f naive=%.2f level=%d\n",
			time.Since(start).Seconds(), report.Generation,
			report.BestFitness, report.AverageFitness, report.AverageNaive, report.DifficultyLevel)
		if report.Stagnant {
			log.Printf("gen %d stagnant: scaling mutation and injecting fresh genomes", report.Generation)
		}

		if err := db.InsertGeneration(runID, storage.GenerationRecord{
			Generation:      report.Generation,
			BestFitness:     report.BestFitness,
			AverageFitness:  report.AverageFitness,
			AverageNaive:    report.AverageNaive,
			Stagnant:        report.Stagnant,
			DifficultyLevel: report.DifficultyLevel,
			ScanMaxDist:     report.ScanMaxDist,
		}); err != nil {
			log.Printf("history insert failed: %v", err)
		}

		if spectator != nil {
			spectator.PublishStats(spectate.GenerationStats{
				Generation:      report.Generation,
				BestFitness:     report.BestFitness,
				AverageFitness:  report.AverageFitness,
				AverageNaive:    report.AverageNaive,
				DifficultyLevel: report.DifficultyLevel,
				ScanMaxDist:     report.ScanMaxDist,
			})
		}

		final := gen+1 == maxGens
		if snapshotInterval > 0 && (report.Generation%snapshotInterval == 0 || final) {
			if err := writeSnapshot(snapshots, cfg, report, start); err != nil {
				log.Printf("snapshot failed: %v", err)
				sinkFailed = true
			}
			if err := writeCheckpoint(checkpoints, population); err != nil {
				log.Printf("checkpoint failed: %v", err)
				sinkFailed = true
			}
			if err := replayChampions(outDir, cfg, report, spectator); err != nil {
				log.Printf("champion replay failed: %v", err)
				sinkFailed = true
			}
		}
	}

	printHallOfFame(population)

	if sinkFailed {
		return fmt.Errorf("training completed but one or more sink writes failed; see log")
	}
	return nil
}

// applyTrainFlags overlays explicitly-set flags onto the loaded config.
// Zero values double as "not set" for most knobs, so only flags the user
// changed are applied.
func applyTrainFlags(cmd *cobra.Command, cfg *config.EvoConfig) {
	set := cmd.Flags().Changed
	if set("runs") && trainRuns > 0 {
		cfg.MaxGenerations = trainRuns
	}
	if set("fitness_fn") {
		cfg.FitnessFn = fitnessFn
	}
	if set("w_health") {
		cfg.WHealth = wHealth
	}
	if set("w_damage") {
		cfg.WDamage = wDamage
	}
	if set("w_kills") {
		cfg.WKills = wKills
	}
	if set("time_bonus_weight") {
		cfg.TimeBonusWeight = timeBonusWeight
	}
	if set("difficulty_interval") {
		cfg.DifficultyInterval = difficultyInterval
	}
	if set("difficulty_threshold") {
		cfg.DifficultyThreshold = difficultyThreshold
	}
	if set("stagnation_window") {
		cfg.StagnationWindow = stagnationWindow
	}
	if set("inject_count") && cfg.PopulationSize > 0 {
		cfg.StagnationInjectionFraction = float64(injectCount) / float64(cfg.PopulationSize)
	}
	if set("mutation_scale") {
		cfg.MutationScale = mutationScale
	}
	if set("map_var") && mapVar >= 0 {
		cfg.MapVarCoefficient = mapVar
	}
}

// writeSnapshot emits the champion with its metadata envelope.
func writeSnapshot(sink *sinks.DirSnapshot, cfg config.EvoConfig, report evolve.Report, start time.Time) error {
	if report.Champion == nil {
		return nil
	}
	return sink.WriteSnapshot(report.Champion.Clone(), sinks.Metadata{
		Timestamp:  time.Now().UTC().Format("20060102_150405"),
		DurationS:  time.Since(start).Seconds(),
		Generation: report.Generation,
		Config: map[string]any{
			"run_id":            runID,
			"runs":              trainRuns,
			"duration_limit_s":  trainDuration.Seconds(),
			"snapshot_interval": snapshotInterval,
			"random_seed":       randomSeed,
			"map_var":           cfg.MapVarCoefficient,
			"workers":           workers,
		},
		SimulationConfig: cfg.Sim,
		EvolutionConfig:  cfg,
		FitnessWeights: sinks.FitnessWeights{
			Health:    cfg.WHealth,
			Damage:    cfg.WDamage,
			Kills:     cfg.WKills,
			TimeBonus: cfg.TimeBonusWeight,
		},
		ChampionFitnessNaive: report.Champion.FitnessNaive,
	})
}

// writeCheckpoint saves the full population so a run can resume.
func writeCheckpoint(mgr *persistence.Manager[*neat.Genome], population *evolve.Population) error {
	pool := genetic.Pool[*neat.Genome, float64]{Generation: population.Generation}
	pool.Members = make([]genetic.Candidate[*neat.Genome, float64], len(population.Genomes))
	for i, g := range population.Genomes {
		pool.Members[i] = genetic.Candidate[*neat.Genome, float64]{Data: g, Score: g.Fitness}
	}
	pool.ComputeStats()
	return mgr.Save("population", persistence.FromPool(&pool))
}

// replayChampions records the top two hall-of-fame genomes playing one
// match, for inspection in a viewer. With a spectator server attached the
// frames are broadcast live as well.
func replayChampions(outDir string, cfg config.EvoConfig, report evolve.Report, spectator *spectate.Server) error {
	if len(report.HallOfFame) < 2 {
		return nil
	}

	file, err := sinks.NewFileReplay(filepath.Join(outDir, "champ_replay.jsonl"))
	if err != nil {
		return err
	}
	defer file.Close()

	var sink match.ReplaySink = file
	if spectator != nil {
		sink = multiSink{file, spectator}
	}

	duelCfg := cfg
	duelCfg.TeamCount = 2
	duelCfg.AgentsPerTeam = 1
	participants := []match.Participant{
		{Controller: neat.NewController(report.HallOfFame[0].Clone(), duelCfg.Sim), Team: 0},
		{Controller: neat.NewController(report.HallOfFame[1].Clone(), duelCfg.Sim), Team: 1},
	}
	stats, err := match.RunReplay(duelCfg, participants, nil, duelCfg.EarlyExit, sink)
	if err != nil {
		return err
	}
	log.Printf("champion replay: ticks=%d health=%.2f", stats.Ticks, stats.SubjectTeamHealth)
	return nil
}

// multiSink fans one replay stream out to several sinks; the first error
// wins but every sink still sees the frame.
type multiSink []match.ReplaySink

func (m multiSink) WriteFrame(tick int, agents []world.Agent, wrecks []world.Wreck) error {
	var firstErr error
	for _, s := range m {
		if err := s.WriteFrame(tick, agents, wrecks); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func printHallOfFame(population *evolve.Population) {
	if len(population.HallOfFame) == 0 {
		return
	}
	fmt.Fprintf(os.Stdout, "\nHall of Fame (top %d):\n", len(population.HallOfFame))
	table := tablewriter.NewTable(os.Stdout)
	table.Header("RANK", "FITNESS", "VS NAIVE", "NODES", "CONNS")
	for i, g := range population.HallOfFame {
		table.Append(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", g.Fitness),
			fmt.Sprintf("%.2f", g.FitnessNaive),
			fmt.Sprintf("%d", len(g.Nodes)),
			fmt.Sprintf("%d", len(g.Conns)),
		)
	}
	table.Render()
}
