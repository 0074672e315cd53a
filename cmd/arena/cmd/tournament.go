package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/neat-arena/config"
	"github.com/lixenwraith/neat-arena/elo"
	"github.com/lixenwraith/neat-arena/simerr"
	"github.com/lixenwraith/neat-arena/sinks"
	"github.com/lixenwraith/neat-arena/storage"
)

var (
	tournamentPopPath  string
	includeNaive       bool
	tournamentMaxTicks int
	tournamentDB       string
)

var tournamentCmd = &cobra.Command{
	Use:   "tournament",
	Short: "Round-robin Elo tournament among saved champions",
	Args:  cobra.NoArgs,
	RunE:  runTournament,
}

func init() {
	tournamentCmd.Flags().StringVar(&tournamentPopPath, "pop_path", "out", "directory of champion .json snapshots")
	tournamentCmd.Flags().BoolVar(&includeNaive, "include_naive", false, "enter the naive controller as a baseline participant")
	tournamentCmd.Flags().IntVar(&tournamentMaxTicks, "max_ticks", 200, "tick cap per pairing")
	tournamentCmd.Flags().StringVar(&tournamentDB, "db", "", "optionally record standings into this SQLite file")
}

func runTournament(cmd *cobra.Command, args []string) error {
	evoCfg, err := loadEvoConfig()
	if err != nil {
		return err
	}
	evoCfg.MaxTicks = tournamentMaxTicks

	participants, err := loadParticipants(tournamentPopPath)
	if err != nil {
		return err
	}
	if includeNaive {
		participants = append(participants, elo.Participant{Name: "naive"})
	}

	w := workers
	if w <= 0 {
		w = runtime.GOMAXPROCS(0) - 1
	}

	fmt.Fprintf(os.Stdout, "running %d pairings across %d participants\n",
		len(participants)*(len(participants)-1)/2, len(participants))
	ratings, err := elo.Run(evoCfg, config.DefaultEloConfig(), participants, w)
	if errors.Is(err, simerr.ErrNoParticipants) {
		// A tournament with nobody to pair is reported, not failed.
		fmt.Fprintf(os.Stdout, "nothing to run: %v\n", err)
		return nil
	}
	if err != nil {
		return err
	}

	outPath := filepath.Join(tournamentPopPath, "elo_ratings.json")
	data, err := json.MarshalIndent(ratings, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", outPath)

	table := tablewriter.NewTable(os.Stdout)
	table.Header("RANK", "PARTICIPANT", "ELO", "W", "L")
	for i, r := range ratings {
		table.Append(
			fmt.Sprintf("%d", i+1),
			r.Name,
			fmt.Sprintf("%.1f", r.Rating),
			fmt.Sprintf("%d", r.Wins),
			fmt.Sprintf("%d", r.Losses),
		)
	}
	table.Render()

	if tournamentDB != "" {
		db, err := storage.Open(tournamentDB)
		if err != nil {
			return err
		}
		defer db.Close()

		records := make([]storage.EloRecord, len(ratings))
		for i, r := range ratings {
			records[i] = storage.EloRecord{Name: r.Name, Rating: r.Rating, Wins: r.Wins, Losses: r.Losses}
		}
		if err := db.SaveEloRatings(filepath.Base(tournamentPopPath), records); err != nil {
			return err
		}
	}
	return nil
}

// loadParticipants reads every champion snapshot in dir, in name order so
// pairings are reproducible.
func loadParticipants(dir string) ([]elo.Participant, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") || e.Name() == "elo_ratings.json" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var participants []elo.Participant
	for _, name := range names {
		genome, err := sinks.LoadGenome(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", name, err)
			continue
		}
		participants = append(participants, elo.Participant{Name: name, Genome: genome})
	}
	return participants, nil
}
