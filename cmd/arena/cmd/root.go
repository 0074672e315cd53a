// Package cmd implements the arena CLI: a feed-forward benchmark, the
// evolutionary training loop, and a champion Elo tournament.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/neat-arena/config"
)

// Persistent flag values shared by every subcommand.
var (
	configPath string
	debug      bool
	workers    int
)

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Tick-driven combat simulator and NEAT trainer",
	Long:  "Evolve neural-network ship controllers against scripted and evolved opponents.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetOutput(os.Stderr)
			log.SetFlags(log.Ltime | log.Lmicroseconds)
		} else {
			log.SetOutput(io.Discard)
		}
		// The match pool sizes itself from GOMAXPROCS; an explicit
		// --workers pins it.
		if workers > 0 {
			runtime.GOMAXPROCS(workers + 1)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file overriding defaults")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log progress detail to stderr")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "parallel match workers (0 = cores-1)")

	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(tournamentCmd)
}

// loadEvoConfig builds the evolution config: package defaults, overlaid
// by the optional --config YAML file. Subcommand flags apply on top of
// the result.
func loadEvoConfig() (config.EvoConfig, error) {
	cfg := config.DefaultEvoConfig()
	if configPath == "" {
		return cfg, nil
	}

	vp := viper.New()
	vp.SetConfigFile(configPath)
	if err := vp.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", configPath, err)
	}
	if err := vp.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", configPath, err)
	}
	return cfg, nil
}
