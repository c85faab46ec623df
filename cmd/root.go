package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/edusim/edusim/sim"
)

var (
	scenarioPath string // Path to the YAML scenario file
	years        int    // Simulation horizon override (0 = use scenario value)
	outputDir    string // Directory for per-sector CSV output
	logLevel     string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "edusim",
	Short: "Annual-step simulator for multi-sector education system indicators",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the education simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("Unable to load scenario %s: %v", scenarioPath, err)
		}

		s := sim.NewSimulation(cfg)
		logrus.Infof("Starting simulation: horizon=%d years, scenario=%s", s.Years, scenarioPath)

		startTime := time.Now()
		results := s.Run(years)
		analysis := sim.Analyze(results)
		logrus.Infof("Simulation completed in %.2fs", time.Since(startTime).Seconds())

		if outputDir != "" {
			if err := sim.WriteCSV(results, outputDir); err != nil {
				logrus.Fatalf("Unable to write results: %v", err)
			}
			logrus.Infof("Per-sector series written to %s", outputDir)
		}

		analysis.PrintSummary()
	},
}

func init() {
	runCmd.Flags().StringVar(&scenarioPath, "config", "", "path to YAML scenario file (empty = built-in defaults)")
	runCmd.Flags().IntVar(&years, "years", 0, "simulation horizon in years (0 = scenario's simulation_years)")
	runCmd.Flags().StringVar(&outputDir, "output", "output", "directory for per-sector CSV files (empty = skip export)")
	runCmd.Flags().StringVar(&logLevel, "loglevel", "info", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
