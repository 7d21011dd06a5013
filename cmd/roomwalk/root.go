package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samdwyer/roomwalk/internal/game"
	"github.com/samdwyer/roomwalk/internal/telemetry"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "roomwalk",
	Short: "Send a party through a campaign of rooms and fight what waits inside",
	Long: `roomwalk moves a party from room to room on a fixed tick.
Walking into a room with monsters starts a turn-based battle that is
resolved before the party moves on.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCmd.RunE(cmd, args)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a campaign",
	Long: `Loads a scenario (or generates a map with --generate) and runs it.
With --headless the simulation runs to the end and prints a summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromViper()

		ctx := context.Background()
		shutdown := setupTelemetry(ctx)
		defer shutdown()

		g, err := game.New(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize game: %w", err)
		}

		if viper.GetBool("headless") {
			printResult(g, g.Simulate(ctx))
			return nil
		}
		if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("game error: %w", err)
		}
		printResult(g, g.Result())
		return nil
	},
}

func init() {
	defaults := game.DefaultConfig()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./roomwalk.yaml)")

	flags := rootCmd.PersistentFlags()
	flags.Int64("seed", defaults.Seed, "random seed, 0 picks one from the clock")
	flags.Int("max-ticks", defaults.MaxTicks, "stop after this many campaign ticks")
	flags.Int("speed", defaults.WalkerSpeed, "ticks between party moves")
	flags.String("explore", defaults.Explore, "door policy: unvisited, nearest or random")
	flags.String("scenario", "", "scenario YAML file or bundled scenario name")
	flags.Bool("generate", false, "generate a random map instead of loading a scenario")
	flags.Int("encounter-size", defaults.EncounterSize, "largest monster group on a generated map")
	flags.Bool("headless", false, "simulate without a terminal UI")
	flags.Bool("telemetry", true, "export traces over OTLP")
	flags.Float64("sample-ratio", 1, "fraction of traces to keep")

	for _, name := range []string{"seed", "max-ticks", "speed", "explore", "scenario", "generate", "encounter-size", "headless", "telemetry", "sample-ratio"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			log.Fatalf("bind flag %s: %v", name, err)
		}
	}

	rootCmd.AddCommand(runCmd)
}

// initConfig reads roomwalk.yaml and ROOMWALK_* variables if present.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("roomwalk")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("ROOMWALK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func configFromViper() game.Config {
	return game.Config{
		Seed:          viper.GetInt64("seed"),
		MaxTicks:      viper.GetInt("max-ticks"),
		WalkerSpeed:   viper.GetInt("speed"),
		Explore:       viper.GetString("explore"),
		ScenarioPath:  viper.GetString("scenario"),
		Generate:      viper.GetBool("generate"),
		EncounterSize: viper.GetInt("encounter-size"),
	}
}

// setupTelemetry starts tracing and returns a function that flushes it.
// The game runs without traces if setup fails.
func setupTelemetry(ctx context.Context) func() {
	if !viper.GetBool("telemetry") {
		return func() {}
	}
	telemetry.ConfigureHoneycomb(os.Getenv("HONEYCOMB_ROOMWALK_API_KEY"), os.Getenv("HONEYCOMB_ROOMWALK_DATASET"))

	shutdown, err := telemetry.Setup(ctx, telemetry.Options{SampleRatio: viper.GetFloat64("sample-ratio")})
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		return func() {}
	}
	return func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}
}

func printResult(g *game.Game, r game.Result) {
	fmt.Printf("%s after %d ticks, %d of %d rooms visited\n", r.State, r.Ticks, r.RoomsVisited, r.Rooms)
	for _, enc := range r.Encounters {
		fmt.Printf("  %-20s %-8s %d turns, %d defeated\n", enc.Room, enc.Outcome, enc.Turns, len(enc.Defeated))
	}
	if len(r.Survivors) > 0 {
		fmt.Printf("Survivors: %s\n", strings.Join(r.Survivors, ", "))
	} else {
		fmt.Println("No survivors.")
	}
	if last := g.Log().Last(); last != "" {
		log.Printf("%s", last)
	}
}
