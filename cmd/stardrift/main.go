package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/san-kum/stardrift/internal/config"
	"github.com/san-kum/stardrift/internal/scene"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	scenePath  string
	strict     bool
	logLevel   string
	logFile    string
	theme      string
	frameRate  int
	dt         float64
	duration   float64
	numRuns    int
	csvPath    string
	saveRun    bool
	outPath    string
)

// main registers the stardrift commands and runs the interactive game when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "stardrift",
		Short:        "fly a craft through a field of gravitating bodies",
		SilenceUsage: true,
		RunE:         runPlay,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".stardrift", "data directory for saved runs")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	rootCmd.PersistentFlags().StringVar(&scenePath, "scene", "", "scene file (yaml); empty generates a layout")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail when a body is missing from the scene")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (trace|debug|info|warn|error|off)")
	addPlayFlags(rootCmd)

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "play in the terminal",
		RunE:  runPlay,
	}
	addPlayFlags(playCmd)

	simCmd := &cobra.Command{
		Use:   "sim",
		Short: "run the game headless with scripted input",
		RunE:  runSim,
	}
	simCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	simCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	simCmd.Flags().IntVar(&numRuns, "runs", 1, "number of runs over consecutive seeds")
	simCmd.Flags().StringVar(&csvPath, "csv", "", "write samples to this CSV file")
	simCmd.Flags().BoolVar(&saveRun, "save", false, "save the run to the data directory")

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list the bodies bound from the scene",
		RunE:  listBodies,
	}

	sceneCmd := &cobra.Command{
		Use:   "scene",
		Short: "print the scene as yaml",
		RunE:  dumpScene,
	}
	sceneCmd.Flags().StringVarP(&outPath, "output", "o", "", "write to file instead of stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "draw a saved run from above as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default <run_id>.svg)")

	rootCmd.AddCommand(playCmd, simCmd, bodiesCmd, sceneCmd, presetsCmd, runsCmd, plotCmd, exportJSONCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().StringVar(&logFile, "log-file", config.DefaultLogFile, "log file for interactive mode")
}

// loadConfig resolves defaults, then the preset, then the config file, then
// explicit flags. It returns the preset name, if any.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("scene") {
		cfg.Scene = scenePath
	}
	if flags.Changed("strict") {
		cfg.Strict = strict
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("dt") {
		cfg.Sim.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Sim.Duration = duration
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, preset, nil
}

// loadScene reads the configured scene file or generates a layout from the
// seed.
func loadScene(cfg *config.Config) (*scene.Scene, error) {
	if cfg.Scene != "" {
		sc, err := scene.Load(cfg.Scene)
		if err != nil {
			return nil, fmt.Errorf("failed to load scene: %w", err)
		}
		return sc, nil
	}
	return scene.Generate(rand.New(rand.NewSource(cfg.Seed))), nil
}
