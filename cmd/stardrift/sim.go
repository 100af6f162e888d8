package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/stardrift/internal/config"
	"github.com/san-kum/stardrift/internal/export"
	"github.com/san-kum/stardrift/internal/game"
	"github.com/san-kum/stardrift/internal/logging"
	"github.com/san-kum/stardrift/internal/physics"
	"github.com/san-kum/stardrift/internal/sim"
	"github.com/san-kum/stardrift/internal/storage"
	"github.com/san-kum/stardrift/internal/telemetry"
	"github.com/spf13/cobra"
)

const svgSize = 800

func runSim(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if numRuns < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", numRuns)
	}
	log := logging.New(os.Stderr, cfg.LogLevel, true)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	factory := func(s int64) (*sim.Runner, error) {
		c := *cfg
		c.Seed = s
		sc, err := loadScene(&c)
		if err != nil {
			return nil, err
		}
		return sim.New(sc,
			game.WithSeed(s),
			game.WithLogger(log.With().Int64("seed", s).Logger()),
			game.WithStrict(cfg.Strict),
		)
	}

	runCfg := sim.FromConfig(cfg)
	results, err := sim.NewEnsemble(factory, numRuns, cfg.Seed).Run(ctx, runCfg)
	if err != nil {
		return err
	}

	printSummary(results)

	if len(results) == 1 {
		printPlots(results[0].Samples)
	}

	if csvPath != "" {
		for _, res := range results {
			path := csvPath
			if len(results) > 1 {
				path = withSeed(csvPath, res.Seed)
			}
			if err := writeCSV(path, res.Samples); err != nil {
				return err
			}
			fmt.Printf("samples written to %s\n", path)
		}
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		for _, res := range results {
			id, err := st.Save(storage.RunMetadata{
				Preset:   name,
				Scene:    cfg.Scene,
				Seed:     res.Seed,
				Dt:       runCfg.Dt,
				Duration: runCfg.Duration,
				Frames:   res.Frames,
				State:    res.State.String(),
				Metrics:  res.Metrics,
			}, res.Samples)
			if err != nil {
				return err
			}
			fmt.Printf("saved run %s\n", id)
		}
	}
	return nil
}

func printSummary(results []*sim.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tFRAMES\tTIME\tSTATE\tMAX DIST\tMIN CLEAR\tSWITCHES")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%.2fs\t%s\t%.1f\t%s\t%.0f\n",
			r.Seed, r.Frames, r.Time, r.State,
			r.Metrics["max_origin_distance"],
			formatClearance(r.Metrics["min_clearance"]),
			r.Metrics["dominant_switches"])
	}
	w.Flush()
}

func formatClearance(v float64) string {
	if math.IsInf(v, 1) {
		return "-"
	}
	return fmt.Sprintf("%.1f", v)
}

func printPlots(samples []telemetry.Sample) {
	if len(samples) < 2 {
		return
	}
	dist := telemetry.Series(samples, func(s telemetry.Sample) float32 { return s.OriginDistance })
	fmt.Println()
	fmt.Println(asciigraph.Plot(dist, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("distance from origin")))

	var clearance []float64
	for _, s := range samples {
		if s.Dominant >= 0 {
			clearance = append(clearance, float64(s.Clearance))
		}
	}
	if len(clearance) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(clearance, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("clearance to dominant body")))
	}
}

func writeCSV(path string, samples []telemetry.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return telemetry.WriteCSV(f, samples)
}

// withSeed turns out.csv into out_<seed>.csv.
func withSeed(path string, seed int64) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(path, ext), seed, ext)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tSEED\tFRAMES\tSTATE\tTIMESTAMP")
	for _, r := range runs {
		p := r.Preset
		if p == "" {
			p = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n", r.ID, p, r.Seed, r.Frames, r.State, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s: seed %d, %d frames, %s\n", meta.ID, meta.Seed, meta.Frames, meta.State)
	if len(samples) < 2 {
		fmt.Println("not enough samples to plot")
		return nil
	}
	printPlots(samples)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("run %s has no samples", meta.ID)
	}

	// Bodies never translate, so the layout can be rebuilt from the run.
	sc, err := loadScene(&config.Config{Seed: meta.Seed, Scene: meta.Scene})
	if err != nil {
		return err
	}
	var circles []export.Circle
	for _, b := range physics.Bind(sc, rand.New(rand.NewSource(meta.Seed))).Bodies {
		if !b.Active() {
			continue
		}
		p := b.Position()
		circles = append(circles, export.Circle{
			Name:   b.Name,
			X:      float64(p[0]),
			Z:      float64(p[2]),
			Radius: float64(b.Radius),
			Heavy:  b.Class == physics.Heavy,
		})
	}

	path := outPath
	if path == "" {
		path = meta.ID + ".svg"
	}
	svg := export.FlightToSVG(samples, circles, game.EscapeDistance, svgSize)
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("flight written to %s\n", path)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
}
