package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/san-kum/stardrift/internal/physics"
	"github.com/san-kum/stardrift/internal/scene"
	"github.com/spf13/cobra"
)

func listBodies(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := loadScene(cfg)
	if err != nil {
		return err
	}
	// Same source the session binds with, so speeds and axes match play.
	reg := physics.Bind(sc, rand.New(rand.NewSource(cfg.Seed)))

	fmt.Printf("seed %d, %d/%d bodies bound\n\n", cfg.Seed, reg.ActiveCount(), physics.Count)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tNAME\tCLASS\tMASS\tRADIUS\tSPEED\tAXIS\tPOSITION")
	for i := range reg.Bodies {
		b := &reg.Bodies[i]
		pos := "missing"
		if b.Active() {
			p := b.Position()
			pos = fmt.Sprintf("(%.1f, %.1f, %.1f)", p[0], p[1], p[2])
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.0f\t%.1f\t%.0f°/s\t(%.2f, %.2f, %.2f)\t%s\n",
			i, b.Name, b.Class, b.Mass, b.Radius, b.Speed, b.Axis[0], b.Axis[1], b.Axis[2], pos)
	}
	return w.Flush()
}

func dumpScene(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := loadScene(cfg)
	if err != nil {
		return err
	}
	if outPath != "" {
		if err := scene.Save(outPath, sc); err != nil {
			return err
		}
		fmt.Printf("scene written to %s\n", outPath)
		return nil
	}
	data, err := scene.Marshal(sc)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
