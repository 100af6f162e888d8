package main

import (
	"github.com/san-kum/stardrift/internal/game"
	"github.com/san-kum/stardrift/internal/logging"
	"github.com/san-kum/stardrift/internal/viz"
	"github.com/spf13/cobra"
)

// Initial canvas size until the terminal reports its own.
const (
	initialCols = 80
	initialRows = 24
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs go to a file.
	log, f, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer f.Close()

	sc, err := loadScene(cfg)
	if err != nil {
		return err
	}

	r := viz.NewRenderer(initialCols, initialRows, viz.GetTheme(cfg.Theme))
	sess, err := game.New(sc,
		game.WithSeed(cfg.Seed),
		game.WithLogger(log),
		game.WithStrict(cfg.Strict),
		game.WithPresenter(r),
	)
	if err != nil {
		log.Error().Err(err).Msg("session")
		return err
	}

	log.Info().Int64("seed", cfg.Seed).Str("theme", cfg.Theme).Int("fps", cfg.FPS).Msg("play")
	return viz.Run(viz.NewModel(sess, r, cfg.FPS, log))
}
