package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/engpower/internal/app"
	"github.com/abhisek/engpower/internal/audio"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	speaker := audio.New(audio.Config{
		Enabled: d.cfg.Audio.Enabled,
		Command: d.cfg.Audio.Command,
		Args:    d.cfg.Audio.Args,
		Timeout: d.cfg.Audio.Timeout,
	}, d.logger)

	return app.Run(app.Options{
		Engine:          d.engine,
		Speaker:         speaker,
		Logger:          d.logger,
		LeaderboardSize: d.cfg.LeaderboardSize,
	})
}
