package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/yokai/internal/app"
	sessionscreen "github.com/abhisek/yokai/internal/screens/session"
	"github.com/abhisek/yokai/internal/session"
	"github.com/abhisek/yokai/internal/sound"
)

// runApp loads settings and data, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := loadEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.log.Sync()

	selector, err := session.NewSelector(e.data.Pool, session.SelectorConfig{
		PerAxis: e.cfg.Quiz.PerAxis,
		Strict:  e.cfg.Quiz.Strict,
		Rand:    session.NewRand(e.cfg.Quiz.Seed),
		Logger:  e.log,
	})
	if err != nil {
		return fmt.Errorf("prepare questions: %w", err)
	}

	bell := sound.NewBell(os.Stderr, e.log)
	bell.SetEnabled(e.cfg.Sound)

	e.log.Info("starting",
		zap.String("version", version),
		zap.Int("per_axis", e.cfg.Quiz.PerAxis),
		zap.Bool("sound", e.cfg.Sound),
	)

	return app.Run(app.Options{
		Deps: sessionscreen.Deps{
			Planner: selector,
			Table:   e.data.Table,
			Sound:   bell,
			Pacing: sessionscreen.Pacing{
				Lock:   e.cfg.Pacing.Lock,
				Reveal: e.cfg.Pacing.Reveal,
			},
			Logger: e.log,
		},
	})
}
