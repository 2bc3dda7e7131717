package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/yokai/internal/session"
)

func newQuestionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Preview one randomized question selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, false)
			if err != nil {
				return err
			}

			selector, err := session.NewSelector(e.data.Pool, session.SelectorConfig{
				PerAxis: e.cfg.Quiz.PerAxis,
				Strict:  e.cfg.Quiz.Strict,
				Rand:    session.NewRand(e.cfg.Quiz.Seed),
				Logger:  e.log,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, q := range selector.Select() {
				fmt.Fprintf(out, "%2d. [%s] %s\n", i+1, q.ID, q.Prompt)
				for j, o := range q.Options {
					fmt.Fprintf(out, "      %d) %s  (%s)\n", j+1, o.Text, o.Letter)
				}
			}
			return nil
		},
	}
}
