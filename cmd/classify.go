package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/yokai/internal/session"
	"github.com/abhisek/yokai/internal/typology"
)

func newClassifyCmd() *cobra.Command {
	var tallyFlag string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a tally of answers without taking the quiz",
		Example: "  yokai classify --tally E=2,I=1,N=3,T=2,F=1,P=3\n" +
			"  yokai classify --tally ''   # every axis tied",
		RunE: func(cmd *cobra.Command, args []string) error {
			tally, err := typology.ParseTally(tallyFlag)
			if err != nil {
				return err
			}
			e, err := loadEnv(cmd, false)
			if err != nil {
				return err
			}

			res := session.BuildResult(typology.Classify(tally), e.data.Table)
			c := res.Classification
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "tally:     %s\n", tally)
			fmt.Fprintf(out, "primary:   %s %s (%s)\n", c.Primary, res.Primary.Name, res.Primary.Title)
			if res.Secondary != nil {
				fmt.Fprintf(out, "secondary: %s %s (flips %s)\n", c.Secondary, res.Secondary.Name, c.ClosestAxis)
			} else {
				fmt.Fprintf(out, "secondary: %s (no entry)\n", c.Secondary)
			}
			for _, s := range c.Scores {
				first, second := s.Axis.Labels()
				fmt.Fprintf(out, "  %s  %s %3d%%  %3d%% %s\n", s.Axis, first, s.FirstPercent, s.SecondPercent, second)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tallyFlag, "tally", "", "Letter counts such as E=3,I=0,S=1 (unlisted letters are 0)")
	return cmd
}
