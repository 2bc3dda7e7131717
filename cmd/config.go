package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/yokai/internal/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			file := cfg.File
			if file == "" {
				file = "(none, looked in " + config.Dir() + ")"
			}
			fmt.Fprintf(out, "# config file: %s\n", file)
			for _, s := range config.Settings(v) {
				fmt.Fprintf(out, "%s = %v\n", s.Key, s.Value)
			}
			return nil
		},
	}
}
