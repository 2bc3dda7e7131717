package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the binary and data versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "yokai", version)
			fmt.Fprintf(out, "questions %s (%s)\n", e.data.PoolVersion, e.data.PoolSource)
			fmt.Fprintf(out, "yokai     %s (%s)\n", e.data.TableVersion, e.data.TableSource)
			return nil
		},
	}
}
