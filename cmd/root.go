package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/yokai/internal/config"
)

const (
	flagConfig  = "config"
	flagDataDir = "data-dir"
	flagSeed    = "seed"
	flagVerbose = "verbose"
)

// newRootCmd builds the command tree. Running it without a subcommand
// launches the TUI.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "yokai",
		Short:         "Yokai personality quiz",
		Long:          "yokai is a terminal quiz that answers one question: which yokai lives in your soul?",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "Path to a config file (default "+config.Dir()+"/config.toml)")
	pf.String(flagDataDir, "", "Directory with questions.json and yokai.toml overriding the built-in data")
	pf.Uint64(flagSeed, 0, "Seed for question selection (0 uses the clock)")
	pf.BoolP(flagVerbose, "v", false, "Enable debug logging")

	root.AddCommand(
		newTypesCmd(),
		newClassifyCmd(),
		newQuestionsCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
