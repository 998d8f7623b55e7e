// Package cli implements the tidy command line tool
package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/go-sif/tidy/logging"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with -ldflags, but not when installing via "go install"
var Version string

// NewRootCommand builds the tidy command and its subcommands
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tidy",
		Short:         "Tidy table verbs from the command line.",
		Long:          "Load delimited or JSON lines data, reorder categorical levels and inspect table snapshots.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if getFlag(cmd, "verbose") {
				logging.SetLevel(logging.DebugLevel)
			} else {
				logging.SetLevel(logging.WarnLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if getFlag(cmd, "version") {
				fmt.Fprintf(cmd.OutOrStdout(), "tidy %s\n", version())
				return nil
			}
			return cmd.Help()
		},
	}
	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringP("config", "c", "", "TOML file describing the input")
	rootCmd.PersistentFlags().Int("rows", 10, "maximum number of rows to print (0 prints all)")
	rootCmd.AddCommand(newCategoricalCommand())
	rootCmd.AddCommand(newInspectCommand())
	return rootCmd
}

// Execute runs the tidy command. This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func version() string {
	if Version != "" {
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	return "(unknown version)"
}
