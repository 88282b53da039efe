package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "gridgen",
	Short: "Word-grid generator and service",
	Long: `gridgen fills rectangular grids with crossing words from a word list using
constraint satisfaction, and can serve that generator over HTTP for clients to
drive interactively.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity level (0=errors only, 1=info, 2=debug)")
}

func logf(format string, args ...interface{}) {
	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
