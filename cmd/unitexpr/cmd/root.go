package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "unitexpr",
	Short: "Evaluate unit-aware mathematical expressions",
	Long: `unitexpr evaluates single-line expressions in which every numeric
literal carries an SI physical unit, performing dimensional analysis as it
goes: adding a length to a length is fine, adding a length to a duration
raises an error, and comparisons and arithmetic between a point-like
("absolute") and vector-like ("relative") quantity follow the same rules
real physics does.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
