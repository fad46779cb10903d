package cmd

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/unitexpr/unitexpr/internal/registry"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List registered constants and functions",
	Long:  `Enumerate every name the evaluator's fixed registry recognizes, along with its registered arities.`,
	RunE:  runFunctions,
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}

func runFunctions(_ *cobra.Command, _ []string) error {
	names := registry.New().Names()

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Slice(sorted, func(i, j int) bool { return natural.Less(sorted[i], sorted[j]) })

	for _, name := range sorted {
		fmt.Printf("%s%v\n", name, names[name])
	}
	return nil
}
