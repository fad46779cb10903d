package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unitexpr/unitexpr/internal/config"
	"github.com/unitexpr/unitexpr/pkg/unitexpr"
)

var (
	varsFile   string
	outputFmt  string
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate a single expression and print the result",
	Long: `Evaluate one unit-aware expression and print its result.

Examples:
  unitexpr eval "3[kg.m/s2]"
  unitexpr eval "position - origin" --vars vars.yaml
  unitexpr eval "12[m/s] > 7[m]" --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVar(&varsFile, "vars", "", "YAML or JSON file mapping variable names to \"value[unit]\" strings")
	evalCmd.Flags().StringVar(&outputFmt, "format", "text", "output format: text or json")
}

func runEval(_ *cobra.Command, args []string) error {
	expr := args[0]

	var opts []unitexpr.Option
	if varsFile != "" {
		vars, err := config.Load(varsFile)
		if err != nil {
			return err
		}
		opts = append(opts, unitexpr.WithResolver(config.NewMapResolver(vars)))
	}

	v, err := unitexpr.Evaluate(expr, opts...)
	if err != nil {
		return fmt.Errorf("%s", formatEvalError(expr, err))
	}

	out, err := formatValue(v, outputFmt)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
