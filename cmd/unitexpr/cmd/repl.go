package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unitexpr/unitexpr/internal/config"
	"github.com/unitexpr/unitexpr/pkg/unitexpr"
)

var replVarsFile string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate expressions read from stdin, one per line",
	Long: `Read expressions from stdin until EOF, evaluating each line and
printing its result (or error) before reading the next one. Blank lines
and lines starting with '#' are ignored.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&replVarsFile, "vars", "", "YAML or JSON file mapping variable names to \"value[unit]\" strings")
}

func runRepl(_ *cobra.Command, _ []string) error {
	var opts []unitexpr.Option
	if replVarsFile != "" {
		vars, err := config.Load(replVarsFile)
		if err != nil {
			return err
		}
		opts = append(opts, unitexpr.WithResolver(config.NewMapResolver(vars)))
	}
	evaluator := unitexpr.New(opts...)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		v, err := evaluator.Evaluate(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, formatEvalError(line, err))
			continue
		}
		out, err := formatValue(v, "text")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(out)
	}
	return scanner.Err()
}
