package cli

import (
	"bufio"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/utilkit/internal/core/domain"
)

var (
	upperStdin bool
	upperJSON  bool
)

var upperCmd = &cobra.Command{
	Use:   "upper [text...]",
	Short: "Convert text to uppercase",
	Long: `Prints each argument converted to uppercase, one per line.
With --stdin, each line of standard input is converted instead.`,
	Args: cobra.ArbitraryArgs,
	RunE: runUpper,
}

type upperResult struct {
	Results []string `json:"results"`
}

func init() {
	upperCmd.Flags().BoolVar(&upperStdin, "stdin", false, "read lines from standard input")
	upperCmd.Flags().BoolVar(&upperJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(upperCmd)
}

func runUpper(cmd *cobra.Command, args []string) error {
	inputs := args
	if upperStdin {
		lines, err := scanTokens(cmd.InOrStdin(), bufio.ScanLines)
		if err != nil {
			return err
		}
		inputs = lines
	}

	results := make([]string, len(inputs))
	for i, in := range inputs {
		results[i] = textService.Upper(in)
	}

	if outputFormat(upperJSON) == domain.OutputFormatJSON {
		return writeJSON(cmd, upperResult{Results: results})
	}

	for _, r := range results {
		if err := writeLine(cmd, r); err != nil {
			return err
		}
	}
	return nil
}
