package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/utilkit/internal/core/domain"
)

var nowJSON bool

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the reference timestamp",
	Long: `Prints the fixed reference timestamp 2024-01-01 00:00:00.
The value does not depend on the system clock or timezone.`,
	Args: cobra.NoArgs,
	RunE: runNow,
}

type nowResult struct {
	Timestamp string `json:"timestamp"`
}

func init() {
	nowCmd.Flags().BoolVar(&nowJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(nowCmd)
}

func runNow(cmd *cobra.Command, _ []string) error {
	ts := clockService.Now()

	if outputFormat(nowJSON) == domain.OutputFormatJSON {
		return writeJSON(cmd, nowResult{Timestamp: ts})
	}
	return writeLine(cmd, ts)
}
