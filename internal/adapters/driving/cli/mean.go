package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/utilkit/internal/core/domain"
)

// noValue is printed in text mode when the mean does not exist.
const noValue = "no value"

var (
	meanStdin bool
	meanJSON  bool
)

var meanCmd = &cobra.Command{
	Use:   "mean [number...]",
	Short: "Compute the arithmetic mean",
	Long: `Prints the arithmetic mean of the given numbers.
An empty list has no mean and prints "no value" (null with --json).
Put -- before the numbers if any of them are negative.`,
	Args: cobra.ArbitraryArgs,
	RunE: runMean,
}

type meanResult struct {
	Count int        `json:"count"`
	Mean  *meanValue `json:"mean"`
}

// meanValue is a mean that may be non-finite. JSON has no Inf or NaN,
// so those are written as the strings "+Inf", "-Inf" and "NaN".
type meanValue float64

func (v meanValue) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

// MarshalJSON implements json.Marshaler.
func (v meanValue) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return json.Marshal(v.String())
	}
	return json.Marshal(f)
}

func init() {
	meanCmd.Flags().BoolVar(&meanStdin, "stdin", false, "read whitespace-separated numbers from standard input")
	meanCmd.Flags().BoolVar(&meanJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(meanCmd)
}

func runMean(cmd *cobra.Command, args []string) error {
	tokens := args
	if meanStdin {
		words, err := scanTokens(cmd.InOrStdin(), bufio.ScanWords)
		if err != nil {
			return err
		}
		tokens = words
	}

	numbers, err := parseNumbers(tokens)
	if err != nil {
		return err
	}

	result := meanResult{Count: len(numbers)}
	if mean, ok := statsService.Mean(numbers); ok {
		v := meanValue(mean)
		result.Mean = &v
	}

	if outputFormat(meanJSON) == domain.OutputFormatJSON {
		return writeJSON(cmd, result)
	}

	if result.Mean == nil {
		return writeLine(cmd, noValue)
	}
	return writeLine(cmd, result.Mean.String())
}

func parseNumbers(tokens []string) ([]float64, error) {
	numbers := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", tok, domain.ErrInvalidInput)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
