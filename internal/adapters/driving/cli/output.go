package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/utilkit/internal/core/domain"
	"github.com/custodia-labs/utilkit/internal/logger"
)

// outputFormat resolves the effective format: --json wins over settings.
func outputFormat(jsonFlag bool) domain.OutputFormat {
	if jsonFlag {
		return domain.OutputFormatJSON
	}
	if settingsService == nil {
		return domain.OutputFormatText
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("read settings: %v", err)
		return domain.OutputFormatText
	}
	return settings.Output.Format
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func writeLine(cmd *cobra.Command, s string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}

// initialScanBuffer is the starting scanner buffer; it grows without bound
// so that no line or word is rejected for its length.
const initialScanBuffer = 64 * 1024

// scanTokens reads r using split, e.g. bufio.ScanLines or bufio.ScanWords.
func scanTokens(r io.Reader, split bufio.SplitFunc) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialScanBuffer), math.MaxInt)
	scanner.Split(split)

	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return tokens, nil
}
