package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/utilkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/utilkit/internal/core/services"
)

// setupTestServices wires an in-memory settings store and restores
// package state when the test ends.
func setupTestServices(t *testing.T) *memory.ConfigStore {
	t.Helper()

	store := memory.NewConfigStore()
	original := settingsService
	settingsService = services.NewSettingsService(store)

	t.Cleanup(func() {
		settingsService = original
		resetFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})

	return store
}

// resetFlags clears flag values left over from an earlier Execute,
// since cobra binds them to package variables.
func resetFlags() {
	verbose = false
	configDir = ""
	upperStdin, upperJSON = false, false
	meanStdin, meanJSON = false, false
	nowJSON = false
	settingsJSON = false
}

// execute runs the root command with args and returns captured stdout.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	if stdin != nil {
		rootCmd.SetIn(stdin)
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, nil, args...)
	require.NoError(t, err)
	return out
}
