package cli

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/utilkit/internal/core/domain"
)

func TestMeanCmd_Use(t *testing.T) {
	assert.Equal(t, "mean [number...]", meanCmd.Use)
	assert.Contains(t, meanCmd.Long, "no value")
}

func TestMeanCmd_Numbers(t *testing.T) {
	setupTestServices(t)

	out := mustExecute(t, "mean", "2", "4", "6")

	assert.Equal(t, "4\n", out)
}

func TestMeanCmd_Fractional(t *testing.T) {
	setupTestServices(t)

	out := mustExecute(t, "mean", "1", "2")

	assert.Equal(t, "1.5\n", out)
}

func TestMeanCmd_NegativeAfterDoubleDash(t *testing.T) {
	setupTestServices(t)

	out := mustExecute(t, "mean", "--", "-2", "4")

	assert.Equal(t, "1\n", out)
}

func TestMeanCmd_Empty(t *testing.T) {
	setupTestServices(t)

	out := mustExecute(t, "mean")

	assert.Equal(t, "no value\n", out)
}

func TestMeanCmd_EmptyJSON(t *testing.T) {
	setupTestServices(t)

	out := mustExecute(t, "mean", "--json")

	assert.Contains(t, out, `"count": 0`)
	assert.Contains(t, out, `"mean": null`)
}

func TestMeanCmd_JSON(t *testing.T) {
	setupTestServices(t)

	out := mustExecute(t, "mean", "--json", "2", "4", "6")

	assert.Contains(t, out, `"count": 3`)
	assert.Contains(t, out, `"mean": 4`)
}

func TestMeanCmd_Stdin(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, strings.NewReader("2 4\n6\n"), "mean", "--stdin")

	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestMeanCmd_InvalidNumber(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, nil, "mean", "1", "two")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), `"two"`)
}

func TestParseNumbers(t *testing.T) {
	numbers, err := parseNumbers([]string{"1", "2.5", "-3", "1e2"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3, 100}, numbers)

	numbers, err = parseNumbers(nil)
	require.NoError(t, err)
	assert.Empty(t, numbers)
}

func TestMeanCmd_NegativeWithoutDoubleDash(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, nil, "mean", "-2", "4")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown shorthand flag")
}

func TestMeanCmd_OverflowJSON(t *testing.T) {
	setupTestServices(t)

	out := mustExecute(t, "mean", "--json", "1e308", "1e308")

	assert.Contains(t, out, `"count": 2`)
	assert.Contains(t, out, `"mean": "+Inf"`)
}

func TestMeanCmd_OverflowText(t *testing.T) {
	setupTestServices(t)

	out := mustExecute(t, "mean", "1e308", "1e308")

	assert.Equal(t, "+Inf\n", out)
}

func TestMeanCmd_NaNJSON(t *testing.T) {
	setupTestServices(t)

	out := mustExecute(t, "mean", "--json", "NaN", "1")

	assert.Contains(t, out, `"mean": "NaN"`)
}

func TestMeanCmd_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	setupTestServices(t)

	_ = mustExecute(t, "mean", "--json", "2")
	out := mustExecute(t, "mean", "2")

	assert.Equal(t, "2\n", out)
}

func TestMeanValue_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"finite", 4, `4`},
		{"fraction", 1.5, `1.5`},
		{"positive infinity", math.Inf(1), `"+Inf"`},
		{"negative infinity", math.Inf(-1), `"-Inf"`},
		{"not a number", math.NaN(), `"NaN"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(meanValue(tt.value))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}
