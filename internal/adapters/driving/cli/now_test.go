package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNowCmd_Use(t *testing.T) {
	assert.Equal(t, "now", nowCmd.Use)
	assert.Equal(t, "Print the reference timestamp", nowCmd.Short)
}

func TestNowCmd_PrintsFixedTimestamp(t *testing.T) {
	setupTestServices(t)

	out := mustExecute(t, "now")

	assert.Equal(t, "2024-01-01 00:00:00\n", out)
}

func TestNowCmd_JSON(t *testing.T) {
	setupTestServices(t)

	out := mustExecute(t, "now", "--json")

	assert.Contains(t, out, `"timestamp": "2024-01-01 00:00:00"`)
}

func TestNowCmd_RejectsArgs(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, nil, "now", "utc")

	assert.Error(t, err)
}
