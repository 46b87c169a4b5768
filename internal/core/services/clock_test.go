package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockService_Now(t *testing.T) {
	svc := NewClockService()

	assert.Equal(t, "2024-01-01 00:00:00", svc.Now())
}

func TestClockService_Now_RepeatedCalls(t *testing.T) {
	svc := NewClockService()

	for j := 0; j < 3; j++ {
		assert.Equal(t, "2024-01-01 00:00:00", svc.Now())
	}
}
