package services

import (
	"gonum.org/v1/gonum/stat"

	"github.com/custodia-labs/utilkit/internal/core/ports/driving"
	"github.com/custodia-labs/utilkit/internal/logger"
)

// Ensure StatsService implements the interface.
var _ driving.StatsService = (*StatsService)(nil)

// StatsService implements driving.StatsService.
type StatsService struct{}

// NewStatsService creates a new stats service.
func NewStatsService() *StatsService {
	return &StatsService{}
}

// Mean returns sum(numbers)/len(numbers).
// An empty sequence has no mean: the result is (0, false), never a panic.
func (s *StatsService) Mean(numbers []float64) (float64, bool) {
	if len(numbers) == 0 {
		logger.Debug("Mean: empty input, no value")
		return 0, false
	}

	mean := stat.Mean(numbers, nil)
	logger.Debug("Mean: n=%d mean=%g", len(numbers), mean)
	return mean, true
}
