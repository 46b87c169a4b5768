package services

import (
	"github.com/custodia-labs/utilkit/internal/core/domain"
	"github.com/custodia-labs/utilkit/internal/core/ports/driving"
)

// Ensure ClockService implements the interface.
var _ driving.ClockService = (*ClockService)(nil)

// ClockService implements driving.ClockService with a constant time.
type ClockService struct{}

// NewClockService creates a new clock service.
func NewClockService() *ClockService {
	return &ClockService{}
}

// Now returns domain.FixedTimestamp. The system clock is never consulted.
func (s *ClockService) Now() string {
	return domain.FixedTimestamp
}
