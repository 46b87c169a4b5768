package services

import (
	"strings"

	"github.com/custodia-labs/utilkit/internal/core/ports/driving"
	"github.com/custodia-labs/utilkit/internal/logger"
)

// Ensure TextService implements the interface.
var _ driving.TextService = (*TextService)(nil)

// TextService implements driving.TextService.
type TextService struct{}

// NewTextService creates a new text service.
func NewTextService() *TextService {
	return &TextService{}
}

// Upper maps every rune of text to its uppercase form.
// No validation is performed; non-letters pass through unchanged.
func (s *TextService) Upper(text string) string {
	logger.Debug("Upper: %d bytes", len(text))
	return strings.ToUpper(text)
}
