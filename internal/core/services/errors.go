package services

import (
	"fmt"
	"time"

	"github.com/iamNilotpal/koopman/internal/core/domain"
)

// FrameError wraps failures from the frame codec with the operation
// that failed and its category, so callers can tell detected
// corruption apart from malformed input or misconfiguration.
type FrameError struct {
	Err       error
	Operation string
	Timestamp time.Time
	Category  domain.ErrorCategory
}

func NewFrameError(category domain.ErrorCategory, operation string, err error) *FrameError {
	return &FrameError{
		Err:       err,
		Operation: operation,
		Category:  category,
		Timestamp: time.Now(),
	}
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}
