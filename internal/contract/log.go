package contract

import (
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
)

// LogRequest records a practice attempt outside the review schedule.
type LogRequest struct {
	Slug        string
	Title       string
	Solved      bool
	DurationMin *int
	Notes       string
	Tags        []string
	Now         *time.Time
}

// LogResponse is a rejected-result response: a same-day duplicate is reported
// as Success=false with ErrorCode set, not as a Go error.
type LogResponse struct {
	Success   bool
	ErrorCode LogErrorCode
	Entry     *domain.PracticeLogEntry
}

type LogErrorCode string

const (
	ErrDuplicateLog   LogErrorCode = "DUPLICATE_LOG"
	ErrInvalidLogSlug LogErrorCode = "INVALID_SLUG"
)

// LogError reports a request that cannot be recorded at all, as opposed to
// the rejected-result duplicate case.
type LogError struct {
	Code    LogErrorCode
	Message string
}

func (e *LogError) Error() string {
	return string(e.Code) + ": " + e.Message
}
