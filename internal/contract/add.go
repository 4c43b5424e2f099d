package contract

import (
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
)

// AddRequest tracks a new problem for spaced review.
type AddRequest struct {
	Slug       string
	Title      string
	URL        string
	Number     int
	Difficulty domain.Difficulty
	Tags       []string
	Now        *time.Time
}

type AddResponse struct {
	Item *domain.ReviewItem
	// AutoLogged is set when the add also recorded a same-day practice entry.
	AutoLogged bool
	// TagsFetched is set when tag metadata came from the remote fetcher
	// rather than the request.
	TagsFetched bool
}

type AddErrorCode string

const (
	ErrAlreadyTracked AddErrorCode = "ALREADY_TRACKED"
	ErrInvalidSlug    AddErrorCode = "INVALID_SLUG"
)

type AddError struct {
	Code    AddErrorCode
	Message string
}

func (e *AddError) Error() string {
	return string(e.Code) + ": " + e.Message
}
