package tiktok

import (
	"errors"
	"fmt"
)

var (
	ErrURLUnavailable   = errors.New("tiktok: url unavailable")
	ErrVideoUnavailable = errors.New("tiktok: video unavailable")
	ErrInvalidArgument  = errors.New("tiktok: video url or video id must be provided")
	ErrInvalidResponse  = errors.New("tiktok: invalid response")
)

// URLUnavailableError is returned when a share link does not lead to a video or photo page.
type URLUnavailableError struct {
	URL string
}

func (e *URLUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrURLUnavailable, e.URL)
}

func (e *URLUnavailableError) Unwrap() error {
	return ErrURLUnavailable
}

// VideoUnavailableError is returned when the feed has no entry for the requested id.
type VideoUnavailableError struct {
	ID string
}

func (e *VideoUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrVideoUnavailable, e.ID)
}

func (e *VideoUnavailableError) Unwrap() error {
	return ErrVideoUnavailable
}

// StatusError carries a non-2xx answer of the API.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tiktok: unexpected status %d for %s", e.StatusCode, e.URL)
}
