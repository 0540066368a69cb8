package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers every failure to obtain a well-formed answer.
	ErrUnavailable = errors.New("server unavailable")
	// ErrRejected is matched by every *RejectedError.
	ErrRejected = errors.New("request rejected")
)

// RejectedError is a well-formed answer with success=false.
type RejectedError struct {
	Action  Action
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s rejected", e.Action)
	}
	return fmt.Sprintf("%s rejected: %s", e.Action, e.Message)
}

func (e *RejectedError) Unwrap() error { return ErrRejected }
