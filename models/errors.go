package models

import (
	"errors"
	"fmt"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var ErrConfiguration = fmt.Errorf("configuration error")

// ErrNotFound is returned when a table or an index no longer exists.
var ErrNotFound = errors.New("not found")

type RejectionCategory string

const (
	RejectionLimitExceeded RejectionCategory = "limit_exceeded"
	RejectionValidation    RejectionCategory = "validation"
	RejectionResourceBusy  RejectionCategory = "resource_busy"
	RejectionAccessDenied  RejectionCategory = "access_denied"
	RejectionUnrecognized  RejectionCategory = "unrecognized"
)

// CapacityRejection is the refusal of a capacity update by the remote system.
type CapacityRejection struct {
	Category RejectionCategory
	Code     string
	Message  string
}

func NewCapacityRejection(category RejectionCategory, code string, message string) *CapacityRejection {
	return &CapacityRejection{Category: category, Code: code, Message: message}
}

func (e *CapacityRejection) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func AsCapacityRejection(err error) (*CapacityRejection, bool) {
	var rejection *CapacityRejection
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
