package exam

import "errors"

// Domain rejection codes. These are expected, user-facing outcomes and are
// never logged as server errors; anything else coming out of the engine is an
// infrastructure fault.
const (
	CodeNotEligible          = "NOT_ELIGIBLE"
	CodeAttemptLimitExceeded = "ATTEMPT_LIMIT_EXCEEDED"
	CodeUnprocessable        = "UNPROCESSABLE"
	CodeNotFound             = "NOT_FOUND"
	CodeDuplicateSubmission  = "DUPLICATE_SUBMISSION"
)

// Error is a domain rejection with a stable code and a human-readable reason.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// CodeOf returns the domain code of err, or "" for infrastructure errors.
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

func notEligible(reason string) error {
	return &Error{Code: CodeNotEligible, Message: reason}
}

func attemptLimitExceeded() error {
	return &Error{Code: CodeAttemptLimitExceeded, Message: "all exam attempts have been used for this scope"}
}

func unprocessable(reason string) error {
	return &Error{Code: CodeUnprocessable, Message: reason}
}

func notFound() error {
	return &Error{Code: CodeNotFound, Message: "exam attempt not found"}
}

func duplicateSubmission() error {
	return &Error{Code: CodeDuplicateSubmission, Message: "exam attempt has already been submitted"}
}
