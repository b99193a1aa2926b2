package github

import (
	"errors"
	"fmt"
)

// GitHubErrorType represents the type of GitHub API error
type GitHubErrorType int

const (
	// ErrorTypeUnknown indicates unknown error type
	ErrorTypeUnknown GitHubErrorType = iota
	// ErrorTypeAuthentication indicates a rejected or missing token (401)
	ErrorTypeAuthentication
	// ErrorTypeForbidden indicates the token lacks permission (403)
	ErrorTypeForbidden
	// ErrorTypeNotFound indicates resource not found (404)
	ErrorTypeNotFound
	// ErrorTypeValidation indicates the request was rejected as invalid (422)
	ErrorTypeValidation
	// ErrorTypeRateLimit indicates rate limit exceeded
	ErrorTypeRateLimit
	// ErrorTypeNetworkTimeout indicates a transport level failure
	ErrorTypeNetworkTimeout
	// ErrorTypeServerError indicates server error (5xx)
	ErrorTypeServerError
)

// String returns the string representation of the error type
func (t GitHubErrorType) String() string {
	switch t {
	case ErrorTypeAuthentication:
		return "Authentication"
	case ErrorTypeForbidden:
		return "Forbidden"
	case ErrorTypeNotFound:
		return "NotFound"
	case ErrorTypeValidation:
		return "Validation"
	case ErrorTypeRateLimit:
		return "RateLimit"
	case ErrorTypeNetworkTimeout:
		return "NetworkTimeout"
	case ErrorTypeServerError:
		return "ServerError"
	default:
		return "Unknown"
	}
}

// GitHubError represents a structured GitHub API error
type GitHubError struct {
	Type        GitHubErrorType
	StatusCode  int
	Message     string
	OriginalErr error
}

// Error implements the error interface
func (e *GitHubError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GitHub API error [%s] %d: %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("GitHub API error [%s]: %s", e.Type, e.Message)
}

// Unwrap returns the original error
func (e *GitHubError) Unwrap() error {
	return e.OriginalErr
}

// ErrorType returns the GitHubErrorType of err, or ErrorTypeUnknown when err
// carries no GitHubError.
func ErrorType(err error) GitHubErrorType {
	var ghErr *GitHubError
	if errors.As(err, &ghErr) {
		return ghErr.Type
	}
	return ErrorTypeUnknown
}

// IsRateLimitError checks if the error is a rate limit error
func IsRateLimitError(err error) bool {
	return ErrorType(err) == ErrorTypeRateLimit
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return ErrorType(err) == ErrorTypeNotFound
}

// IsAuthenticationError checks if the error is an authentication error
func IsAuthenticationError(err error) bool {
	return ErrorType(err) == ErrorTypeAuthentication
}
