package github

import (
	"context"
	"errors"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/go-github/v50/github"
)

var (
	// Fallback patterns for errors that do not carry an HTTP response
	rateLimitRegex   = regexp.MustCompile(`(?i)(rate limit|API rate limit exceeded|You have exceeded a secondary rate limit)`)
	notFoundRegex    = regexp.MustCompile(`(?i)(not found|could not resolve to)`)
	authRegex        = regexp.MustCompile(`(?i)(unauthorized|bad credentials|requires authentication)`)
	networkRegex     = regexp.MustCompile(`(?i)(timeout|connection refused|connection reset|no such host|dial tcp)`)
	serverErrorRegex = regexp.MustCompile(`(?i)(internal server error|server error|502|503|504)`)
	httpStatusRegex  = regexp.MustCompile(`\b([1-5]\d{2}) [A-Z]`)
)

// ClassifyError converts an error returned by go-github into a *GitHubError.
// Errors that are already classified are returned unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var ghErr *GitHubError
	if errors.As(err, &ghErr) {
		return err
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &GitHubError{
			Type:        ErrorTypeRateLimit,
			StatusCode:  statusCode(rateErr.Response),
			Message:     rateErr.Message,
			OriginalErr: err,
		}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &GitHubError{
			Type:        ErrorTypeRateLimit,
			StatusCode:  statusCode(abuseErr.Response),
			Message:     abuseErr.Message,
			OriginalErr: err,
		}
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		code := statusCode(respErr.Response)
		msg := respErr.Message
		if msg == "" {
			msg = http.StatusText(code)
		}
		return &GitHubError{
			Type:        typeForStatus(code),
			StatusCode:  code,
			Message:     msg,
			OriginalErr: err,
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &GitHubError{
			Type:        ErrorTypeNetworkTimeout,
			Message:     err.Error(),
			OriginalErr: err,
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return &GitHubError{
			Type:        ErrorTypeNetworkTimeout,
			Message:     err.Error(),
			OriginalErr: err,
		}
	}

	return ParseErrorMessage(err.Error(), err)
}

// ParseErrorMessage classifies an error by its message text.
func ParseErrorMessage(msg string, err error) *GitHubError {
	ghErr := &GitHubError{
		Message:     strings.TrimSpace(msg),
		OriginalErr: err,
	}

	if matches := httpStatusRegex.FindStringSubmatch(msg); len(matches) > 1 {
		if code, convErr := strconv.Atoi(matches[1]); convErr == nil {
			ghErr.StatusCode = code
		}
	}

	switch {
	case rateLimitRegex.MatchString(msg):
		ghErr.Type = ErrorTypeRateLimit
	case authRegex.MatchString(msg):
		ghErr.Type = ErrorTypeAuthentication
	case notFoundRegex.MatchString(msg):
		ghErr.Type = ErrorTypeNotFound
	case networkRegex.MatchString(msg):
		ghErr.Type = ErrorTypeNetworkTimeout
	case serverErrorRegex.MatchString(msg):
		ghErr.Type = ErrorTypeServerError
	default:
		ghErr.Type = typeForStatus(ghErr.StatusCode)
	}

	return ghErr
}

func typeForStatus(code int) GitHubErrorType {
	switch {
	case code == http.StatusUnauthorized:
		return ErrorTypeAuthentication
	case code == http.StatusForbidden:
		return ErrorTypeForbidden
	case code == http.StatusNotFound:
		return ErrorTypeNotFound
	case code == http.StatusUnprocessableEntity:
		return ErrorTypeValidation
	case code == http.StatusTooManyRequests:
		return ErrorTypeRateLimit
	case code >= 500 && code < 600:
		return ErrorTypeServerError
	default:
		return ErrorTypeUnknown
	}
}

func statusCode(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
