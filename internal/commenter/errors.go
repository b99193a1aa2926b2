package commenter

import (
	"github.com/douhashi/autocomment/internal/github"
)

// Category groups submission failures by the phase that caused them.
type Category int

const (
	// CategoryAuthentication covers a missing or rejected token.
	CategoryAuthentication Category = iota + 1
	// CategoryResolution covers failures to look up the repository or issue.
	CategoryResolution
	// CategorySubmission covers failures while creating the comment.
	CategorySubmission
)

func (c Category) String() string {
	switch c {
	case CategoryAuthentication:
		return "authentication"
	case CategoryResolution:
		return "resolution"
	case CategorySubmission:
		return "submission"
	default:
		return "unknown"
	}
}

// Step is the individual operation that failed.
type Step int

const (
	StepAuthenticate Step = iota + 1
	StepResolveRepository
	StepResolveIssue
	StepCreateComment
)

func (s Step) String() string {
	switch s {
	case StepAuthenticate:
		return "authenticate"
	case StepResolveRepository:
		return "resolve_repository"
	case StepResolveIssue:
		return "resolve_issue"
	case StepCreateComment:
		return "create_comment"
	default:
		return "unknown"
	}
}

func (s Step) category() Category {
	switch s {
	case StepAuthenticate:
		return CategoryAuthentication
	case StepResolveRepository, StepResolveIssue:
		return CategoryResolution
	default:
		return CategorySubmission
	}
}

// SubmitError is returned by Post for any failure after validation.
type SubmitError struct {
	Category Category
	Step     Step
	Err      error
}

func newSubmitError(step Step, err error) *SubmitError {
	category := step.category()
	// 401はどのステップで返ってきても認証エラーとして扱う
	if github.IsAuthenticationError(err) {
		category = CategoryAuthentication
	}
	return &SubmitError{Category: category, Step: step, Err: err}
}

func (e *SubmitError) Error() string {
	return e.Step.String() + ": " + e.Err.Error()
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// ErrorType returns the GitHub API classification of the underlying cause.
func (e *SubmitError) ErrorType() github.GitHubErrorType {
	return github.ErrorType(e.Err)
}
