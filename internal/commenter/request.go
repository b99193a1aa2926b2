package commenter

import (
	"errors"
	"fmt"
)

// DefaultBody is posted when no comment text is given.
const DefaultBody = "Thank you for your contribution!"

// ErrInvalidRequest is wrapped by every Request validation failure.
var ErrInvalidRequest = errors.New("invalid request")

// Request identifies the issue to comment on and the text to post.
type Request struct {
	Token       string
	Owner       string
	Repo        string
	IssueNumber int
	Body        string
}

// Validate reports the first missing or malformed field.
func (r Request) Validate() error {
	switch {
	case r.Token == "":
		return fmt.Errorf("%w: token is required", ErrInvalidRequest)
	case r.Owner == "":
		return fmt.Errorf("%w: owner is required", ErrInvalidRequest)
	case r.Repo == "":
		return fmt.Errorf("%w: repo is required", ErrInvalidRequest)
	case r.IssueNumber <= 0:
		return fmt.Errorf("%w: issue number must be positive, got %d", ErrInvalidRequest, r.IssueNumber)
	case r.Body == "":
		return fmt.Errorf("%w: comment must not be empty", ErrInvalidRequest)
	}
	return nil
}

// FullName returns the "owner/repo" form of the target repository.
func (r Request) FullName() string {
	return r.Owner + "/" + r.Repo
}

// String describes the target without exposing the token.
func (r Request) String() string {
	return fmt.Sprintf("%s#%d", r.FullName(), r.IssueNumber)
}
