package commenter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/douhashi/autocomment/internal/github"
	"github.com/douhashi/autocomment/internal/logger"
)

// ClientFactory opens an authenticated GitHub session for a token.
type ClientFactory func(token string) (github.IssueCommentClient, error)

// Result describes a created comment.
type Result struct {
	Repository  string
	IssueNumber int
	IssueTitle  string
	CommentID   int64
	URL         string
}

// Submitter posts a single comment per call. Repeated calls with the same
// request create duplicate comments.
type Submitter struct {
	newClient ClientFactory
	logger    logger.Logger
	out       io.Writer
	errOut    io.Writer
}

// Option configures a Submitter.
type Option func(*Submitter)

// WithLogger sets the structured logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Submitter) {
		s.logger = l
	}
}

// WithOutput sets where Submit writes its success and error lines.
func WithOutput(out, errOut io.Writer) Option {
	return func(s *Submitter) {
		s.out = out
		s.errOut = errOut
	}
}

// NewSubmitter creates a Submitter that builds clients with factory.
func NewSubmitter(factory ClientFactory, opts ...Option) *Submitter {
	s := &Submitter{
		newClient: factory,
		logger:    logger.NewNop(),
		out:       os.Stdout,
		errOut:    os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Post validates req, resolves the repository and issue, and appends the
// comment. Failures after validation are returned as *SubmitError.
func (s *Submitter) Post(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := s.logger.WithFields("owner", req.Owner, "repo", req.Repo, "issue", req.IssueNumber)

	client, err := s.newClient(req.Token)
	if err != nil {
		return nil, newSubmitError(StepAuthenticate, err)
	}

	repo, err := client.GetRepository(ctx, req.Owner, req.Repo)
	if err != nil {
		return nil, newSubmitError(StepResolveRepository, err)
	}
	log.Debug("repository resolved", "full_name", repo.GetFullName())

	issue, err := client.GetIssue(ctx, req.Owner, req.Repo, req.IssueNumber)
	if err != nil {
		return nil, newSubmitError(StepResolveIssue, err)
	}
	log.Debug("issue resolved", "title", issue.GetTitle(), "state", issue.GetState(), "pull_request", issue.IsPullRequest())

	comment, err := client.CreateIssueComment(ctx, req.Owner, req.Repo, req.IssueNumber, req.Body)
	if err != nil {
		return nil, newSubmitError(StepCreateComment, err)
	}

	result := &Result{
		Repository:  req.FullName(),
		IssueNumber: req.IssueNumber,
		IssueTitle:  issue.GetTitle(),
		CommentID:   comment.GetID(),
		URL:         comment.GetHTMLURL(),
	}
	if name := repo.GetFullName(); name != "" {
		result.Repository = name
	}

	log.Info("comment created", "comment_id", result.CommentID, "url", result.URL)
	return result, nil
}

// Submit posts the comment and reports the outcome as a single line. Every
// failure, whatever its category, collapses into false.
func (s *Submitter) Submit(ctx context.Context, req Request) bool {
	result, err := s.Post(ctx, req)
	if err != nil {
		fields := []interface{}{"error", err.Error()}
		var submitErr *SubmitError
		if errors.As(err, &submitErr) {
			fields = append(fields,
				"category", submitErr.Category.String(),
				"step", submitErr.Step.String(),
				"error_type", submitErr.ErrorType().String(),
			)
		}
		s.logger.Info("failed to add comment", fields...)
		fmt.Fprintf(s.errOut, "❌ Error adding comment: %v\n", err)
		return false
	}

	fmt.Fprintf(s.out, "✅ Successfully added comment to issue #%d\n", result.IssueNumber)
	return true
}
