package builders

import (
	"fmt"

	"github.com/douhashi/autocomment/internal/github"
)

// IssueBuilder builds github.Issue instances for testing
type IssueBuilder struct {
	issue *github.Issue
}

// NewIssueBuilder creates a new IssueBuilder with sensible defaults
func NewIssueBuilder() *IssueBuilder {
	return &IssueBuilder{
		issue: &github.Issue{
			Number: github.Int(1),
			State:  github.String("open"),
			Title:  github.String("Default Issue"),
		},
	}
}

// WithNumber sets the issue number
func (b *IssueBuilder) WithNumber(number int) *IssueBuilder {
	b.issue.Number = github.Int(number)
	return b
}

// WithTitle sets the issue title
func (b *IssueBuilder) WithTitle(title string) *IssueBuilder {
	b.issue.Title = github.String(title)
	return b
}

// Build returns the built issue
func (b *IssueBuilder) Build() *github.Issue {
	return b.issue
}

// RepositoryBuilder builds github.Repository instances for testing
type RepositoryBuilder struct {
	repo *github.Repository
}

// NewRepositoryBuilder creates a new RepositoryBuilder for owner/name
func NewRepositoryBuilder(owner, name string) *RepositoryBuilder {
	return &RepositoryBuilder{
		repo: &github.Repository{
			Name:     github.String(name),
			FullName: github.String(owner + "/" + name),
			Owner:    &github.User{Login: github.String(owner)},
		},
	}
}

// Build returns the built repository
func (b *RepositoryBuilder) Build() *github.Repository {
	return b.repo
}

// CommentBuilder builds github.IssueComment instances for testing
type CommentBuilder struct {
	comment *github.IssueComment
}

// NewCommentBuilder creates a new CommentBuilder with the given ID
func NewCommentBuilder(id int64) *CommentBuilder {
	return &CommentBuilder{
		comment: &github.IssueComment{ID: github.Int64(id)},
	}
}

// WithBody sets the comment body
func (b *CommentBuilder) WithBody(body string) *CommentBuilder {
	b.comment.Body = github.String(body)
	return b
}

// OnIssue sets the HTML URL the way GitHub formats it for an issue comment
func (b *CommentBuilder) OnIssue(fullName string, number int) *CommentBuilder {
	b.comment.HTMLURL = github.String(fmt.Sprintf("https://github.com/%s/issues/%d#issuecomment-%d", fullName, number, b.comment.GetID()))
	return b
}

// Build returns the built comment
func (b *CommentBuilder) Build() *github.IssueComment {
	return b.comment
}
