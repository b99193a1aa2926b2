package mocks

import (
	"context"

	"github.com/douhashi/autocomment/internal/github"
	"github.com/stretchr/testify/mock"
)

// MockIssueCommentClient is a mock implementation of github.IssueCommentClient
type MockIssueCommentClient struct {
	mock.Mock
}

var _ github.IssueCommentClient = (*MockIssueCommentClient)(nil)

// NewMockIssueCommentClient creates a new instance of MockIssueCommentClient
func NewMockIssueCommentClient() *MockIssueCommentClient {
	return &MockIssueCommentClient{}
}

// WithDefaultBehavior makes every call succeed with minimal fixtures.
func (m *MockIssueCommentClient) WithDefaultBehavior() *MockIssueCommentClient {
	m.On("GetRepository", mock.Anything, mock.Anything, mock.Anything).
		Maybe().Return(&github.Repository{FullName: github.String("owner/repo")}, nil)

	m.On("GetIssue", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Maybe().Return(&github.Issue{Number: github.Int(1)}, nil)

	m.On("CreateIssueComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Maybe().Return(&github.IssueComment{ID: github.Int64(1)}, nil)

	return m
}

// GetRepository mocks the GetRepository method
func (m *MockIssueCommentClient) GetRepository(ctx context.Context, owner, repo string) (*github.Repository, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.Repository), args.Error(1)
}

// GetIssue mocks the GetIssue method
func (m *MockIssueCommentClient) GetIssue(ctx context.Context, owner, repo string, number int) (*github.Issue, error) {
	args := m.Called(ctx, owner, repo, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.Issue), args.Error(1)
}

// CreateIssueComment mocks the CreateIssueComment method
func (m *MockIssueCommentClient) CreateIssueComment(ctx context.Context, owner, repo string, number int, body string) (*github.IssueComment, error) {
	args := m.Called(ctx, owner, repo, number, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.IssueComment), args.Error(1)
}
