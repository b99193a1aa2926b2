package github

import (
	"context"
)

// IssueCommentClient はIssueへのコメント投稿に必要なGitHub API操作のインターフェース
type IssueCommentClient interface {
	GetRepository(ctx context.Context, owner, repo string) (*Repository, error)
	GetIssue(ctx context.Context, owner, repo string, number int) (*Issue, error)
	CreateIssueComment(ctx context.Context, owner, repo string, number int, body string) (*IssueComment, error)
}

var _ IssueCommentClient = (*Client)(nil)
