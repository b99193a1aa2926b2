package github

import (
	"github.com/google/go-github/v50/github"
)

// go-githubの型をこのパッケージ経由で参照できるようにする
type (
	Repository   = github.Repository
	Issue        = github.Issue
	IssueComment = github.IssueComment
	User         = github.User
)

// String returns a pointer to the given string value.
func String(v string) *string {
	return &v
}

// Int returns a pointer to the given int value.
func Int(v int) *int {
	return &v
}

// Int64 returns a pointer to the given int64 value.
func Int64(v int64) *int64 {
	return &v
}
