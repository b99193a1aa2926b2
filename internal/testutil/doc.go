// Package testutil provides common test utilities, mocks, and builders for testing autocomment components.
//
// This package is organized into the following sub-packages:
//
//   - mocks: testify/mock implementations of the interfaces used by the commenter
//   - builders: Test data builders for GitHub API objects
//
// # Example
//
//	client := mocks.NewMockIssueCommentClient().WithDefaultBehavior()
//	client.On("GetIssue", mock.Anything, "owner", "repo", 123).
//	    Return(builders.NewIssueBuilder().WithNumber(123).Build(), nil)
package testutil
