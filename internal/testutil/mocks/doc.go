// Package mocks provides testify/mock implementations of autocomment interfaces.
//
// # Available Mocks
//
//   - MockIssueCommentClient: Mock for github.IssueCommentClient
//
// Use the factory functions and WithDefaultBehavior() for the common
// happy-path setup, then override individual expectations per test.
package mocks
