// Package builders provides builder-style constructors for GitHub API test fixtures.
package builders
