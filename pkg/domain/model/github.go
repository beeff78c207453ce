package model

import (
	"time"

	"github.com/javagrunt/javagrunt/pkg/domain/types"
)

// PullRequest is an open pull request as seen by the cleanup step.
type PullRequest struct {
	Number    int
	Title     string
	CreatedAt time.Time
	HeadRef   types.BranchName
}

// AgeDays returns the number of whole days between CreatedAt and now.
func (x *PullRequest) AgeDays(now time.Time) int {
	return int(now.Sub(x.CreatedAt) / (24 * time.Hour))
}

// TemplateSource is the shared repository file copied into onboarded repositories.
type TemplateSource struct {
	Owner string
	Repo  string
	Path  string
	Ref   string
	Token types.InstallationToken
}

type NewPullRequestInput struct {
	Owner string
	Repo  string
	Title string
	Body  string
	Head  types.BranchName
	Base  types.BranchName
}

type PutFileInput struct {
	Owner   string
	Repo    string
	Path    string
	Branch  types.BranchName
	Message string
	Content []byte
}
