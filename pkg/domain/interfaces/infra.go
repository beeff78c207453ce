package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHub Git Advisor BuildTool

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// GitHub is the subset of the GitHub REST API the service consumes. Repository
// scoped calls authenticate with an installation token.
type GitHub interface {
	CreateInstallationToken(ctx context.Context, installID types.GitHubAppInstallID) (types.InstallationToken, error)

	GetDefaultBranch(ctx context.Context, token types.InstallationToken, owner, repo string) (types.BranchName, error)
	GetBranchSHA(ctx context.Context, token types.InstallationToken, owner, repo string, branch types.BranchName) (types.CommitSHA, error)
	ContentExists(ctx context.Context, token types.InstallationToken, owner, repo, path string) (bool, error)
	FetchTemplate(ctx context.Context, src *model.TemplateSource) ([]byte, error)

	CreateBranch(ctx context.Context, token types.InstallationToken, owner, repo string, branch types.BranchName, sha types.CommitSHA) error
	PutFile(ctx context.Context, token types.InstallationToken, input *model.PutFileInput) error
	DeleteBranch(ctx context.Context, token types.InstallationToken, owner, repo string, branch types.BranchName) error

	CreatePullRequest(ctx context.Context, token types.InstallationToken, input *model.NewPullRequestInput) (int, error)
	ListOpenPullRequests(ctx context.Context, token types.InstallationToken, owner, repo string) ([]*model.PullRequest, error)
	ClosePullRequest(ctx context.Context, token types.InstallationToken, owner, repo string, number int) error
}

// Git drives the git CLI inside a workspace directory.
type Git interface {
	Clone(ctx context.Context, dir, remoteURL string) error
	HasChanges(ctx context.Context, dir string) (bool, error)
	CheckoutNewBranch(ctx context.Context, dir string, branch types.BranchName) error
	AddAll(ctx context.Context, dir string) error
	Commit(ctx context.Context, dir, message string) error
	Push(ctx context.Context, dir, remoteURL string, branch types.BranchName) error
}

// Advisor wraps the dependency advisor CLI.
type Advisor interface {
	BuildConfig(ctx context.Context, dir string) error
	GetUpgradePlan(ctx context.Context, dir string) (string, error)
	ApplyUpgradePlan(ctx context.Context, dir string) error
}

// BuildTool applies the patch-level upgrade recipe with the project's build wrapper.
type BuildTool interface {
	ApplyPatchRecipe(ctx context.Context, dir string) error
}
