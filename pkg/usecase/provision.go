package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/utils/errutil"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	workflowMessage      = "Add centralized CI workflow"
	workflowBranchPrefix = "javagrunt/ci-"
)

// ProvisionRepositories registers every repository and opens a pull request
// adding the shared workflow to those that do not have one yet. The token and
// the template are fetched once for the batch. A failure on one repository is
// reported and does not stop the others.
func (x *UseCase) ProvisionRepositories(ctx context.Context, installID types.GitHubAppInstallID, repos []model.RepoRef) error {
	if len(repos) == 0 {
		return nil
	}

	token, err := x.clients.GitHub().CreateInstallationToken(ctx, installID)
	if err != nil {
		return goerr.Wrap(err, "failed to create installation token for provisioning",
			goerr.V("installation_id", installID),
		)
	}

	src := x.template
	if src.Token == "" {
		src.Token = token
	}
	content, err := x.clients.GitHub().FetchTemplate(ctx, &src)
	if err != nil {
		return goerr.Wrap(err, "failed to fetch workflow template",
			goerr.V("owner", src.Owner),
			goerr.V("repo", src.Repo),
			goerr.V("path", src.Path),
		)
	}

	for _, repo := range repos {
		if err := x.provisionRepository(ctx, token, repo, content); err != nil {
			errutil.HandleError(ctx, "failed to provision repository", err)
		}
	}

	return nil
}

func (x *UseCase) provisionRepository(ctx context.Context, token types.InstallationToken, repo model.RepoRef, content []byte) error {
	gh := x.clients.GitHub()
	logger := logging.From(ctx).With(slog.String("repo", repo.String()))

	if err := x.clients.Registry().AddRepo(ctx, repo.Owner, repo.Name); err != nil {
		return goerr.Wrap(err, "failed to register repository", goerr.V("repo", repo.String()))
	}

	exists, err := gh.ContentExists(ctx, token, repo.Owner, repo.Name, x.targetPath)
	if err != nil {
		return goerr.Wrap(err, "failed to check workflow", goerr.V("repo", repo.String()))
	}
	if exists {
		logger.Info("Workflow already present, skipping", slog.String("path", x.targetPath))
		return nil
	}

	base, err := gh.GetDefaultBranch(ctx, token, repo.Owner, repo.Name)
	if err != nil {
		return goerr.Wrap(err, "failed to get default branch", goerr.V("repo", repo.String()))
	}
	sha, err := gh.GetBranchSHA(ctx, token, repo.Owner, repo.Name, base)
	if err != nil {
		return goerr.Wrap(err, "failed to get branch head", goerr.V("repo", repo.String()), goerr.V("branch", base))
	}

	branch := types.BranchName(workflowBranchPrefix + types.NewRunID(logging.CtxTime(ctx)).String())
	if err := gh.CreateBranch(ctx, token, repo.Owner, repo.Name, branch, sha); err != nil {
		return goerr.Wrap(err, "failed to create branch", goerr.V("repo", repo.String()), goerr.V("branch", branch))
	}

	if err := gh.PutFile(ctx, token, &model.PutFileInput{
		Owner:   repo.Owner,
		Repo:    repo.Name,
		Path:    x.targetPath,
		Branch:  branch,
		Message: workflowMessage,
		Content: content,
	}); err != nil {
		return goerr.Wrap(err, "failed to commit workflow", goerr.V("repo", repo.String()), goerr.V("branch", branch))
	}

	number, err := gh.CreatePullRequest(ctx, token, &model.NewPullRequestInput{
		Owner: repo.Owner,
		Repo:  repo.Name,
		Title: workflowMessage,
		Body:  fmt.Sprintf("This PR adds the shared CI workflow from %s/%s.", x.template.Owner, x.template.Repo),
		Head:  branch,
		Base:  base,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to open pull request", goerr.V("repo", repo.String()), goerr.V("branch", branch))
	}

	logger.Info("Opened workflow pull request",
		slog.Int("number", number),
		slog.String("branch", string(branch)),
		slog.String("base", string(base)),
	)
	return nil
}
