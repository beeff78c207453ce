package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	patchPRTitle      = "[Auto] Spring Boot Patch Upgrade"
	patchBranchPrefix = "patch-upgrade-"
)

// applyPatchUpgrade runs the patch recipe and, if it changed anything, pushes
// a branch and opens a pull request against the default branch.
func (x *UseCase) applyPatchUpgrade(ctx context.Context, token types.InstallationToken, run *model.AdvisorRun, dir, remoteURL string) error {
	if err := x.clients.BuildTool().ApplyPatchRecipe(ctx, dir); err != nil {
		return err
	}

	changed, err := x.clients.Git().HasChanges(ctx, dir)
	if err != nil {
		return err
	}
	if !changed {
		logging.From(ctx).Info("Patch recipe made no changes")
		run.Outcome = model.RepoOutcomeNoChanges
		return nil
	}

	gitClient := x.clients.Git()
	branch := types.BranchName(patchBranchPrefix + run.ID.String())
	if err := gitClient.CheckoutNewBranch(ctx, dir, branch); err != nil {
		return err
	}
	if err := gitClient.AddAll(ctx, dir); err != nil {
		return err
	}
	message := patchPRTitle + " - " + logging.CtxTime(ctx).UTC().Format(time.RFC3339)
	if err := gitClient.Commit(ctx, dir, message); err != nil {
		return err
	}
	if err := gitClient.Push(ctx, dir, remoteURL, branch); err != nil {
		return err
	}
	run.Branch = string(branch)

	gh := x.clients.GitHub()
	base, err := gh.GetDefaultBranch(ctx, token, run.Org, run.Repo)
	if err != nil {
		return goerr.Wrap(err, "failed to get default branch")
	}
	number, err := gh.CreatePullRequest(ctx, token, &model.NewPullRequestInput{
		Owner: run.Org,
		Repo:  run.Repo,
		Title: patchPRTitle,
		Body:  patchPRTitle,
		Head:  branch,
		Base:  base,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to open patch pull request", goerr.V("branch", branch))
	}

	logging.From(ctx).Info("Opened patch upgrade pull request",
		slog.Int("number", number),
		slog.String("branch", string(branch)),
		slog.String("base", string(base)),
	)
	run.Outcome = model.RepoOutcomeDone
	return nil
}
