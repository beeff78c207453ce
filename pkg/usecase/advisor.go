package usecase

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gammazero/workerpool"
	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/infra/advisor"
	"github.com/javagrunt/javagrunt/pkg/infra/git"
	"github.com/javagrunt/javagrunt/pkg/utils/errutil"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/javagrunt/javagrunt/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// RunAdvisor runs one advisor cycle over every active organization. Only one
// cycle runs at a time; an overlapping call returns ErrAdvisorRunning.
func (x *UseCase) RunAdvisor(ctx context.Context) error {
	if !x.advisorRunning.CompareAndSwap(false, true) {
		return goerr.Wrap(types.ErrAdvisorRunning, "advisor cycle already in progress")
	}
	defer x.advisorRunning.Store(false)

	logger := logging.From(ctx)
	orgs, err := x.clients.Registry().ListOrgStatuses(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list organizations")
	}
	logger.Info("Starting advisor cycle", slog.Int("orgs", len(orgs)), slog.Int("workers", x.workers))

	var (
		mu   sync.Mutex
		runs []*model.AdvisorRun
	)
	wp := workerpool.New(x.workers)

	for _, org := range orgs {
		if org.Status.Deleted() {
			logger.Debug("Skipping deleted organization", slog.String("org", org.Org))
			continue
		}

		token, repos, err := x.prepareOrg(ctx, org.Org)
		if err != nil {
			errutil.HandleError(ctx, "failed to prepare organization", err)
			continue
		}

		for _, repo := range repos {
			orgName, repoName := org.Org, repo
			wp.Submit(func() {
				run := x.adviseRepository(ctx, token, orgName, repoName)
				mu.Lock()
				runs = append(runs, run)
				mu.Unlock()
			})
		}
	}
	wp.StopWait()

	summary := map[model.RepoOutcome]int{}
	for _, run := range runs {
		summary[run.Outcome]++
	}
	logger.Info("Completed advisor cycle",
		slog.Int("repos", len(runs)),
		slog.Int("done", summary[model.RepoOutcomeDone]),
		slog.Int("skipped", summary[model.RepoOutcomeSkipped]),
		slog.Int("no_changes", summary[model.RepoOutcomeNoChanges]),
		slog.Int("failed", summary[model.RepoOutcomeFailed]),
	)

	return nil
}

// TriggerAdvisor starts a cycle in the background and returns immediately
func (x *UseCase) TriggerAdvisor(ctx context.Context) {
	bgCtx := logging.Detach(ctx)
	go func() {
		if err := x.RunAdvisor(bgCtx); err != nil {
			if errors.Is(err, types.ErrAdvisorRunning) {
				logging.From(bgCtx).Warn("Advisor cycle already running, trigger ignored")
				return
			}
			errutil.HandleError(bgCtx, "advisor cycle failed", err)
		}
	}()
}

// prepareOrg returns a token and the repositories of org. An organization
// without installation yields no repositories.
func (x *UseCase) prepareOrg(ctx context.Context, org string) (types.InstallationToken, []string, error) {
	installID, found, err := x.clients.Registry().GetInstallationID(ctx, org)
	if err != nil {
		return "", nil, goerr.Wrap(err, "failed to get installation ID", goerr.V("org", org))
	}
	if !found {
		logging.From(ctx).Warn("Skipping organization without installation ID", slog.String("org", org))
		return "", nil, nil
	}

	token, err := x.clients.GitHub().CreateInstallationToken(ctx, installID)
	if err != nil {
		return "", nil, goerr.Wrap(err, "failed to create installation token",
			goerr.V("org", org),
			goerr.V("installation_id", installID),
		)
	}

	repos, err := x.clients.Registry().ListRepos(ctx, org)
	if err != nil {
		return "", nil, goerr.Wrap(err, "failed to list repositories", goerr.V("org", org))
	}
	return token, repos, nil
}

// adviseRepository runs the per-repository pipeline and records its outcome.
// It never returns an error; failures end up in the run record.
func (x *UseCase) adviseRepository(ctx context.Context, token types.InstallationToken, org, repo string) *model.AdvisorRun {
	now := logging.CtxTime(ctx)
	run := &model.AdvisorRun{
		ID:        types.NewRunID(now),
		Org:       org,
		Repo:      repo,
		StartedAt: now.UTC(),
	}
	ctx = logging.With(ctx, logging.From(ctx).With(
		slog.String("org", org),
		slog.String("repo", repo),
		slog.String("run_id", run.ID.String()),
	))

	if err := x.advise(ctx, token, run); err != nil {
		run.Outcome = model.RepoOutcomeFailed
		run.Error = err.Error()
		errutil.HandleError(ctx, "advisor failed on repository", err)
	}
	run.FinishedAt = logging.CtxTime(ctx).UTC()

	logging.From(ctx).Info("Advisor finished repository",
		slog.String("outcome", string(run.Outcome)),
		slog.String("path", string(run.Path)),
	)

	if err := x.recordRun(ctx, run); err != nil {
		errutil.HandleError(ctx, "failed to record advisor run", err)
	}
	return run
}

func (x *UseCase) advise(ctx context.Context, token types.InstallationToken, run *model.AdvisorRun) error {
	dir := filepath.Join(x.workspace, run.Org, run.Repo, run.ID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create workspace", goerr.V("dir", dir))
	}
	if !x.keepWorkspace {
		defer safe.RemoveAll(dir)
	}

	remoteURL := git.RemoteURL(x.gitHost, run.Org, run.Repo, token)
	if err := x.clients.Git().Clone(ctx, dir, remoteURL); err != nil {
		return err
	}

	skip, closed, err := x.cleanupAutoPullRequests(ctx, token, run.Org, run.Repo)
	run.ClosedPRs = closed
	if err != nil {
		return err
	}
	if skip {
		logging.From(ctx).Info("Skipping repository due to recent [Auto] PR")
		run.Outcome = model.RepoOutcomeSkipped
		return nil
	}

	if err := x.clients.Advisor().BuildConfig(ctx, dir); err != nil {
		return err
	}
	plan, err := x.clients.Advisor().GetUpgradePlan(ctx, dir)
	if err != nil {
		return err
	}

	if strings.Contains(plan, advisor.NoUpgradePlans) {
		run.Path = model.UpgradePathPatch
		return x.applyPatchUpgrade(ctx, token, run, dir, remoteURL)
	}

	run.Path = model.UpgradePathFullUpgrade
	if err := x.clients.Advisor().ApplyUpgradePlan(ctx, dir); err != nil {
		return err
	}
	run.Outcome = model.RepoOutcomeDone
	return nil
}
