package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const autoPRPrefix = "[Auto]"

// cleanupAutoPullRequests closes [Auto] pull requests older than the cleanup
// threshold and deletes their head branch. skip is true when a younger [Auto]
// pull request is still open.
func (x *UseCase) cleanupAutoPullRequests(ctx context.Context, token types.InstallationToken, owner, repo string) (skip bool, closed []int, err error) {
	gh := x.clients.GitHub()

	prs, err := gh.ListOpenPullRequests(ctx, token, owner, repo)
	if err != nil {
		return false, nil, goerr.Wrap(err, "failed to list pull requests", goerr.V("owner", owner), goerr.V("repo", repo))
	}

	now := logging.CtxTime(ctx)
	for _, pr := range prs {
		if !strings.HasPrefix(pr.Title, autoPRPrefix) {
			continue
		}

		age := pr.AgeDays(now)
		if age <= x.cleanupDays {
			skip = true
			continue
		}

		logging.From(ctx).Info("Closing stale [Auto] pull request",
			slog.Int("number", pr.Number),
			slog.Int("age_days", age),
		)
		if err := gh.ClosePullRequest(ctx, token, owner, repo, pr.Number); err != nil {
			return false, closed, goerr.Wrap(err, "failed to close pull request", goerr.V("number", pr.Number))
		}
		closed = append(closed, pr.Number)

		if pr.HeadRef != "" {
			if err := gh.DeleteBranch(ctx, token, owner, repo, pr.HeadRef); err != nil {
				return false, closed, goerr.Wrap(err, "failed to delete branch", goerr.V("branch", pr.HeadRef))
			}
		}
	}

	return skip, closed, nil
}
