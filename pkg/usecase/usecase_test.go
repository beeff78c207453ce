package usecase_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/javagrunt/javagrunt/pkg/domain/mock"
	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func testContext() context.Context {
	return logging.CtxWithTime(context.Background(), func() time.Time { return testNow })
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// callLog records mock invocations in order across goroutines
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (x *callLog) add(name string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.calls = append(x.calls, name)
}

func (x *callLog) list() []string {
	x.mu.Lock()
	defer x.mu.Unlock()
	return append([]string{}, x.calls...)
}

// newGitHubMock returns a GitHub mock where every call succeeds and is recorded
func newGitHubMock(log *callLog) *mock.GitHubMock {
	return &mock.GitHubMock{
		CreateInstallationTokenFunc: func(ctx context.Context, installID types.GitHubAppInstallID) (types.InstallationToken, error) {
			log.add("token")
			return "ghs_test_token", nil
		},
		FetchTemplateFunc: func(ctx context.Context, src *model.TemplateSource) ([]byte, error) {
			log.add("template")
			return []byte("name: ci\n"), nil
		},
		ContentExistsFunc: func(ctx context.Context, token types.InstallationToken, owner, repo, path string) (bool, error) {
			log.add("exists:" + repo)
			return false, nil
		},
		GetDefaultBranchFunc: func(ctx context.Context, token types.InstallationToken, owner, repo string) (types.BranchName, error) {
			log.add("default_branch:" + repo)
			return "main", nil
		},
		GetBranchSHAFunc: func(ctx context.Context, token types.InstallationToken, owner, repo string, branch types.BranchName) (types.CommitSHA, error) {
			log.add("sha:" + repo)
			return "0123456789abcdef0123456789abcdef01234567", nil
		},
		CreateBranchFunc: func(ctx context.Context, token types.InstallationToken, owner, repo string, branch types.BranchName, sha types.CommitSHA) error {
			log.add("create_branch:" + repo)
			return nil
		},
		PutFileFunc: func(ctx context.Context, token types.InstallationToken, input *model.PutFileInput) error {
			log.add("put_file:" + input.Repo)
			return nil
		},
		CreatePullRequestFunc: func(ctx context.Context, token types.InstallationToken, input *model.NewPullRequestInput) (int, error) {
			log.add("create_pr:" + input.Repo)
			return 1, nil
		},
		ListOpenPullRequestsFunc: func(ctx context.Context, token types.InstallationToken, owner, repo string) ([]*model.PullRequest, error) {
			log.add("list_prs:" + repo)
			return nil, nil
		},
		ClosePullRequestFunc: func(ctx context.Context, token types.InstallationToken, owner, repo string, number int) error {
			log.add("close_pr:" + repo)
			return nil
		},
		DeleteBranchFunc: func(ctx context.Context, token types.InstallationToken, owner, repo string, branch types.BranchName) error {
			log.add("delete_branch:" + string(branch))
			return nil
		},
	}
}
