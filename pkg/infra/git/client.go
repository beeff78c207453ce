package git

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	gogit "github.com/go-git/go-git/v5"
	"github.com/javagrunt/javagrunt/pkg/domain/interfaces"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/infra/command"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultAuthorName  = "javagrunt[bot]"
	DefaultAuthorEmail = "javagrunt[bot]@users.noreply.github.com"
)

// Client drives the git CLI for clone, commit and push, and reads working tree
// status with go-git.
type Client struct {
	executor    command.Executor
	path        string
	authorName  string
	authorEmail string
}

var _ interfaces.Git = (*Client)(nil)

type Option func(*Client)

func WithPath(path string) Option {
	return func(x *Client) {
		x.path = path
	}
}

func WithAuthor(name, email string) Option {
	return func(x *Client) {
		x.authorName = name
		x.authorEmail = email
	}
}

func New(executor command.Executor, options ...Option) *Client {
	x := &Client{
		executor:    executor,
		path:        "git",
		authorName:  DefaultAuthorName,
		authorEmail: DefaultAuthorEmail,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// RemoteURL builds an HTTPS remote authenticated with an installation token.
func RemoteURL(host, owner, repo string, token types.InstallationToken) string {
	return fmt.Sprintf("https://x-access-token:%s@%s/%s/%s.git", token.Raw(), host, owner, repo)
}

// urlSecrets returns the password part of a remote URL so it can be redacted.
func urlSecrets(remoteURL string) []string {
	u, err := url.Parse(remoteURL)
	if err != nil || u.User == nil {
		return nil
	}
	if password, ok := u.User.Password(); ok {
		return []string{password}
	}
	return nil
}

func (x *Client) run(ctx context.Context, dir string, secrets []string, args ...string) error {
	_, err := x.executor.Execute(ctx, &command.Command{
		Path:    x.path,
		Args:    args,
		Dir:     dir,
		Secrets: secrets,
	})
	return err
}

// Clone performs a shallow clone of remoteURL into dir, which must already exist.
func (x *Client) Clone(ctx context.Context, dir, remoteURL string) error {
	if err := x.run(ctx, dir, urlSecrets(remoteURL), "clone", "--depth", "1", remoteURL, "."); err != nil {
		return goerr.Wrap(err, "git clone failed", goerr.V("dir", dir))
	}
	logging.From(ctx).Debug("Cloned repository", slog.String("dir", dir))
	return nil
}

func (x *Client) HasChanges(ctx context.Context, dir string) (bool, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return false, goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}
	wt, err := repo.Worktree()
	if err != nil {
		return false, goerr.Wrap(err, "failed to get worktree", goerr.V("dir", dir))
	}
	status, err := wt.Status()
	if err != nil {
		return false, goerr.Wrap(err, "failed to get worktree status", goerr.V("dir", dir))
	}

	if status.IsClean() {
		return false, nil
	}
	logging.From(ctx).Debug("Working tree has changes", slog.String("dir", dir), slog.Int("files", len(status)))
	return true, nil
}

func (x *Client) CheckoutNewBranch(ctx context.Context, dir string, branch types.BranchName) error {
	if err := x.run(ctx, dir, nil, "checkout", "-b", string(branch)); err != nil {
		return goerr.Wrap(err, "git checkout failed", goerr.V("branch", branch))
	}
	return nil
}

func (x *Client) AddAll(ctx context.Context, dir string) error {
	if err := x.run(ctx, dir, nil, "add", "."); err != nil {
		return goerr.Wrap(err, "git add failed", goerr.V("dir", dir))
	}
	return nil
}

func (x *Client) Commit(ctx context.Context, dir, message string) error {
	if err := x.run(ctx, dir, nil,
		"-c", "user.name="+x.authorName,
		"-c", "user.email="+x.authorEmail,
		"commit", "-m", message,
	); err != nil {
		return goerr.Wrap(err, "git commit failed", goerr.V("dir", dir))
	}
	return nil
}

func (x *Client) Push(ctx context.Context, dir, remoteURL string, branch types.BranchName) error {
	if err := x.run(ctx, dir, urlSecrets(remoteURL), "push", "-u", remoteURL, string(branch)); err != nil {
		return goerr.Wrap(err, "git push failed", goerr.V("branch", branch))
	}
	return nil
}
