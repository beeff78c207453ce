package ghapp

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/javagrunt/javagrunt/pkg/domain/interfaces"
	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultBaseURL = "https://api.github.com/"
	rawMediaType   = "application/vnd.github.raw"
)

type Client struct {
	appID     types.GitHubAppID
	signer    ghinstallation.Signer
	baseURL   *url.URL
	transport http.RoundTripper
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client) error

// WithBaseURL points the client at a GitHub Enterprise or test API root.
func WithBaseURL(base string) Option {
	return func(x *Client) error {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", base), goerr.V("error", err.Error()))
		}
		x.baseURL = u
		return nil
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) error {
		x.transport = tr
		return nil
	}
}

// New creates a client. signer produces App tokens for the installation token exchange.
func New(appID types.GitHubAppID, signer ghinstallation.Signer, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if signer == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "signer is nil")
	}

	client := &Client{
		appID:     appID,
		signer:    signer,
		transport: http.DefaultTransport,
	}
	if err := WithBaseURL(DefaultBaseURL)(client); err != nil {
		return nil, err
	}
	for _, opt := range options {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	return client, nil
}

// apiTransport stamps the headers every call must carry.
type apiTransport struct {
	token types.InstallationToken
	base  http.RoundTripper
}

func (x *apiTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if x.token != "" {
		req.Header.Set("Authorization", "Bearer "+x.token.Raw())
	}
	if req.Header.Get("X-GitHub-Api-Version") == "" {
		req.Header.Set("X-GitHub-Api-Version", types.APIVersion)
	}
	req.Header.Set("User-Agent", types.UserAgent)
	return x.base.RoundTrip(req)
}

func (x *Client) newClient(tr http.RoundTripper) *github.Client {
	client := github.NewClient(&http.Client{Transport: tr})
	client.BaseURL = x.baseURL
	client.UserAgent = types.UserAgent
	return client
}

func (x *Client) tokenClient(token types.InstallationToken) *github.Client {
	return x.newClient(&apiTransport{token: token, base: x.transport})
}

func (x *Client) appClient() (*github.Client, error) {
	itr, err := ghinstallation.NewAppsTransportWithOptions(
		&apiTransport{base: x.transport},
		int64(x.appID),
		ghinstallation.WithSigner(x.signer),
	)
	if err != nil {
		return nil, goerr.Wrap(fmt.Errorf("%w: %w", types.ErrCrypto, err), "failed to create app transport")
	}
	return x.newClient(itr), nil
}

// wrapAPIError turns a failed call into a PlatformError when GitHub answered, or a
// transport error otherwise.
func wrapAPIError(err error, resp *github.Response, method, target string) error {
	if resp != nil && resp.Response != nil {
		return goerr.Wrap(&types.PlatformError{StatusCode: resp.StatusCode, Target: method + " " + target},
			"GitHub API returned error status",
			goerr.V("status", resp.StatusCode),
			goerr.V("target", target),
			goerr.V("error", err.Error()),
		)
	}
	return goerr.Wrap(err, "failed to call GitHub API", goerr.V("method", method), goerr.V("target", target))
}

func isNotFound(resp *github.Response) bool {
	return resp != nil && resp.Response != nil && resp.StatusCode == http.StatusNotFound
}

func (x *Client) CreateInstallationToken(ctx context.Context, installID types.GitHubAppInstallID) (types.InstallationToken, error) {
	client, err := x.appClient()
	if err != nil {
		return "", err
	}

	token, resp, err := client.Apps.CreateInstallationToken(ctx, int64(installID), nil)
	if err != nil {
		return "", wrapAPIError(err, resp, http.MethodPost, fmt.Sprintf("app/installations/%d/access_tokens", installID))
	}
	if token.GetToken() == "" {
		return "", goerr.Wrap(types.ErrInvalidGitHubData, "installation token is empty", goerr.V("installID", installID))
	}

	logging.From(ctx).Debug("Created installation token",
		slog.Any("installID", installID),
		slog.Any("expiresAt", token.GetExpiresAt()),
	)

	return types.InstallationToken(token.GetToken()), nil
}

func (x *Client) GetDefaultBranch(ctx context.Context, token types.InstallationToken, owner, repo string) (types.BranchName, error) {
	r, resp, err := x.tokenClient(token).Repositories.Get(ctx, owner, repo)
	if err != nil {
		return "", wrapAPIError(err, resp, http.MethodGet, fmt.Sprintf("repos/%s/%s", owner, repo))
	}

	if r.GetDefaultBranch() == "" {
		return "main", nil
	}
	return types.BranchName(r.GetDefaultBranch()), nil
}

func (x *Client) GetBranchSHA(ctx context.Context, token types.InstallationToken, owner, repo string, branch types.BranchName) (types.CommitSHA, error) {
	ref, resp, err := x.tokenClient(token).Git.GetRef(ctx, owner, repo, "heads/"+string(branch))
	if err != nil {
		return "", wrapAPIError(err, resp, http.MethodGet, fmt.Sprintf("repos/%s/%s/git/ref/heads/%s", owner, repo, branch))
	}

	sha := ref.GetObject().GetSHA()
	if sha == "" {
		return "", goerr.Wrap(types.ErrInvalidGitHubData, "branch has no head SHA",
			goerr.V("repo", owner+"/"+repo),
			goerr.V("branch", branch),
		)
	}
	return types.CommitSHA(sha), nil
}

func (x *Client) ContentExists(ctx context.Context, token types.InstallationToken, owner, repo, path string) (bool, error) {
	_, _, resp, err := x.tokenClient(token).Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		if isNotFound(resp) {
			return false, nil
		}
		return false, wrapAPIError(err, resp, http.MethodGet, fmt.Sprintf("repos/%s/%s/contents/%s", owner, repo, path))
	}
	return true, nil
}

// FetchTemplate downloads a file body as raw bytes. The call is anonymous when the
// source carries no token.
func (x *Client) FetchTemplate(ctx context.Context, src *model.TemplateSource) ([]byte, error) {
	client := x.tokenClient(src.Token)

	target := fmt.Sprintf("repos/%s/%s/contents/%s", src.Owner, src.Repo, strings.TrimPrefix(src.Path, "/"))
	if src.Ref != "" {
		target += "?ref=" + url.QueryEscape(src.Ref)
	}

	req, err := client.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build template request", goerr.V("target", target))
	}
	req.Header.Set("Accept", rawMediaType)

	var buf bytes.Buffer
	resp, err := client.Do(ctx, req, &buf)
	if err != nil {
		return nil, wrapAPIError(err, resp, http.MethodGet, target)
	}

	logging.From(ctx).Info("Fetched workflow template",
		slog.String("source", src.Owner+"/"+src.Repo+"/"+src.Path),
		slog.String("ref", src.Ref),
		slog.Int("size", buf.Len()),
	)

	return buf.Bytes(), nil
}

func (x *Client) CreateBranch(ctx context.Context, token types.InstallationToken, owner, repo string, branch types.BranchName, sha types.CommitSHA) error {
	ref := &github.Reference{
		Ref:    github.String("refs/heads/" + string(branch)),
		Object: &github.GitObject{SHA: github.String(string(sha))},
	}
	if _, resp, err := x.tokenClient(token).Git.CreateRef(ctx, owner, repo, ref); err != nil {
		return wrapAPIError(err, resp, http.MethodPost, fmt.Sprintf("repos/%s/%s/git/refs", owner, repo))
	}
	return nil
}

func (x *Client) PutFile(ctx context.Context, token types.InstallationToken, input *model.PutFileInput) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(input.Message),
		Content: input.Content,
		Branch:  github.String(string(input.Branch)),
	}
	if _, resp, err := x.tokenClient(token).Repositories.CreateFile(ctx, input.Owner, input.Repo, input.Path, opts); err != nil {
		return wrapAPIError(err, resp, http.MethodPut, fmt.Sprintf("repos/%s/%s/contents/%s", input.Owner, input.Repo, input.Path))
	}
	return nil
}

func (x *Client) DeleteBranch(ctx context.Context, token types.InstallationToken, owner, repo string, branch types.BranchName) error {
	if resp, err := x.tokenClient(token).Git.DeleteRef(ctx, owner, repo, "heads/"+string(branch)); err != nil {
		return wrapAPIError(err, resp, http.MethodDelete, fmt.Sprintf("repos/%s/%s/git/refs/heads/%s", owner, repo, branch))
	}
	return nil
}

func (x *Client) CreatePullRequest(ctx context.Context, token types.InstallationToken, input *model.NewPullRequestInput) (int, error) {
	newPR := &github.NewPullRequest{
		Title: github.String(input.Title),
		Head:  github.String(string(input.Head)),
		Base:  github.String(string(input.Base)),
		Body:  github.String(input.Body),
	}
	pr, resp, err := x.tokenClient(token).PullRequests.Create(ctx, input.Owner, input.Repo, newPR)
	if err != nil {
		return 0, wrapAPIError(err, resp, http.MethodPost, fmt.Sprintf("repos/%s/%s/pulls", input.Owner, input.Repo))
	}

	logging.From(ctx).Info("Created pull request",
		slog.String("repo", input.Owner+"/"+input.Repo),
		slog.Int("number", pr.GetNumber()),
		slog.String("head", string(input.Head)),
		slog.String("base", string(input.Base)),
	)
	return pr.GetNumber(), nil
}

func (x *Client) ListOpenPullRequests(ctx context.Context, token types.InstallationToken, owner, repo string) ([]*model.PullRequest, error) {
	client := x.tokenClient(token)
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var prs []*model.PullRequest
	for {
		page, resp, err := client.PullRequests.List(ctx, owner, repo, opts)
		if err != nil {
			return nil, wrapAPIError(err, resp, http.MethodGet, fmt.Sprintf("repos/%s/%s/pulls", owner, repo))
		}

		for _, pr := range page {
			prs = append(prs, &model.PullRequest{
				Number:    pr.GetNumber(),
				Title:     pr.GetTitle(),
				CreatedAt: pr.GetCreatedAt().Time,
				HeadRef:   types.BranchName(pr.GetHead().GetRef()),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return prs, nil
}

func (x *Client) ClosePullRequest(ctx context.Context, token types.InstallationToken, owner, repo string, number int) error {
	update := &github.PullRequest{State: github.String("closed")}
	if _, resp, err := x.tokenClient(token).PullRequests.Edit(ctx, owner, repo, number, update); err != nil {
		return wrapAPIError(err, resp, http.MethodPatch, fmt.Sprintf("repos/%s/%s/pulls/%d", owner, repo, number))
	}
	return nil
}
