package ghapp_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/infra/credential"
	"github.com/javagrunt/javagrunt/pkg/infra/ghapp"
	"github.com/m-mizutani/gt"
)

type fakeSigner struct{}

func (fakeSigner) Sign(_ jwt.Claims) (string, error) { return "app-jwt", nil }

const token = types.InstallationToken("ghs_installation")

func newClient(t *testing.T, mux *http.ServeMux) *ghapp.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return gt.R1(ghapp.New(1, fakeSigner{}, ghapp.WithBaseURL(srv.URL))).NoError(t)
}

func assertAPIHeaders(t *testing.T, r *http.Request, auth string) {
	t.Helper()
	gt.V(t, r.Header.Get("Authorization")).Equal(auth)
	gt.V(t, r.Header.Get("X-GitHub-Api-Version")).Equal("2022-11-28")
	gt.V(t, r.Header.Get("User-Agent")).Equal("javagrunt-github-app")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNew(t *testing.T) {
	t.Run("valid inputs", func(t *testing.T) {
		_, err := ghapp.New(12345, fakeSigner{})
		gt.NoError(t, err)
	})

	t.Run("zero app ID fails", func(t *testing.T) {
		client, err := ghapp.New(0, fakeSigner{})
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("nil signer fails", func(t *testing.T) {
		_, err := ghapp.New(1, nil)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("invalid base URL fails", func(t *testing.T) {
		_, err := ghapp.New(1, fakeSigner{}, ghapp.WithBaseURL("://bad"))
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestCreateInstallationToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /app/installations/42/access_tokens", func(w http.ResponseWriter, r *http.Request) {
		assertAPIHeaders(t, r, "Bearer app-jwt")
		writeJSON(w, http.StatusCreated, map[string]any{"token": "ghs_new", "expires_at": "2030-01-01T00:00:00Z"})
	})
	mux.HandleFunc("POST /app/installations/43/access_tokens", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Not Found"})
	})
	client := newClient(t, mux)

	got := gt.R1(client.CreateInstallationToken(context.Background(), 42)).NoError(t)
	gt.V(t, got.Raw()).Equal("ghs_new")

	_, err := client.CreateInstallationToken(context.Background(), 43)
	pe, ok := types.AsPlatformError(err)
	gt.True(t, ok)
	gt.V(t, pe.StatusCode).Equal(http.StatusNotFound)
	gt.V(t, pe.Target).Equal("POST app/installations/43/access_tokens")
}

func TestRepositoryReads(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/web", func(w http.ResponseWriter, r *http.Request) {
		assertAPIHeaders(t, r, "Bearer ghs_installation")
		writeJSON(w, http.StatusOK, map[string]any{"name": "web", "default_branch": "trunk"})
	})
	mux.HandleFunc("GET /repos/acme/bare", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"name": "bare"})
	})
	mux.HandleFunc("GET /repos/acme/web/git/ref/heads/trunk", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ref":    "refs/heads/trunk",
			"object": map[string]any{"sha": "abc123", "type": "commit"},
		})
	})
	client := newClient(t, mux)
	ctx := context.Background()

	branch := gt.R1(client.GetDefaultBranch(ctx, token, "acme", "web")).NoError(t)
	gt.V(t, branch).Equal(types.BranchName("trunk"))

	branch = gt.R1(client.GetDefaultBranch(ctx, token, "acme", "bare")).NoError(t)
	gt.V(t, branch).Equal(types.BranchName("main"))

	sha := gt.R1(client.GetBranchSHA(ctx, token, "acme", "web", "trunk")).NoError(t)
	gt.V(t, sha).Equal(types.CommitSHA("abc123"))
}

func TestContentExists(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/present/contents/.github/workflows/ci.yml", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"type": "file", "name": "ci.yml", "path": ".github/workflows/ci.yml"})
	})
	mux.HandleFunc("GET /repos/acme/absent/contents/.github/workflows/ci.yml", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Not Found"})
	})
	mux.HandleFunc("GET /repos/acme/broken/contents/.github/workflows/ci.yml", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]any{"message": "Resource not accessible by integration"})
	})
	client := newClient(t, mux)
	ctx := context.Background()
	path := ".github/workflows/ci.yml"

	gt.True(t, gt.R1(client.ContentExists(ctx, token, "acme", "present", path)).NoError(t))
	gt.False(t, gt.R1(client.ContentExists(ctx, token, "acme", "absent", path)).NoError(t))

	_, err := client.ContentExists(ctx, token, "acme", "broken", path)
	pe, ok := types.AsPlatformError(err)
	gt.True(t, ok)
	gt.V(t, pe.StatusCode).Equal(http.StatusForbidden)
}

func TestFetchTemplate(t *testing.T) {
	body := "name: CI\non: [push]\n"
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/dashaun-cloud/github-shared-pipelines/contents/.github/workflows/ci.yml", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Header.Get("Accept")).Equal("application/vnd.github.raw")
		gt.V(t, r.URL.Query().Get("ref")).Equal("main")
		if r.Header.Get("Authorization") != "" {
			gt.V(t, r.Header.Get("Authorization")).Equal("Bearer shared-token")
		}
		_, _ = io.WriteString(w, body)
	})
	client := newClient(t, mux)

	src := &model.TemplateSource{
		Owner: "dashaun-cloud",
		Repo:  "github-shared-pipelines",
		Path:  ".github/workflows/ci.yml",
		Ref:   "main",
	}
	got := gt.R1(client.FetchTemplate(context.Background(), src)).NoError(t)
	gt.V(t, string(got)).Equal(body)

	src.Token = "shared-token"
	got = gt.R1(client.FetchTemplate(context.Background(), src)).NoError(t)
	gt.V(t, string(got)).Equal(body)

	src.Path = "missing.yml"
	_, err := client.FetchTemplate(context.Background(), src)
	pe, ok := types.AsPlatformError(err)
	gt.True(t, ok)
	gt.V(t, pe.StatusCode).Equal(http.StatusNotFound)
}

func TestWrites(t *testing.T) {
	var (
		createdRef map[string]any
		putBody    map[string]any
		prBody     map[string]any
		closed     map[string]any
		deleted    bool
	)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/acme/web/git/refs", func(w http.ResponseWriter, r *http.Request) {
		assertAPIHeaders(t, r, "Bearer ghs_installation")
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&createdRef))
		writeJSON(w, http.StatusCreated, map[string]any{"ref": createdRef["ref"]})
	})
	mux.HandleFunc("PUT /repos/acme/web/contents/.github/workflows/ci.yml", func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&putBody))
		writeJSON(w, http.StatusCreated, map[string]any{"content": map[string]any{"name": "ci.yml"}})
	})
	mux.HandleFunc("POST /repos/acme/web/pulls", func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&prBody))
		writeJSON(w, http.StatusCreated, map[string]any{"number": 17})
	})
	mux.HandleFunc("PATCH /repos/acme/web/pulls/5", func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&closed))
		writeJSON(w, http.StatusOK, map[string]any{"number": 5, "state": "closed"})
	})
	mux.HandleFunc("DELETE /repos/acme/web/git/refs/heads/javagrunt/ci-1", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /repos/acme/locked/pulls", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"message": "Validation Failed"})
	})
	client := newClient(t, mux)
	ctx := context.Background()

	gt.NoError(t, client.CreateBranch(ctx, token, "acme", "web", "javagrunt/ci-1", "abc123"))
	gt.V(t, createdRef["ref"]).Equal("refs/heads/javagrunt/ci-1")
	gt.V(t, createdRef["sha"]).Equal("abc123")

	gt.NoError(t, client.PutFile(ctx, token, &model.PutFileInput{
		Owner:   "acme",
		Repo:    "web",
		Path:    ".github/workflows/ci.yml",
		Branch:  "javagrunt/ci-1",
		Message: "Add centralized CI workflow",
		Content: []byte("name: CI\n"),
	}))
	gt.V(t, putBody["message"]).Equal("Add centralized CI workflow")
	gt.V(t, putBody["branch"]).Equal("javagrunt/ci-1")
	gt.V(t, putBody["content"]).Equal(base64.StdEncoding.EncodeToString([]byte("name: CI\n")))

	number := gt.R1(client.CreatePullRequest(ctx, token, &model.NewPullRequestInput{
		Owner: "acme",
		Repo:  "web",
		Title: "Add centralized CI workflow",
		Body:  "body",
		Head:  "javagrunt/ci-1",
		Base:  "main",
	})).NoError(t)
	gt.V(t, number).Equal(17)
	gt.V(t, prBody["head"]).Equal("javagrunt/ci-1")
	gt.V(t, prBody["base"]).Equal("main")
	gt.V(t, prBody["title"]).Equal("Add centralized CI workflow")

	gt.NoError(t, client.ClosePullRequest(ctx, token, "acme", "web", 5))
	gt.V(t, closed["state"]).Equal("closed")

	gt.NoError(t, client.DeleteBranch(ctx, token, "acme", "web", "javagrunt/ci-1"))
	gt.True(t, deleted)

	_, err := client.CreatePullRequest(ctx, token, &model.NewPullRequestInput{Owner: "acme", Repo: "locked"})
	pe, ok := types.AsPlatformError(err)
	gt.True(t, ok)
	gt.V(t, pe.StatusCode).Equal(http.StatusUnprocessableEntity)
	gt.V(t, pe.Target).Equal("POST repos/acme/locked/pulls")
}

func TestListOpenPullRequests(t *testing.T) {
	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	var srvURL string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/web/pulls", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Query().Get("state")).Equal("open")
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page <= 1 {
			w.Header().Set("Link", fmt.Sprintf(`<%s/repos/acme/web/pulls?state=open&page=2>; rel="next"`, srvURL))
			writeJSON(w, http.StatusOK, []map[string]any{
				{"number": 1, "title": "[Auto] Spring Boot Patch Upgrade", "created_at": created, "head": map[string]any{"ref": "patch-upgrade-1"}},
			})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{
			{"number": 2, "title": "Feature", "created_at": created, "head": map[string]any{"ref": "feature"}},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	srvURL = srv.URL
	client := gt.R1(ghapp.New(1, fakeSigner{}, ghapp.WithBaseURL(srv.URL))).NoError(t)

	prs := gt.R1(client.ListOpenPullRequests(context.Background(), token, "acme", "web")).NoError(t)
	gt.A(t, prs).Length(2)
	gt.V(t, prs[0].Number).Equal(1)
	gt.V(t, prs[0].Title).Equal("[Auto] Spring Boot Patch Upgrade")
	gt.V(t, prs[0].HeadRef).Equal(types.BranchName("patch-upgrade-1"))
	gt.True(t, prs[0].CreatedAt.Equal(created))
	gt.V(t, prs[1].Number).Equal(2)
}

func TestCreateInstallationToken_Integration(t *testing.T) {
	appIDStr := os.Getenv("TEST_GITHUB_APP_ID")
	privateKey := os.Getenv("TEST_GITHUB_PRIVATE_KEY")
	installIDStr := os.Getenv("TEST_GITHUB_INSTALLATION_ID")
	if appIDStr == "" || privateKey == "" || installIDStr == "" {
		t.Skip("TEST_GITHUB_APP_ID, TEST_GITHUB_PRIVATE_KEY and TEST_GITHUB_INSTALLATION_ID must be set")
	}

	appID := gt.R1(strconv.ParseInt(appIDStr, 10, 64)).NoError(t)
	installID := gt.R1(strconv.ParseInt(installIDStr, 10, 64)).NoError(t)

	provider := credential.New(types.GitHubAppID(appID), credential.WithPrivateKey(types.GitHubAppPrivateKey(privateKey)))
	client := gt.R1(ghapp.New(types.GitHubAppID(appID), provider)).NoError(t)

	tok := gt.R1(client.CreateInstallationToken(context.Background(), types.GitHubAppInstallID(installID))).NoError(t)
	gt.V(t, tok.Raw()).NotEqual("")
}
