package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/javagrunt/javagrunt/pkg/domain/mock"
	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/infra"
	"github.com/javagrunt/javagrunt/pkg/repository/memory"
	"github.com/javagrunt/javagrunt/pkg/repository/registry"
	"github.com/javagrunt/javagrunt/pkg/usecase"
	"github.com/m-mizutani/gt"
)

const testSecret = "It's a Secret to Everybody"

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"action":"created"}`)
	good := sign(testSecret, body)

	flip := func(s string, i int) string {
		b := []byte(s)
		if b[i] == '0' {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
		return string(b)
	}
	flipCase := func(s string) string {
		b := []byte(s)
		for i := len("sha256="); i < len(b); i++ {
			if b[i] >= 'a' && b[i] <= 'f' {
				b[i] ^= 0x20
				break
			}
		}
		return string(b)
	}

	testCases := map[string]struct {
		signature string
		expect    bool
	}{
		"valid":                   {signature: good, expect: true},
		"first digest byte wrong": {signature: flip(good, len("sha256=")), expect: false},
		"last digest byte wrong":  {signature: flip(good, len(good)-1), expect: false},
		"truncated":               {signature: good[:len(good)-2], expect: false},
		"extended":                {signature: good + "00", expect: false},
		"missing prefix":          {signature: strings.TrimPrefix(good, "sha256="), expect: false},
		"sha1 prefix":             {signature: "sha1=" + strings.TrimPrefix(good, "sha256="), expect: false},
		"empty":                   {signature: "", expect: false},
		"not hex":                 {signature: "sha256=zz", expect: false},

		"upper-case digest":                  {signature: "sha256=" + strings.ToUpper(strings.TrimPrefix(good, "sha256=")), expect: false},
		"case bit of one hex letter flipped": {signature: flipCase(good), expect: false},
	}

	for title, tc := range testCases {
		t.Run(title, func(t *testing.T) {
			gt.V(t, usecase.VerifySignatureForTest(testSecret, body, tc.signature)).Equal(tc.expect)
		})
	}

	t.Run("different secret", func(t *testing.T) {
		gt.False(t, usecase.VerifySignatureForTest("other", body, good))
	})

	t.Run("known vector", func(t *testing.T) {
		// Example from the GitHub webhook documentation
		gt.True(t, usecase.VerifySignatureForTest(
			"It's a Secret to Everybody",
			[]byte("Hello, World!"),
			"sha256=757107ea0eb2509fc211221cce984b8a37570b6d7586c22c46f4379c8b043e17",
		))
	})
}

type webhookFixture struct {
	uc    *usecase.UseCase
	reg   *registry.Registry
	calls *callLog
	gh    *mock.GitHubMock
}

func newWebhookFixture(t *testing.T, secret string) *webhookFixture {
	t.Helper()
	calls := &callLog{}
	reg := registry.New(memory.New())
	gh := newGitHubMock(calls)

	uc := usecase.New(infra.New(
		infra.WithGitHub(gh),
		infra.WithRegistry(reg),
		infra.WithWebhookLog(reg),
	),
		usecase.WithWebhookSecret(types.GitHubAppSecret(secret)),
		usecase.WithTemplate(model.TemplateSource{
			Owner: "dashaun-cloud",
			Repo:  "github-shared-pipelines",
			Path:  ".github/workflows/ci.yml",
			Ref:   "main",
		}),
	)
	return &webhookFixture{uc: uc, reg: reg, calls: calls, gh: gh}
}

func (x *webhookFixture) deliver(t *testing.T, event string, body []byte) (types.WebhookOutcome, error) {
	t.Helper()
	return x.uc.HandleWebhook(testContext(), &model.WebhookDelivery{
		Event:      event,
		DeliveryID: "delivery-1",
		Signature:  sign(testSecret, body),
		Body:       body,
	})
}

func TestHandleWebhookInvalidSignature(t *testing.T) {
	fx := newWebhookFixture(t, testSecret)
	ctx := testContext()

	body := []byte(`{"action":"created","installation":{"id":1,"account":{"login":"acme"}}}`)
	outcome, err := fx.uc.HandleWebhook(ctx, &model.WebhookDelivery{
		Event:      "installation",
		DeliveryID: "bad-1",
		Signature:  sign("wrong", body),
		Body:       body,
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrSignatureInvalid))
	gt.V(t, outcome).Equal(types.WebhookOutcome(""))

	// The delivery is logged even though it was rejected
	logs, err := fx.reg.ListWebhookLogs(ctx, 0)
	gt.NoError(t, err)
	gt.V(t, len(logs)).Equal(1)
	gt.V(t, logs[0].DeliveryID).Equal("bad-1")
	gt.False(t, logs[0].SignatureValid)
	gt.V(t, logs[0].Payload).Equal(string(body))
	gt.True(t, logs[0].ReceivedAt.Equal(testNow))

	// Nothing else happened
	orgs, err := fx.reg.ListOrgs(ctx)
	gt.NoError(t, err)
	gt.V(t, len(orgs)).Equal(0)
	gt.V(t, len(fx.calls.list())).Equal(0)
}

func TestHandleWebhookIgnoresOtherEvents(t *testing.T) {
	fx := newWebhookFixture(t, testSecret)

	outcome, err := fx.deliver(t, "push", []byte(`{"ref":"refs/heads/main"}`))
	gt.NoError(t, err)
	gt.V(t, outcome).Equal(types.WebhookIgnored)

	logs, err := fx.reg.ListWebhookLogs(testContext(), 0)
	gt.NoError(t, err)
	gt.V(t, len(logs)).Equal(1)
	gt.True(t, logs[0].SignatureValid)
	gt.V(t, logs[0].Event).Equal("push")
}

func TestHandleWebhookIgnoresOtherActions(t *testing.T) {
	fx := newWebhookFixture(t, testSecret)

	outcome, err := fx.deliver(t, "installation", []byte(`{"action":"suspend","installation":{"id":1,"account":{"login":"acme"}}}`))
	gt.NoError(t, err)
	gt.V(t, outcome).Equal(types.WebhookIgnored)

	orgs, err := fx.reg.ListOrgs(testContext())
	gt.NoError(t, err)
	gt.V(t, len(orgs)).Equal(0)
}

func TestHandleWebhookMalformedPayload(t *testing.T) {
	fx := newWebhookFixture(t, testSecret)

	_, err := fx.deliver(t, "installation", []byte(`{"action":`))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidGitHubData))
}

func TestHandleWebhookMissingInstallationID(t *testing.T) {
	fx := newWebhookFixture(t, testSecret)

	_, err := fx.deliver(t, "installation", []byte(`{
		"action": "created",
		"installation": {"account": {"login": "acme"}},
		"repositories": [{"name": "web", "full_name": "acme/web"}]
	}`))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidGitHubData))
	gt.V(t, len(fx.gh.CreateInstallationTokenCalls())).Equal(0)
}

func TestHandleWebhookDeleted(t *testing.T) {
	fx := newWebhookFixture(t, testSecret)
	ctx := testContext()
	gt.NoError(t, fx.reg.AddRepo(ctx, "acme", "web"))

	outcome, err := fx.deliver(t, "installation", []byte(`{"action":"deleted","installation":{"id":7,"account":{"login":"acme"}}}`))
	gt.NoError(t, err)
	gt.V(t, outcome).Equal(types.WebhookOK)

	statuses, err := fx.reg.ListOrgStatuses(ctx)
	gt.NoError(t, err)
	gt.V(t, statuses).Equal([]*model.OrgStatusEntry{{Org: "acme", Status: types.OrgStatusDeleted}})

	t.Run("blank login changes nothing", func(t *testing.T) {
		outcome, err := fx.deliver(t, "installation", []byte(`{"action":"deleted","installation":{"id":7,"account":{"login":"  "}}}`))
		gt.NoError(t, err)
		gt.V(t, outcome).Equal(types.WebhookOK)

		orgs, err := fx.reg.ListOrgs(ctx)
		gt.NoError(t, err)
		gt.V(t, orgs).Equal([]string{"acme"})
	})
}

func TestHandleWebhookCreated(t *testing.T) {
	fx := newWebhookFixture(t, testSecret)
	ctx := testContext()

	body, err := json.Marshal(map[string]any{
		"action": "created",
		"installation": map[string]any{
			"id":      4242,
			"account": map[string]any{"login": "acme"},
		},
		"repositories": []any{
			map[string]any{"name": "web", "full_name": "acme/web"},
			map[string]any{"name": "", "full_name": "acme/"},
			map[string]any{"name": "orphan"},
			map[string]any{"name": "api", "full_name": "acme/api", "owner": map[string]any{"login": "acme"}},
		},
	})
	gt.NoError(t, err)

	outcome, err := fx.deliver(t, "installation", body)
	gt.NoError(t, err)
	gt.V(t, outcome).Equal(types.WebhookOK)

	// One token and one template fetch for the whole batch, then each repo in order
	gt.V(t, fx.calls.list()).Equal([]string{
		"token",
		"template",
		"exists:web", "default_branch:web", "sha:web", "create_branch:web", "put_file:web", "create_pr:web",
		"exists:api", "default_branch:api", "sha:api", "create_branch:api", "put_file:api", "create_pr:api",
	})
	gt.V(t, fx.gh.CreateInstallationTokenCalls()[0].InstallID).Equal(types.GitHubAppInstallID(4242))

	id, found, err := fx.reg.GetInstallationID(ctx, "acme")
	gt.NoError(t, err)
	gt.True(t, found)
	gt.V(t, id).Equal(types.GitHubAppInstallID(4242))

	repos, err := fx.reg.ListRepos(ctx, "acme")
	gt.NoError(t, err)
	gt.V(t, repos).Equal([]string{"api", "web"})

	// Template fetched with the installation token since no dedicated token is set
	src := fx.gh.FetchTemplateCalls()[0].Src
	gt.V(t, src.Token).Equal(types.InstallationToken("ghs_test_token"))
	gt.V(t, src.Ref).Equal("main")
}

func TestHandleWebhookRepositoriesAdded(t *testing.T) {
	fx := newWebhookFixture(t, testSecret)
	ctx := testContext()

	outcome, err := fx.deliver(t, "installation", []byte(`{
		"action": "repositories_added",
		"installation": {"id": 99, "account": {"login": "acme"}},
		"repositories_added": [{"name": "svc", "full_name": "other-owner/svc"}]
	}`))
	gt.NoError(t, err)
	gt.V(t, outcome).Equal(types.WebhookOK)

	// The repo is registered under the owner from full_name
	repos, err := fx.reg.ListRepos(ctx, "other-owner")
	gt.NoError(t, err)
	gt.V(t, repos).Equal([]string{"svc"})
}

func TestHandleWebhookCreatedWithoutRepositories(t *testing.T) {
	fx := newWebhookFixture(t, testSecret)
	ctx := testContext()

	outcome, err := fx.deliver(t, "installation", []byte(`{"action":"created","installation":{"id":5,"account":{"login":"acme"}}}`))
	gt.NoError(t, err)
	gt.V(t, outcome).Equal(types.WebhookOK)
	gt.V(t, len(fx.calls.list())).Equal(0)

	statuses, err := fx.reg.ListOrgStatuses(ctx)
	gt.NoError(t, err)
	gt.V(t, statuses).Equal([]*model.OrgStatusEntry{{Org: "acme", Status: types.OrgStatusActive}})
}

func TestHandleWebhookWithoutSecret(t *testing.T) {
	fx := newWebhookFixture(t, "")

	outcome, err := fx.uc.HandleWebhook(testContext(), &model.WebhookDelivery{
		Event: "ping",
		Body:  []byte(`{}`),
	})
	gt.NoError(t, err)
	gt.V(t, outcome).Equal(types.WebhookIgnored)

	logs, err := fx.reg.ListWebhookLogs(testContext(), 0)
	gt.NoError(t, err)
	gt.True(t, logs[0].SignatureValid)
}

func TestHandleWebhookLogFailureDoesNotBlock(t *testing.T) {
	webhookLog := &mock.WebhookLogMock{
		AppendWebhookLogFunc: func(ctx context.Context, entry *model.WebhookLogEntry) error {
			return errors.New("store down")
		},
	}
	uc := usecase.New(infra.New(
		infra.WithRegistry(registry.New(memory.New())),
		infra.WithWebhookLog(webhookLog),
	), usecase.WithWebhookSecret(testSecret))

	body := []byte(`{"zen":"hello"}`)
	outcome, err := uc.HandleWebhook(testContext(), &model.WebhookDelivery{
		Event:     "ping",
		Signature: sign(testSecret, body),
		Body:      body,
	})
	gt.NoError(t, err)
	gt.V(t, outcome).Equal(types.WebhookIgnored)
	gt.V(t, len(webhookLog.AppendWebhookLogCalls())).Equal(1)
}
