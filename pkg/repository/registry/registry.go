package registry

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/javagrunt/javagrunt/pkg/domain/interfaces"
	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

const (
	KeyOrgs          = "javagrunt:orgs"
	KeyInstallations = "javagrunt:installations"
	KeyWebhooks      = "javagrunt:webhooks"
)

// RepoSetKey returns the key of the repository set of org
func RepoSetKey(org string) string {
	return "javagrunt:org:" + org + ":repos"
}

// Registry implements OrgRegistry and WebhookLog on top of a KVStore
type Registry struct {
	store interfaces.KVStore
}

var (
	_ interfaces.OrgRegistry = (*Registry)(nil)
	_ interfaces.WebhookLog  = (*Registry)(nil)
)

func New(store interfaces.KVStore) *Registry {
	return &Registry{store: store}
}

func validateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return goerr.Wrap(repository.ErrInvalidInput, kind+" is empty")
	}
	return nil
}

// AddOrg registers org as active. An org marked deleted becomes active again.
func (x *Registry) AddOrg(ctx context.Context, org string) error {
	return x.SetOrgStatus(ctx, org, types.OrgStatusActive)
}

// AddRepo marks org active and adds repo to its repository set
func (x *Registry) AddRepo(ctx context.Context, org, repo string) error {
	if err := validateName("repo", repo); err != nil {
		return err
	}
	if err := x.AddOrg(ctx, org); err != nil {
		return err
	}
	if err := x.store.SAdd(ctx, RepoSetKey(org), repo); err != nil {
		return goerr.Wrap(err, "failed to add repo", goerr.V("org", org), goerr.V("repo", repo))
	}
	return nil
}

func (x *Registry) SetOrgStatus(ctx context.Context, org string, status types.OrgStatus) error {
	if err := validateName("org", org); err != nil {
		return err
	}
	if err := x.store.HSet(ctx, KeyOrgs, org, string(status)); err != nil {
		return goerr.Wrap(err, "failed to set org status", goerr.V("org", org), goerr.V("status", status))
	}
	return nil
}

func (x *Registry) SetInstallationID(ctx context.Context, org string, id types.GitHubAppInstallID) error {
	if err := validateName("org", org); err != nil {
		return err
	}
	if id <= 0 {
		return goerr.Wrap(repository.ErrInvalidInput, "installation ID must be positive", goerr.V("id", id))
	}
	if err := x.store.HSet(ctx, KeyInstallations, org, strconv.FormatInt(int64(id), 10)); err != nil {
		return goerr.Wrap(err, "failed to set installation ID", goerr.V("org", org))
	}
	return nil
}

// GetInstallationID returns false when no installation is recorded or the
// recorded value is not a positive integer.
func (x *Registry) GetInstallationID(ctx context.Context, org string) (types.GitHubAppInstallID, bool, error) {
	v, found, err := x.store.HGet(ctx, KeyInstallations, org)
	if err != nil {
		return 0, false, goerr.Wrap(err, "failed to get installation ID", goerr.V("org", org))
	}
	if !found {
		return 0, false, nil
	}

	id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || id <= 0 {
		return 0, false, nil
	}
	return types.GitHubAppInstallID(id), true, nil
}

func (x *Registry) ListOrgs(ctx context.Context) ([]string, error) {
	orgs, err := x.store.HGetAll(ctx, KeyOrgs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list orgs")
	}

	out := make([]string, 0, len(orgs))
	for org := range orgs {
		out = append(out, org)
	}
	sort.Strings(out)
	return out, nil
}

func (x *Registry) ListRepos(ctx context.Context, org string) ([]string, error) {
	repos, err := x.store.SMembers(ctx, RepoSetKey(org))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repos", goerr.V("org", org))
	}
	sort.Strings(repos)
	return repos, nil
}

// ListOrgStatuses returns every org ordered case-insensitively. The status is
// normalized to either active or deleted.
func (x *Registry) ListOrgStatuses(ctx context.Context) ([]*model.OrgStatusEntry, error) {
	orgs, err := x.store.HGetAll(ctx, KeyOrgs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list org statuses")
	}

	out := make([]*model.OrgStatusEntry, 0, len(orgs))
	for org, status := range orgs {
		entry := &model.OrgStatusEntry{Org: org, Status: types.OrgStatusActive}
		if types.OrgStatus(status).Deleted() {
			entry.Status = types.OrgStatusDeleted
		}
		out = append(out, entry)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].Org), strings.ToLower(out[j].Org)
		if a != b {
			return a < b
		}
		return out[i].Org < out[j].Org
	})
	return out, nil
}

func (x *Registry) AppendWebhookLog(ctx context.Context, entry *model.WebhookLogEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal webhook log entry")
	}
	if err := x.store.LPush(ctx, KeyWebhooks, string(raw)); err != nil {
		return goerr.Wrap(err, "failed to append webhook log", goerr.V("delivery_id", entry.DeliveryID))
	}
	return nil
}

// ListWebhookLogs returns up to limit entries, newest first. A limit of zero
// or less returns all entries. Malformed entries are skipped.
func (x *Registry) ListWebhookLogs(ctx context.Context, limit int64) ([]*model.WebhookLogEntry, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = limit - 1
	}

	values, err := x.store.LRange(ctx, KeyWebhooks, 0, stop)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list webhook logs")
	}

	out := make([]*model.WebhookLogEntry, 0, len(values))
	for _, v := range values {
		var entry model.WebhookLogEntry
		if err := json.Unmarshal([]byte(v), &entry); err != nil {
			continue
		}
		out = append(out, &entry)
	}
	return out, nil
}
