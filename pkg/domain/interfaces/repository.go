package interfaces

import (
	"context"

	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
)

//go:generate moq -out ../mock/repository.go -pkg mock . KVStore OrgRegistry WebhookLog

// KVStore is the storage primitive behind the registry: single-field hashes,
// unordered string sets and prepend-only lists.
type KVStore interface {
	HSet(ctx context.Context, key, field, value string) error
	// HGet returns false when the field does not exist.
	HGet(ctx context.Context, key, field string) (string, bool, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	SAdd(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)

	LPush(ctx context.Context, key string, values ...string) error
	// LRange follows redis semantics: inclusive indexes, negative counts from the tail.
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// OrgRegistry records organizations, their status and installation, and the
// repositories granted to the App.
type OrgRegistry interface {
	AddOrg(ctx context.Context, org string) error
	AddRepo(ctx context.Context, org, repo string) error
	SetOrgStatus(ctx context.Context, org string, status types.OrgStatus) error
	SetInstallationID(ctx context.Context, org string, id types.GitHubAppInstallID) error
	GetInstallationID(ctx context.Context, org string) (types.GitHubAppInstallID, bool, error)

	ListOrgs(ctx context.Context) ([]string, error)
	ListRepos(ctx context.Context, org string) ([]string, error)
	ListOrgStatuses(ctx context.Context) ([]*model.OrgStatusEntry, error)
}

// WebhookLog keeps every received delivery, newest first.
type WebhookLog interface {
	AppendWebhookLog(ctx context.Context, entry *model.WebhookLogEntry) error
	ListWebhookLogs(ctx context.Context, limit int64) ([]*model.WebhookLogEntry, error)
}
