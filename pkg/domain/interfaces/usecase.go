package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
)

type UseCase interface {
	HandleWebhook(ctx context.Context, delivery *model.WebhookDelivery) (types.WebhookOutcome, error)
	ProvisionRepositories(ctx context.Context, installID types.GitHubAppInstallID, repos []model.RepoRef) error

	RunAdvisor(ctx context.Context) error
	TriggerAdvisor(ctx context.Context)

	ListOrgStatuses(ctx context.Context) ([]*model.OrgStatusEntry, error)
	ListRepos(ctx context.Context, org string) ([]string, error)
}
