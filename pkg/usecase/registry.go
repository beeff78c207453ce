package usecase

import (
	"context"

	"github.com/javagrunt/javagrunt/pkg/domain/model"
)

func (x *UseCase) ListOrgStatuses(ctx context.Context) ([]*model.OrgStatusEntry, error) {
	return x.clients.Registry().ListOrgStatuses(ctx)
}

func (x *UseCase) ListRepos(ctx context.Context, org string) ([]string, error) {
	return x.clients.Registry().ListRepos(ctx, org)
}
