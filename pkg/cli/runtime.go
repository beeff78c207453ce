package cli

import (
	"context"

	"github.com/javagrunt/javagrunt/pkg/cli/config"
	"github.com/javagrunt/javagrunt/pkg/infra"
	"github.com/javagrunt/javagrunt/pkg/repository/registry"
	"github.com/javagrunt/javagrunt/pkg/usecase"
)

// buildUseCase wires configuration into the use case. The returned closer
// releases the registry backend and is never nil.
func buildUseCase(ctx context.Context,
	githubApp *config.GitHubApp,
	template *config.Template,
	advisor *config.Advisor,
	store *config.Store,
	bigQuery *config.BigQuery,
) (*usecase.UseCase, func(), error) {
	ghClient, err := githubApp.NewClient(ctx)
	if err != nil {
		return nil, nil, err
	}

	kv, closeStore, err := store.NewStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	reg := registry.New(kv)

	infraOptions := append([]infra.Option{
		infra.WithGitHub(ghClient),
		infra.WithRegistry(reg),
		infra.WithWebhookLog(reg),
	}, advisor.InfraOptions()...)

	if bqClient, err := bigQuery.NewClient(ctx); err != nil {
		closeStore()
		return nil, nil, err
	} else if bqClient != nil {
		infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
	}

	clients := infra.New(infraOptions...)

	ucOptions := append([]usecase.Option{
		usecase.WithWebhookSecret(githubApp.Secret()),
	}, template.UseCaseOptions()...)
	ucOptions = append(ucOptions, advisor.UseCaseOptions()...)

	return usecase.New(clients, ucOptions...), closeStore, nil
}
