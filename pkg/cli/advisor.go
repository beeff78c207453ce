package cli

import (
	"context"
	"log/slog"

	"github.com/javagrunt/javagrunt/pkg/cli/config"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func advisorCommand() *cli.Command {
	var (
		githubApp config.GitHubApp
		template  config.Template
		advisor   config.Advisor
		store     config.Store
		bigQuery  config.BigQuery
		sentry    config.Sentry
	)

	return &cli.Command{
		Name:    "advisor",
		Aliases: []string{"a"},
		Usage:   "Run one advisor cycle over all registered organizations and exit",
		Flags: slice.Flatten(
			githubApp.Flags(),
			template.Flags(),
			advisor.Flags(),
			store.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting advisor cycle",
				slog.Any("GitHubApp", githubApp),
				slog.Any("Advisor", advisor),
				slog.Any("Store", store),
				slog.Any("BigQuery", bigQuery),
			)

			if err := githubApp.Validate(false); err != nil {
				return err
			}
			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			uc, closeStore, err := buildUseCase(ctx, &githubApp, &template, &advisor, &store, &bigQuery)
			if err != nil {
				return err
			}
			defer closeStore()

			return uc.RunAdvisor(ctx)
		},
	}
}
