package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/javagrunt/javagrunt/pkg/cli/config"
	"github.com/javagrunt/javagrunt/pkg/controller/scheduler"
	"github.com/javagrunt/javagrunt/pkg/controller/server"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		githubApp config.GitHubApp
		template  config.Template
		advisor   config.Advisor
		store     config.Store
		bigQuery  config.BigQuery
		schedule  config.Schedule
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("JAVAGRUNT_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			githubApp.Flags(),
			template.Flags(),
			advisor.Flags(),
			store.Flags(),
			bigQuery.Flags(),
			schedule.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHubApp", githubApp),
				slog.Any("Template", template),
				slog.Any("Advisor", advisor),
				slog.Any("Store", store),
				slog.Any("BigQuery", bigQuery),
				slog.Any("Schedule", schedule),
				slog.Any("Sentry", sentry),
			)

			if err := githubApp.Validate(true); err != nil {
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

			var sched *scheduler.Scheduler
			if schedule.Enabled() {
				s, err := scheduler.New(uc, schedule.Spec())
				if err != nil {
					return err
				}
				sched = s
				sched.Start(ctx)
			} else {
				logging.Default().Warn("advisor schedule is disabled, use /runall to start a cycle")
			}

			s := server.New(uc)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      5 * time.Minute,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				if sched != nil {
					sched.Stop(ctx)
				}
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if sched != nil {
					sched.Stop(ctx)
				}
				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
