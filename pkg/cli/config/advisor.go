package config

import (
	"log/slog"
	"time"

	"github.com/javagrunt/javagrunt/pkg/infra"
	"github.com/javagrunt/javagrunt/pkg/infra/advisor"
	"github.com/javagrunt/javagrunt/pkg/infra/command"
	"github.com/javagrunt/javagrunt/pkg/infra/git"
	"github.com/javagrunt/javagrunt/pkg/infra/maven"
	"github.com/javagrunt/javagrunt/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Advisor configures the upgrade cycle and the external tools it drives
type Advisor struct {
	path           string
	workspace      string
	cleanupDays    int
	mappingGitURI  string
	mappingGitPath string
	gitHost        string
	recipeConfig   string
	recipe         string
	commandTimeout time.Duration
	workers        int
	keepWorkspace  bool
}

func (x *Advisor) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "advisor-path",
			Usage:       "Path to the advisor binary",
			Category:    "Advisor",
			Destination: &x.path,
			Sources:     cli.EnvVars("JAVAGRUNT_ADVISOR_PATH"),
			Value:       advisor.DefaultPath,
		},
		&cli.StringFlag{
			Name:        "advisor-workspace",
			Usage:       "Root directory for repository clones",
			Category:    "Advisor",
			Destination: &x.workspace,
			Sources:     cli.EnvVars("JAVAGRUNT_ADVISOR_WORKSPACE"),
			Value:       usecase.DefaultWorkspace,
		},
		&cli.IntFlag{
			Name:        "pr-cleanup-days",
			Usage:       "[Auto] pull requests older than this many days are closed",
			Category:    "Advisor",
			Destination: &x.cleanupDays,
			Sources:     cli.EnvVars("JAVAGRUNT_PR_CLEANUP_DAYS"),
			Value:       usecase.DefaultPRCleanupDays,
		},
		&cli.StringFlag{
			Name:        "advisor-mapping-git-uri",
			Usage:       "Git URI of the custom advisor mappings",
			Category:    "Advisor",
			Destination: &x.mappingGitURI,
			Sources:     cli.EnvVars("JAVAGRUNT_ADVISOR_MAPPING_GIT_URI"),
			Value:       advisor.DefaultMappingGitURI,
		},
		&cli.StringFlag{
			Name:        "advisor-mapping-git-path",
			Usage:       "Path of the mappings inside the mapping repository",
			Category:    "Advisor",
			Destination: &x.mappingGitPath,
			Sources:     cli.EnvVars("JAVAGRUNT_ADVISOR_MAPPING_GIT_PATH"),
			Value:       advisor.DefaultMappingGitPath,
		},
		&cli.StringFlag{
			Name:        "git-host",
			Usage:       "Host used for clone and push URLs",
			Category:    "Advisor",
			Destination: &x.gitHost,
			Sources:     cli.EnvVars("JAVAGRUNT_GIT_HOST"),
			Value:       usecase.DefaultGitHost,
		},
		&cli.StringFlag{
			Name:        "patch-recipe-config",
			Usage:       "Location of the OpenRewrite patch recipe configuration",
			Category:    "Advisor",
			Destination: &x.recipeConfig,
			Sources:     cli.EnvVars("JAVAGRUNT_PATCH_RECIPE_CONFIG"),
			Value:       maven.DefaultRecipeConfig,
		},
		&cli.StringFlag{
			Name:        "patch-recipe",
			Usage:       "Active OpenRewrite recipe for patch upgrades",
			Category:    "Advisor",
			Destination: &x.recipe,
			Sources:     cli.EnvVars("JAVAGRUNT_PATCH_RECIPE"),
			Value:       maven.DefaultRecipe,
		},
		&cli.DurationFlag{
			Name:        "command-timeout",
			Usage:       "Deadline for each external command",
			Category:    "Advisor",
			Destination: &x.commandTimeout,
			Sources:     cli.EnvVars("JAVAGRUNT_COMMAND_TIMEOUT"),
			Value:       command.DefaultTimeout,
		},
		&cli.IntFlag{
			Name:        "advisor-workers",
			Usage:       "Number of repositories processed concurrently",
			Category:    "Advisor",
			Destination: &x.workers,
			Sources:     cli.EnvVars("JAVAGRUNT_ADVISOR_WORKERS"),
			Value:       usecase.DefaultAdvisorWorkers,
		},
		&cli.BoolFlag{
			Name:        "keep-workspace",
			Usage:       "Keep repository clones after each run",
			Category:    "Advisor",
			Destination: &x.keepWorkspace,
			Sources:     cli.EnvVars("JAVAGRUNT_KEEP_WORKSPACE"),
		},
	}
}

// InfraOptions builds the git, advisor and Maven clients on a shared runner
func (x *Advisor) InfraOptions() []infra.Option {
	runner := command.New(command.WithTimeout(x.commandTimeout))
	return []infra.Option{
		infra.WithGit(git.New(runner)),
		infra.WithAdvisor(advisor.New(runner,
			advisor.WithPath(x.path),
			advisor.WithMapping(x.mappingGitURI, x.mappingGitPath),
		)),
		infra.WithBuildTool(maven.New(runner,
			maven.WithRecipe(x.recipeConfig, x.recipe),
		)),
	}
}

func (x *Advisor) UseCaseOptions() []usecase.Option {
	return []usecase.Option{
		usecase.WithWorkspace(x.workspace),
		usecase.WithKeepWorkspace(x.keepWorkspace),
		usecase.WithPRCleanupDays(x.cleanupDays),
		usecase.WithGitHost(x.gitHost),
		usecase.WithAdvisorWorkers(x.workers),
	}
}

func (x Advisor) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
		slog.String("workspace", x.workspace),
		slog.Int("cleanupDays", x.cleanupDays),
		slog.String("mappingGitURI", x.mappingGitURI),
		slog.String("mappingGitPath", x.mappingGitPath),
		slog.String("gitHost", x.gitHost),
		slog.String("recipe", x.recipe),
		slog.Duration("commandTimeout", x.commandTimeout),
		slog.Int("workers", x.workers),
		slog.Bool("keepWorkspace", x.keepWorkspace),
	)
}
