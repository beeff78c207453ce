package maven

import (
	"context"
	"log/slog"

	"github.com/javagrunt/javagrunt/pkg/domain/interfaces"
	"github.com/javagrunt/javagrunt/pkg/infra/command"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultWrapper      = "./mvnw"
	DefaultRecipeConfig = "https://raw.githubusercontent.com/dashaun-tanzu/openrewrite-recipes/refs/heads/main/MavenUpgradeSpringBootToLatestPatch.yaml"
	DefaultRecipe       = "com.dashaun.openrewrite.MavenUpgradeSpringBootToLatestPatch"

	rewriteGoal = "org.openrewrite.maven:rewrite-maven-plugin:run"
)

// Client runs the OpenRewrite patch upgrade recipe through the project's Maven wrapper.
type Client struct {
	executor     command.Executor
	wrapper      string
	recipeConfig string
	recipe       string
}

var _ interfaces.BuildTool = (*Client)(nil)

type Option func(*Client)

func WithWrapper(path string) Option {
	return func(x *Client) {
		x.wrapper = path
	}
}

func WithRecipe(configLocation, activeRecipe string) Option {
	return func(x *Client) {
		x.recipeConfig = configLocation
		x.recipe = activeRecipe
	}
}

func New(executor command.Executor, options ...Option) *Client {
	x := &Client{
		executor:     executor,
		wrapper:      DefaultWrapper,
		recipeConfig: DefaultRecipeConfig,
		recipe:       DefaultRecipe,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *Client) ApplyPatchRecipe(ctx context.Context, dir string) error {
	_, err := x.executor.Execute(ctx, &command.Command{
		Path: x.wrapper,
		Args: []string{
			rewriteGoal,
			"-Drewrite.configLocation=" + x.recipeConfig,
			"-Drewrite.activeRecipes=" + x.recipe,
		},
		Dir: dir,
	})
	if err != nil {
		return goerr.Wrap(err, "patch upgrade recipe failed", goerr.V("dir", dir), goerr.V("recipe", x.recipe))
	}

	logging.From(ctx).Info("Applied patch upgrade recipe", slog.String("dir", dir), slog.String("recipe", x.recipe))
	return nil
}
