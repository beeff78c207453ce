package advisor

import (
	"context"
	"log/slog"
	"strings"

	"github.com/javagrunt/javagrunt/pkg/domain/interfaces"
	"github.com/javagrunt/javagrunt/pkg/infra/command"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultPath           = "/usr/local/bin/advisor"
	DefaultMappingGitURI  = "https://github.com/dashaun-tanzu/advisor-mappings.git"
	DefaultMappingGitPath = "mappings/"

	envMappingGitURI  = "SPRING_ADVISOR_MAPPING_CUSTOM_0_GIT_URI"
	envMappingGitPath = "SPRING_ADVISOR_MAPPING_CUSTOM_0_GIT_PATH"

	// NoUpgradePlans appears in "upgrade-plan get" output when only patch upgrades remain.
	NoUpgradePlans = "No upgrade plans available"
)

type Client struct {
	executor       command.Executor
	path           string
	mappingGitURI  string
	mappingGitPath string
}

var _ interfaces.Advisor = (*Client)(nil)

type Option func(*Client)

func WithPath(path string) Option {
	return func(x *Client) {
		x.path = path
	}
}

// WithMapping sets the custom mapping repository passed to every advisor call.
func WithMapping(gitURI, gitPath string) Option {
	return func(x *Client) {
		x.mappingGitURI = gitURI
		x.mappingGitPath = gitPath
	}
}

func New(executor command.Executor, options ...Option) *Client {
	x := &Client{
		executor:       executor,
		path:           DefaultPath,
		mappingGitURI:  DefaultMappingGitURI,
		mappingGitPath: DefaultMappingGitPath,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *Client) run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return x.executor.Execute(ctx, &command.Command{
		Path: x.path,
		Args: args,
		Dir:  dir,
		Env: []string{
			envMappingGitURI + "=" + x.mappingGitURI,
			envMappingGitPath + "=" + x.mappingGitPath,
		},
	})
}

func (x *Client) BuildConfig(ctx context.Context, dir string) error {
	if _, err := x.run(ctx, dir, "build-config", "get"); err != nil {
		return goerr.Wrap(err, "advisor build-config failed", goerr.V("dir", dir))
	}
	return nil
}

func (x *Client) GetUpgradePlan(ctx context.Context, dir string) (string, error) {
	out, err := x.run(ctx, dir, "upgrade-plan", "get")
	if err != nil {
		return "", goerr.Wrap(err, "advisor upgrade-plan get failed", goerr.V("dir", dir))
	}

	plan := string(out)
	logging.From(ctx).Debug("Got upgrade plan",
		slog.String("dir", dir),
		slog.Bool("patch_only", strings.Contains(plan, NoUpgradePlans)),
	)
	return plan, nil
}

func (x *Client) ApplyUpgradePlan(ctx context.Context, dir string) error {
	if _, err := x.run(ctx, dir, "upgrade-plan", "apply", "--push"); err != nil {
		return goerr.Wrap(err, "advisor upgrade-plan apply failed", goerr.V("dir", dir))
	}
	return nil
}
