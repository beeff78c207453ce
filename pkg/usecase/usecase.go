package usecase

import (
	"sync/atomic"

	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/infra"
)

const (
	DefaultTargetPath     = ".github/workflows/ci.yml"
	DefaultWorkspace      = "./tmp/javagrunt"
	DefaultPRCleanupDays  = 30
	DefaultGitHost        = "github.com"
	DefaultAdvisorWorkers = 1
)

type UseCase struct {
	clients *infra.Clients

	webhookSecret types.GitHubAppSecret
	template      model.TemplateSource
	targetPath    string

	workspace     string
	keepWorkspace bool
	cleanupDays   int
	gitHost       string
	workers       int

	advisorRunning atomic.Bool
}

type Option func(*UseCase)

// WithWebhookSecret sets the secret used to verify webhook signatures. Without
// it every delivery is accepted.
func WithWebhookSecret(secret types.GitHubAppSecret) Option {
	return func(x *UseCase) {
		x.webhookSecret = secret
	}
}

// WithTemplate sets the repository file copied into onboarded repositories. An
// empty Token means the installation token of the batch is used instead of an
// anonymous fetch. Public templates read the same either way. A private template
// in another org needs a dedicated Token, since neither the installation token nor
// an anonymous request can read it.
func WithTemplate(src model.TemplateSource) Option {
	return func(x *UseCase) {
		x.template = src
	}
}

func WithTargetPath(path string) Option {
	return func(x *UseCase) {
		x.targetPath = path
	}
}

func WithWorkspace(root string) Option {
	return func(x *UseCase) {
		x.workspace = root
	}
}

func WithKeepWorkspace(keep bool) Option {
	return func(x *UseCase) {
		x.keepWorkspace = keep
	}
}

func WithPRCleanupDays(days int) Option {
	return func(x *UseCase) {
		x.cleanupDays = days
	}
}

func WithGitHost(host string) Option {
	return func(x *UseCase) {
		x.gitHost = host
	}
}

func WithAdvisorWorkers(n int) Option {
	return func(x *UseCase) {
		if n > 0 {
			x.workers = n
		}
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	x := &UseCase{
		clients:     clients,
		targetPath:  DefaultTargetPath,
		workspace:   DefaultWorkspace,
		cleanupDays: DefaultPRCleanupDays,
		gitHost:     DefaultGitHost,
		workers:     DefaultAdvisorWorkers,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}
