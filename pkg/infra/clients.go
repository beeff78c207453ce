package infra

import (
	"github.com/javagrunt/javagrunt/pkg/domain/interfaces"
	"github.com/javagrunt/javagrunt/pkg/infra/advisor"
	"github.com/javagrunt/javagrunt/pkg/infra/command"
	"github.com/javagrunt/javagrunt/pkg/infra/git"
	"github.com/javagrunt/javagrunt/pkg/infra/maven"
)

type Clients struct {
	github     interfaces.GitHub
	git        interfaces.Git
	advisor    interfaces.Advisor
	buildTool  interfaces.BuildTool
	bqClient   interfaces.BigQuery
	registry   interfaces.OrgRegistry
	webhookLog interfaces.WebhookLog
}

type Option func(*Clients)

// New returns clients backed by the local git, advisor and Maven wrapper binaries
// unless overridden. GitHub, BigQuery and the registry have no default.
func New(options ...Option) *Clients {
	runner := command.New()
	client := &Clients{
		git:       git.New(runner),
		advisor:   advisor.New(runner),
		buildTool: maven.New(runner),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) Git() interfaces.Git {
	return x.git
}
func (x *Clients) Advisor() interfaces.Advisor {
	return x.advisor
}
func (x *Clients) BuildTool() interfaces.BuildTool {
	return x.buildTool
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) Registry() interfaces.OrgRegistry {
	return x.registry
}
func (x *Clients) WebhookLog() interfaces.WebhookLog {
	return x.webhookLog
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithGit(client interfaces.Git) Option {
	return func(x *Clients) {
		x.git = client
	}
}

func WithAdvisor(client interfaces.Advisor) Option {
	return func(x *Clients) {
		x.advisor = client
	}
}

func WithBuildTool(client interfaces.BuildTool) Option {
	return func(x *Clients) {
		x.buildTool = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithRegistry(registry interfaces.OrgRegistry) Option {
	return func(x *Clients) {
		x.registry = registry
	}
}

func WithWebhookLog(log interfaces.WebhookLog) Option {
	return func(x *Clients) {
		x.webhookLog = log
	}
}
