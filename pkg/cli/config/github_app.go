package config

import (
	"context"
	"log/slog"

	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/infra/credential"
	"github.com/javagrunt/javagrunt/pkg/infra/ghapp"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type GitHubApp struct {
	id             types.GitHubAppID
	secret         types.GitHubAppSecret     `masq:"secret"`
	privateKey     types.GitHubAppPrivateKey `masq:"secret"`
	privateKeyPath string
	apiURL         string
	insecure       bool
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("JAVAGRUNT_GITHUB_APP_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key (PEM, PKCS#1 or PKCS#8)",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("JAVAGRUNT_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key-path",
			Usage:       "Path to GitHub App Private Key file",
			Category:    "GitHub App",
			Destination: &x.privateKeyPath,
			Sources:     cli.EnvVars("JAVAGRUNT_GITHUB_APP_PRIVATE_KEY_PATH"),
		},
		&cli.StringFlag{
			Name:        "github-app-secret",
			Usage:       "GitHub App Webhook Secret",
			Category:    "GitHub App",
			Destination: (*string)(&x.secret),
			Sources:     cli.EnvVars("JAVAGRUNT_GITHUB_APP_SECRET"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API root",
			Category:    "GitHub App",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("JAVAGRUNT_GITHUB_API_URL"),
			Value:       ghapp.DefaultBaseURL,
		},
		&cli.BoolFlag{
			Name:        "insecure-skip-signature",
			Usage:       "Accept webhooks without signature verification when no secret is set",
			Category:    "GitHub App",
			Destination: &x.insecure,
			Sources:     cli.EnvVars("JAVAGRUNT_INSECURE_SKIP_SIGNATURE"),
		},
	}
}

// Validate checks the credential settings. requireSecret is set by commands
// that receive webhooks.
func (x *GitHubApp) Validate(requireSecret bool) error {
	if x.id <= 0 {
		return goerr.Wrap(types.ErrConfiguration, "GitHub App ID must be positive", goerr.V("id", x.id))
	}
	if x.privateKey == "" && x.privateKeyPath == "" {
		return goerr.Wrap(types.ErrConfiguration, "either --github-app-private-key or --github-app-private-key-path is required")
	}
	if requireSecret && x.secret == "" && !x.insecure {
		return goerr.Wrap(types.ErrConfiguration, "--github-app-secret is required unless --insecure-skip-signature is set")
	}
	return nil
}

// NewClient builds the credential provider and the GitHub client. A token is
// minted once so that an unreadable key fails at startup.
func (x *GitHubApp) NewClient(ctx context.Context) (*ghapp.Client, error) {
	provider := credential.New(x.id,
		credential.WithPrivateKey(x.privateKey),
		credential.WithPrivateKeyPath(x.privateKeyPath),
	)
	if _, err := provider.MintAppToken(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to load GitHub App private key")
	}

	if x.secret == "" && x.insecure {
		logging.From(ctx).Warn("Webhook signature verification is DISABLED, any caller can post deliveries")
	}

	return ghapp.New(x.id, provider, ghapp.WithBaseURL(x.apiURL))
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int("Secret.len", len(x.secret)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("privateKeyPath", x.privateKeyPath),
		slog.String("apiURL", x.apiURL),
		slog.Bool("insecure", x.insecure),
	)
}

func (x GitHubApp) Secret() types.GitHubAppSecret {
	return x.secret
}
