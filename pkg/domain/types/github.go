package types

import "log/slog"

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppSecret     string
	GitHubAppPrivateKey string
	InstallationToken   string
	BranchName          string
	CommitSHA           string
)

// APIVersion is sent as X-GitHub-Api-Version on every authenticated call.
const APIVersion = "2022-11-28"

// UserAgent identifies this service to the GitHub API.
const UserAgent = "javagrunt-github-app"

func (x GitHubAppSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppSecret) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x InstallationToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x InstallationToken) String() string {
	return "***********"
}

// Raw returns the unmasked token. Use it only when building a request or a remote URL.
func (x InstallationToken) Raw() string {
	return string(x)
}
