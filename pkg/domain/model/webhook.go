package model

import (
	"strings"
	"time"

	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// WebhookDelivery is a raw delivery as received on the HTTP endpoint.
type WebhookDelivery struct {
	Event      string
	DeliveryID string
	Signature  string
	Body       []byte
}

// WebhookLogEntry is appended to the webhook log for every delivery, valid or not.
type WebhookLogEntry struct {
	ReceivedAt     time.Time `json:"received_at"`
	Event          string    `json:"event"`
	DeliveryID     string    `json:"delivery_id"`
	Signature      string    `json:"signature"`
	SignatureValid bool      `json:"signature_valid"`
	Payload        string    `json:"payload"`
}

const (
	InstallationActionCreated           = "created"
	InstallationActionDeleted           = "deleted"
	InstallationActionRepositoriesAdded = "repositories_added"
)

// InstallationPayload is the subset of an "installation" event body that drives
// registration and provisioning. Every field is optional on the wire.
type InstallationPayload struct {
	Action       string `json:"action"`
	Installation struct {
		ID      int64 `json:"id"`
		Account struct {
			Login string `json:"login"`
		} `json:"account"`
	} `json:"installation"`
	Repositories      []InstallationRepository `json:"repositories"`
	RepositoriesAdded []InstallationRepository `json:"repositories_added"`
}

type InstallationRepository struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Owner    *struct {
		Login string `json:"login"`
	} `json:"owner,omitempty"`
}

// AccountLogin returns the trimmed installation account login.
func (x *InstallationPayload) AccountLogin() string {
	return strings.TrimSpace(x.Installation.Account.Login)
}

func (x *InstallationPayload) InstallID() types.GitHubAppInstallID {
	return types.GitHubAppInstallID(x.Installation.ID)
}

// Repos extracts repositories from both "repositories" and "repositories_added".
// Owner falls back to the full_name prefix. Entries without a name or a resolvable
// owner are skipped.
func (x *InstallationPayload) Repos() []RepoRef {
	var repos []RepoRef
	for _, list := range [][]InstallationRepository{x.Repositories, x.RepositoriesAdded} {
		for _, r := range list {
			if ref, ok := r.ref(); ok {
				repos = append(repos, ref)
			}
		}
	}
	return repos
}

func (x InstallationRepository) ref() (RepoRef, bool) {
	name := strings.TrimSpace(x.Name)
	owner := ""
	if x.Owner != nil {
		owner = strings.TrimSpace(x.Owner.Login)
	}
	if owner == "" {
		if prefix, _, found := strings.Cut(x.FullName, "/"); found {
			owner = strings.TrimSpace(prefix)
		}
	}
	if name == "" || owner == "" {
		return RepoRef{}, false
	}

	fullName := x.FullName
	if strings.TrimSpace(fullName) == "" {
		fullName = owner + "/" + name
	}
	return RepoRef{Owner: owner, Name: name, FullName: fullName}, true
}

// Validate checks what provisioning needs: a positive installation id once there
// is at least one repository to provision.
func (x *InstallationPayload) Validate() error {
	if len(x.Repos()) > 0 && x.Installation.ID <= 0 {
		return goerr.Wrap(types.ErrInvalidGitHubData, "installation id is missing",
			goerr.V("action", x.Action),
			goerr.V("account", x.AccountLogin()),
		)
	}
	return nil
}
