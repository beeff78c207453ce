package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/utils/errutil"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	EventInstallation = "installation"
	signaturePrefix   = "sha256="
)

// HandleWebhook records the delivery, verifies its signature and dispatches
// installation events. The delivery is logged before anything else, so rejected
// and ignored deliveries are kept too.
func (x *UseCase) HandleWebhook(ctx context.Context, delivery *model.WebhookDelivery) (types.WebhookOutcome, error) {
	logger := logging.From(ctx).With(
		slog.String("event", delivery.Event),
		slog.String("delivery_id", delivery.DeliveryID),
	)

	valid := x.webhookSecret == "" || verifySignature(x.webhookSecret, delivery.Body, delivery.Signature)
	if x.webhookSecret == "" {
		logger.Warn("Webhook signature is not verified, no secret configured")
	}

	entry := &model.WebhookLogEntry{
		ReceivedAt:     logging.CtxTime(ctx).UTC(),
		Event:          delivery.Event,
		DeliveryID:     delivery.DeliveryID,
		Signature:      delivery.Signature,
		SignatureValid: valid,
		Payload:        string(delivery.Body),
	}
	if err := x.clients.WebhookLog().AppendWebhookLog(ctx, entry); err != nil {
		errutil.HandleError(ctx, "failed to append webhook log", err)
	}

	if !valid {
		return "", goerr.Wrap(types.ErrSignatureInvalid, "webhook signature mismatch",
			goerr.V("delivery_id", delivery.DeliveryID),
		)
	}

	if delivery.Event != EventInstallation {
		logger.Debug("Ignoring non-installation event")
		return types.WebhookIgnored, nil
	}

	var payload model.InstallationPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		return "", goerr.Wrap(fmt.Errorf("%w: %w", types.ErrInvalidGitHubData, err),
			"failed to decode installation payload",
			goerr.V("delivery_id", delivery.DeliveryID),
		)
	}
	if err := payload.Validate(); err != nil {
		return "", err
	}

	logger.Info("Received installation event",
		slog.String("action", payload.Action),
		slog.String("account", payload.AccountLogin()),
		slog.Int64("installation_id", int64(payload.InstallID())),
	)

	switch payload.Action {
	case model.InstallationActionDeleted:
		if login := payload.AccountLogin(); login != "" {
			if err := x.clients.Registry().SetOrgStatus(ctx, login, types.OrgStatusDeleted); err != nil {
				return "", err
			}
		}
		return types.WebhookOK, nil

	case model.InstallationActionCreated, model.InstallationActionRepositoriesAdded:
		if err := x.onInstallation(ctx, &payload); err != nil {
			return "", err
		}
		return types.WebhookOK, nil

	default:
		return types.WebhookIgnored, nil
	}
}

func (x *UseCase) onInstallation(ctx context.Context, payload *model.InstallationPayload) error {
	if login := payload.AccountLogin(); login != "" {
		if err := x.clients.Registry().AddOrg(ctx, login); err != nil {
			return err
		}
		if id := payload.InstallID(); id > 0 {
			if err := x.clients.Registry().SetInstallationID(ctx, login, id); err != nil {
				return err
			}
		}
	}

	repos := payload.Repos()
	if len(repos) == 0 {
		logging.From(ctx).Warn("Installation event has no repositories",
			slog.String("action", payload.Action),
			slog.String("account", payload.AccountLogin()),
		)
		return nil
	}

	return x.ProvisionRepositories(ctx, payload.InstallID(), repos)
}

// verifySignature checks a "sha256=" prefixed X-Hub-Signature-256 header.
// The header must match the lower-case hex digest byte for byte.
func verifySignature(secret types.GitHubAppSecret, body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := signaturePrefix + hex.EncodeToString(mac.Sum(nil))

	return len(expected) == len(signature) &&
		subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
