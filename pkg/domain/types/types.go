package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type RequestID string

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

// OrgStatus is the lifecycle state of an organization in the registry.
type OrgStatus string

const (
	OrgStatusActive  OrgStatus = "active"
	OrgStatusDeleted OrgStatus = "deleted"
)

// Deleted reports whether the organization was uninstalled. Any other value,
// including unknown ones written by older versions, counts as active.
func (x OrgStatus) Deleted() bool {
	return strings.EqualFold(string(x), string(OrgStatusDeleted))
}

// WebhookOutcome is the body returned for a successfully handled delivery.
type WebhookOutcome string

const (
	WebhookOK      WebhookOutcome = "ok"
	WebhookIgnored WebhookOutcome = "ignored"
)

// RunID identifies one advisor attempt on one repository. It is also used as the
// workspace directory name.
type RunID string

const runIDTimeFormat = "20060102150405"

// NewRunID returns a compact UTC timestamp followed by a random suffix so that
// two runs started within the same second never collide.
func NewRunID(now time.Time) RunID {
	return RunID(now.UTC().Format(runIDTimeFormat) + "-" + uuid.NewString()[:8])
}

func (x RunID) String() string { return string(x) }
