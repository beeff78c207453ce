package model

import (
	"time"

	"github.com/javagrunt/javagrunt/pkg/domain/types"
)

// RepoOutcome is the terminal state of one advisor attempt on a repository.
type RepoOutcome string

const (
	RepoOutcomeDone      RepoOutcome = "done"
	RepoOutcomeSkipped   RepoOutcome = "skipped"
	RepoOutcomeNoChanges RepoOutcome = "no_changes"
	RepoOutcomeFailed    RepoOutcome = "failed"
)

// UpgradePath is the branch taken after the plan decision.
type UpgradePath string

const (
	UpgradePathNone        UpgradePath = ""
	UpgradePathPatch       UpgradePath = "patch"
	UpgradePathFullUpgrade UpgradePath = "full_upgrade"
)

// AdvisorRun is the record of one repository pass, exported to BigQuery.
type AdvisorRun struct {
	ID         types.RunID `bigquery:"id" json:"id"`
	Org        string      `bigquery:"org" json:"org"`
	Repo       string      `bigquery:"repo" json:"repo"`
	StartedAt  time.Time   `bigquery:"started_at" json:"started_at"`
	FinishedAt time.Time   `bigquery:"finished_at" json:"finished_at"`
	Outcome    RepoOutcome `bigquery:"outcome" json:"outcome"`
	Path       UpgradePath `bigquery:"path" json:"path"`
	Branch     string      `bigquery:"branch" json:"branch"`
	ClosedPRs  []int       `bigquery:"closed_prs" json:"closed_prs"`
	Error      string      `bigquery:"error" json:"error"`
}

// AdvisorRunRecord is the BigQuery row form of AdvisorRun. The storage write API
// takes timestamps as microseconds since epoch.
type AdvisorRunRecord struct {
	AdvisorRun
	StartedAt  int64 `json:"started_at"`
	FinishedAt int64 `json:"finished_at"`
}

func (x *AdvisorRun) Record() *AdvisorRunRecord {
	return &AdvisorRunRecord{
		AdvisorRun: *x,
		StartedAt:  x.StartedAt.UnixMicro(),
		FinishedAt: x.FinishedAt.UnixMicro(),
	}
}
