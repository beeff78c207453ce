package model

import (
	"github.com/javagrunt/javagrunt/pkg/domain/types"
)

// OrgStatusEntry is a registry row returned by ListOrgStatuses.
type OrgStatusEntry struct {
	Org    string          `json:"org"`
	Status types.OrgStatus `json:"status"`
}

// RepoRef identifies a repository granted to the App.
type RepoRef struct {
	Owner    string
	Name     string
	FullName string
}

func (x RepoRef) String() string {
	if x.FullName != "" {
		return x.FullName
	}
	return x.Owner + "/" + x.Name
}
