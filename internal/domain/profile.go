// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrProfileNotFound indicates that the profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileNameRequired indicates that the profile name is empty.
	ErrProfileNameRequired = errors.New("profile name required")
)

// Profile holds the owner of a set of jars. The ledger engine only uses its
// id as a partition key.
type Profile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Age         int32     `json:"age,omitempty"`
	AvatarColor string    `json:"avatar_color"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProfileOverview holds a profile together with its three jar balances.
type ProfileOverview struct {
	Profile
	SpendBalance string `json:"spend_balance"`
	SaveBalance  string `json:"save_balance"`
	GiveBalance  string `json:"give_balance"`
	SaveGoal     string `json:"save_goal,omitempty"`
}
