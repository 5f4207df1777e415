package domain

import (
	"errors"
	"time"
)

var (
	// ErrJarNotFound indicates that the jar is not found.
	ErrJarNotFound = errors.New("jar not found")
	// ErrJarAlreadyExists indicates that the profile already has a jar of the given kind.
	ErrJarAlreadyExists = errors.New("jar kind already exists for profile")
	// ErrUnsupportedJarKind indicates an unknown jar kind.
	ErrUnsupportedJarKind = errors.New("unsupported jar kind")
)

// Jar holds one purpose-tagged sub-account of a profile. Its balance is a
// maintained running total, mutated only inside ledger transactions.
type Jar struct {
	ID              string    `json:"id"`
	ProfileID       string    `json:"profile_id"`
	Kind            string    `json:"kind"`
	Balance         string    `json:"balance"`
	GoalAmount      string    `json:"goal_amount,omitempty"`
	GoalDescription string    `json:"goal_description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Balances holds the current balance of each of a profile's jars.
type Balances struct {
	Spend string `json:"spend"`
	Save  string `json:"save"`
	Give  string `json:"give"`
}
