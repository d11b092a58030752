// Package activity models the append-only audit trail of user actions.
package activity

import (
	"fmt"
	"time"
)

// Entry is a single audit record. Entries are written once and never updated.
type Entry struct {
	id         uint
	userID     uint
	action     string
	entityType string
	entityID   *uint
	details    map[string]any
	createdAt  time.Time
}

// NewEntry creates an audit entry. Details are free-form and stored as JSON.
func NewEntry(userID uint, action, entityType string, entityID *uint, details map[string]any) (*Entry, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if action == "" {
		return nil, fmt.Errorf("action is required")
	}
	if entityType == "" {
		return nil, fmt.Errorf("entity type is required")
	}
	return &Entry{
		userID:     userID,
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		details:    details,
		createdAt:  time.Now(),
	}, nil
}

// ReconstructEntry reconstructs an entry from persistence.
func ReconstructEntry(id, userID uint, action, entityType string, entityID *uint, details map[string]any, createdAt time.Time) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if action == "" {
		return nil, fmt.Errorf("action is required")
	}
	return &Entry{
		id:         id,
		userID:     userID,
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		details:    details,
		createdAt:  createdAt,
	}, nil
}

func (e *Entry) ID() uint                 { return e.id }
func (e *Entry) UserID() uint             { return e.userID }
func (e *Entry) Action() string           { return e.action }
func (e *Entry) EntityType() string       { return e.entityType }
func (e *Entry) EntityID() *uint          { return e.entityID }
func (e *Entry) Details() map[string]any  { return e.details }
func (e *Entry) CreatedAt() time.Time     { return e.createdAt }

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}
