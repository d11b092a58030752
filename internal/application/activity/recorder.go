// Package activity records the audit trail and serves its listings.
package activity

import (
	"context"
	"time"

	"ministryshare/internal/domain/activity"
	"ministryshare/internal/shared/goroutine"
	"ministryshare/internal/shared/logger"
)

const recordTimeout = 10 * time.Second

// Recorder appends audit entries. Record is fire-and-forget; a failed write
// is logged and never reaches the caller.
type Recorder interface {
	Record(userID uint, action, entityType string, entityID *uint, details map[string]any)
}

type recorder struct {
	repo   activity.Repository
	logger logger.Interface
}

// NewRecorder creates the audit recorder.
func NewRecorder(repo activity.Repository, logger logger.Interface) Recorder {
	return &recorder{repo: repo, logger: logger}
}

func (r *recorder) Record(userID uint, action, entityType string, entityID *uint, details map[string]any) {
	entry, err := activity.NewEntry(userID, action, entityType, entityID, details)
	if err != nil {
		r.logger.Warnw("skipping invalid activity entry", "error", err, "action", action)
		return
	}

	goroutine.SafeGo(r.logger, "activity.record", func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := r.repo.Create(ctx, entry); err != nil {
			r.logger.Warnw("failed to record activity",
				"error", err,
				"action", action,
				"entity_type", entityType,
				"user_id", userID,
			)
		}
	})
}
