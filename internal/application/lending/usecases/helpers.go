// Package usecases implements the loan workflow: request creation, the
// approve/deny/cancel transitions, and the loan lifecycle.
package usecases

import (
	"context"
	"time"

	"ministryshare/internal/application/notification"
	"ministryshare/internal/domain/lending"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/logger"
)

const dateLayout = "January 2, 2006"

// TransactionManager runs a function inside one database transaction.
// Satisfied by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// recipientsForChurch resolves the active members of a church into email
// recipients. Lookup failures degrade to an empty list; notifications are
// best-effort.
func recipientsForChurch(ctx context.Context, userRepo user.Repository, log logger.Interface, churchID uint) []notification.Recipient {
	members, err := userRepo.ListByChurch(ctx, churchID)
	if err != nil {
		log.Warnw("failed to resolve notification recipients", "error", err, "church_id", churchID)
		return nil
	}
	recipients := make([]notification.Recipient, 0, len(members))
	for _, m := range members {
		if !m.IsActive() {
			continue
		}
		recipients = append(recipients, notification.Recipient{
			Email:       m.Email(),
			DisplayName: m.DisplayName(),
			Locale:      m.PreferredLocale(),
		})
	}
	return recipients
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// LoanRequestResult is the API-facing shape of a loan request.
type LoanRequestResult struct {
	ID                 uint       `json:"id"`
	ResourceID         uint       `json:"resource_id"`
	RequestingChurchID uint       `json:"requesting_church_id"`
	RequestingUserID   uint       `json:"requesting_user_id"`
	NeededByDate       *time.Time `json:"needed_by_date,omitempty"`
	ReturnByDate       time.Time  `json:"return_by_date"`
	Message            string     `json:"message,omitempty"`
	Status             string     `json:"status"`
	ResponseMessage    string     `json:"response_message,omitempty"`
	RespondedAt        *time.Time `json:"responded_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func toLoanRequestResult(r *lending.LoanRequest) *LoanRequestResult {
	return &LoanRequestResult{
		ID:                 r.ID(),
		ResourceID:         r.ResourceID(),
		RequestingChurchID: r.RequestingChurchID(),
		RequestingUserID:   r.RequestingUserID(),
		NeededByDate:       r.NeededByDate(),
		ReturnByDate:       r.ReturnByDate(),
		Message:            r.Message(),
		Status:             r.Status().String(),
		ResponseMessage:    r.ResponseMessage(),
		RespondedAt:        r.RespondedAt(),
		CreatedAt:          r.CreatedAt(),
	}
}

// LoanResult is the API-facing shape of a loan.
type LoanResult struct {
	ID                uint       `json:"id"`
	ResourceID        uint       `json:"resource_id"`
	RequestID         uint       `json:"request_id"`
	LendingChurchID   uint       `json:"lending_church_id"`
	BorrowingChurchID uint       `json:"borrowing_church_id"`
	Status            string     `json:"status"`
	DueDate           time.Time  `json:"due_date"`
	ReturnDate        *time.Time `json:"return_date,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func toLoanResult(l *lending.Loan) *LoanResult {
	return &LoanResult{
		ID:                l.ID(),
		ResourceID:        l.ResourceID(),
		RequestID:         l.RequestID(),
		LendingChurchID:   l.LendingChurchID(),
		BorrowingChurchID: l.BorrowingChurchID(),
		Status:            l.Status().String(),
		DueDate:           l.DueDate(),
		ReturnDate:        l.ReturnDate(),
		Notes:             l.Notes(),
		CreatedAt:         l.CreatedAt(),
	}
}
