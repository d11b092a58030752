package models

import (
	"time"

	"ministryshare/internal/shared/constants"
)

// LoanModel is the persistence model for loans.
type LoanModel struct {
	ID                uint      `gorm:"primarykey"`
	ResourceID        uint      `gorm:"not null;index:idx_loans_resource"`
	LoanRequestID     uint      `gorm:"index:idx_loans_request"`
	LendingChurchID   uint      `gorm:"not null;index:idx_loans_lending_church"`
	BorrowingChurchID uint      `gorm:"not null;index:idx_loans_borrowing_church"`
	Status            string    `gorm:"not null;default:ACTIVE;size:20;index:idx_loans_status"`
	DueDate           time.Time `gorm:"not null;index:idx_loans_due_date"`
	ReturnDate        *time.Time
	Notes             string `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (LoanModel) TableName() string {
	return constants.TableLoans
}
