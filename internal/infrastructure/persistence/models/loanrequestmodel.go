package models

import (
	"time"

	"ministryshare/internal/shared/constants"
)

// LoanRequestModel is the persistence model for loan requests.
type LoanRequestModel struct {
	ID                 uint `gorm:"primarykey"`
	ResourceID         uint `gorm:"not null;index:idx_loan_requests_resource"`
	RequestingChurchID uint `gorm:"not null;index:idx_loan_requests_church"`
	RequestingUserID   uint `gorm:"not null"`
	NeededByDate       *time.Time
	ReturnByDate       time.Time `gorm:"not null"`
	Message            string    `gorm:"type:text"`
	Status             string    `gorm:"not null;default:PENDING;size:20;index:idx_loan_requests_status"`
	ResponseMessage    string    `gorm:"type:text"`
	RespondedByUserID  *uint
	RespondedAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (LoanRequestModel) TableName() string {
	return constants.TableLoanRequests
}
