package mappers

import (
	"ministryshare/internal/domain/lending"
	vo "ministryshare/internal/domain/lending/valueobjects"
	"ministryshare/internal/infrastructure/persistence/models"
)

// LoanMapper handles conversion between Loan domain and model.
type LoanMapper interface {
	ToModel(l *lending.Loan) *models.LoanModel
	ToDomain(model *models.LoanModel) (*lending.Loan, error)
	ToDomainList(modelList []*models.LoanModel) ([]*lending.Loan, error)
}

type loanMapperImpl struct{}

// NewLoanMapper creates a new LoanMapper.
func NewLoanMapper() LoanMapper {
	return &loanMapperImpl{}
}

func (m *loanMapperImpl) ToModel(l *lending.Loan) *models.LoanModel {
	return &models.LoanModel{
		ID:                l.ID(),
		ResourceID:        l.ResourceID(),
		LoanRequestID:     l.RequestID(),
		LendingChurchID:   l.LendingChurchID(),
		BorrowingChurchID: l.BorrowingChurchID(),
		Status:            l.Status().String(),
		DueDate:           l.DueDate(),
		ReturnDate:        l.ReturnDate(),
		Notes:             l.Notes(),
		CreatedAt:         l.CreatedAt(),
		UpdatedAt:         l.UpdatedAt(),
	}
}

func (m *loanMapperImpl) ToDomain(model *models.LoanModel) (*lending.Loan, error) {
	return lending.ReconstructLoan(
		model.ID,
		model.ResourceID,
		model.LoanRequestID,
		model.LendingChurchID,
		model.BorrowingChurchID,
		vo.LoanStatus(model.Status),
		model.DueDate,
		model.ReturnDate,
		model.Notes,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *loanMapperImpl) ToDomainList(modelList []*models.LoanModel) ([]*lending.Loan, error) {
	result := make([]*lending.Loan, 0, len(modelList))
	for _, model := range modelList {
		l, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, nil
}
