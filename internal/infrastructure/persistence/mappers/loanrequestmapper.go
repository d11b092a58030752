package mappers

import (
	"ministryshare/internal/domain/lending"
	vo "ministryshare/internal/domain/lending/valueobjects"
	"ministryshare/internal/infrastructure/persistence/models"
)

// LoanRequestMapper handles conversion between LoanRequest domain and model.
type LoanRequestMapper interface {
	ToModel(r *lending.LoanRequest) *models.LoanRequestModel
	ToDomain(model *models.LoanRequestModel) (*lending.LoanRequest, error)
	ToDomainList(modelList []*models.LoanRequestModel) ([]*lending.LoanRequest, error)
}

type loanRequestMapperImpl struct{}

// NewLoanRequestMapper creates a new LoanRequestMapper.
func NewLoanRequestMapper() LoanRequestMapper {
	return &loanRequestMapperImpl{}
}

func (m *loanRequestMapperImpl) ToModel(r *lending.LoanRequest) *models.LoanRequestModel {
	return &models.LoanRequestModel{
		ID:                 r.ID(),
		ResourceID:         r.ResourceID(),
		RequestingChurchID: r.RequestingChurchID(),
		RequestingUserID:   r.RequestingUserID(),
		NeededByDate:       r.NeededByDate(),
		ReturnByDate:       r.ReturnByDate(),
		Message:            r.Message(),
		Status:             r.Status().String(),
		ResponseMessage:    r.ResponseMessage(),
		RespondedByUserID:  r.RespondedByUserID(),
		RespondedAt:        r.RespondedAt(),
		CreatedAt:          r.CreatedAt(),
		UpdatedAt:          r.UpdatedAt(),
	}
}

func (m *loanRequestMapperImpl) ToDomain(model *models.LoanRequestModel) (*lending.LoanRequest, error) {
	return lending.ReconstructLoanRequest(
		model.ID,
		model.ResourceID,
		model.RequestingChurchID,
		model.RequestingUserID,
		model.NeededByDate,
		model.ReturnByDate,
		model.Message,
		vo.RequestStatus(model.Status),
		model.ResponseMessage,
		model.RespondedByUserID,
		model.RespondedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *loanRequestMapperImpl) ToDomainList(modelList []*models.LoanRequestModel) ([]*lending.LoanRequest, error) {
	result := make([]*lending.LoanRequest, 0, len(modelList))
	for _, model := range modelList {
		r, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, nil
}
