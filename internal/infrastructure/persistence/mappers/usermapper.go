package mappers

import (
	"ministryshare/internal/domain/user"
	"ministryshare/internal/infrastructure/persistence/models"
	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/i18n"
)

// UserMapper handles conversion between User domain and model.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	ToDomainList(modelList []*models.UserModel) ([]*user.User, error)
}

type userMapperImpl struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &userMapperImpl{}
}

func (m *userMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:                u.ID(),
		Username:          u.Username(),
		DisplayName:       u.DisplayName(),
		Email:             u.Email(),
		PasswordHash:      u.PasswordHash(),
		Role:              u.Role().String(),
		ChurchID:          u.ChurchID(),
		PreferredLocale:   u.PreferredLocale().String(),
		IsActive:          u.IsActive(),
		EmailVerified:     u.EmailVerified(),
		VerificationToken: u.VerificationToken(),
		TokenExpiresAt:    u.TokenExpiresAt(),
		CreatedAt:         u.CreatedAt(),
		UpdatedAt:         u.UpdatedAt(),
	}
}

func (m *userMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.DisplayName,
		model.Email,
		model.PasswordHash,
		authorization.UserRole(model.Role),
		model.ChurchID,
		i18n.Locale(model.PreferredLocale),
		model.IsActive,
		model.EmailVerified,
		model.VerificationToken,
		model.TokenExpiresAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *userMapperImpl) ToDomainList(modelList []*models.UserModel) ([]*user.User, error) {
	result := make([]*user.User, 0, len(modelList))
	for _, model := range modelList {
		u, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, nil
}
