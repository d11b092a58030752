package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ministryshare/internal/domain/catalog"
	catalogvo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/domain/lending"
	lendingvo "ministryshare/internal/domain/lending/valueobjects"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/logger"
)

type countsChurchRepo struct {
	byStatus map[church.RegistrationStatus]int64
}

func (r *countsChurchRepo) Create(ctx context.Context, c *church.Church) error { return nil }
func (r *countsChurchRepo) GetByID(ctx context.Context, id uint) (*church.Church, error) {
	return nil, church.ErrChurchNotFound
}
func (r *countsChurchRepo) GetByName(ctx context.Context, name string) (*church.Church, error) {
	return nil, church.ErrChurchNotFound
}
func (r *countsChurchRepo) Update(ctx context.Context, c *church.Church) error { return nil }
func (r *countsChurchRepo) Delete(ctx context.Context, id uint) error          { return nil }
func (r *countsChurchRepo) List(ctx context.Context, filter church.ListFilter) ([]*church.Church, int64, error) {
	return nil, 0, nil
}
func (r *countsChurchRepo) CountByStatus(ctx context.Context, status church.RegistrationStatus) (int64, error) {
	return r.byStatus[status], nil
}

type countsUserRepo struct {
	total int64
}

func (r *countsUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (r *countsUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (r *countsUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (r *countsUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (r *countsUserRepo) GetByVerificationToken(ctx context.Context, token string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (r *countsUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (r *countsUserRepo) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}
func (r *countsUserRepo) ListByChurch(ctx context.Context, churchID uint) ([]*user.User, error) {
	return nil, nil
}
func (r *countsUserRepo) Count(ctx context.Context) (int64, error) { return r.total, nil }

type countsResourceRepo struct {
	total int64
}

func (r *countsResourceRepo) Create(ctx context.Context, resource *catalog.Resource) error {
	return nil
}
func (r *countsResourceRepo) GetByID(ctx context.Context, id uint) (*catalog.Resource, error) {
	return nil, catalog.ErrResourceNotFound
}
func (r *countsResourceRepo) Update(ctx context.Context, resource *catalog.Resource) error {
	return nil
}
func (r *countsResourceRepo) Delete(ctx context.Context, id uint) error { return nil }
func (r *countsResourceRepo) List(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Resource, int64, error) {
	return nil, r.total, nil
}
func (r *countsResourceRepo) ListByChurch(ctx context.Context, churchID uint) ([]*catalog.Resource, error) {
	return nil, nil
}
func (r *countsResourceRepo) CreateBatch(ctx context.Context, resources []*catalog.Resource) error {
	return nil
}
func (r *countsResourceRepo) SetAvailabilityIf(ctx context.Context, id uint, expected, next catalogvo.AvailabilityStatus) (bool, error) {
	return true, nil
}

type countsRequestRepo struct {
	pending int64
}

func (r *countsRequestRepo) Create(ctx context.Context, request *lending.LoanRequest) error {
	return nil
}
func (r *countsRequestRepo) GetByID(ctx context.Context, id uint) (*lending.LoanRequest, error) {
	return nil, lending.ErrRequestNotFound
}
func (r *countsRequestRepo) Update(ctx context.Context, request *lending.LoanRequest) error {
	return nil
}
func (r *countsRequestRepo) List(ctx context.Context, filter lending.RequestFilter) ([]*lending.LoanRequest, int64, error) {
	if filter.Status != nil && *filter.Status == lendingvo.RequestPending {
		return nil, r.pending, nil
	}
	return nil, 0, nil
}
func (r *countsRequestRepo) ExistsPending(ctx context.Context, resourceID, requestingChurchID uint) (bool, error) {
	return false, nil
}
func (r *countsRequestRepo) ListPendingForResource(ctx context.Context, resourceID uint, excludeID uint) ([]*lending.LoanRequest, error) {
	return nil, nil
}

type countsLoanRepo struct {
	byStatus map[lendingvo.LoanStatus]int64
}

func (r *countsLoanRepo) Create(ctx context.Context, loan *lending.Loan) error { return nil }
func (r *countsLoanRepo) GetByID(ctx context.Context, id uint) (*lending.Loan, error) {
	return nil, lending.ErrLoanNotFound
}
func (r *countsLoanRepo) Update(ctx context.Context, loan *lending.Loan) error { return nil }
func (r *countsLoanRepo) List(ctx context.Context, filter lending.LoanFilter) ([]*lending.Loan, int64, error) {
	if filter.Status != nil {
		return nil, r.byStatus[*filter.Status], nil
	}
	return nil, 0, nil
}
func (r *countsLoanRepo) GetOpenByResource(ctx context.Context, resourceID uint) (*lending.Loan, error) {
	return nil, lending.ErrLoanNotFound
}
func (r *countsLoanRepo) ListDueBefore(ctx context.Context, t time.Time) ([]*lending.Loan, error) {
	return nil, nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (l nopLogger) With(args ...any) logger.Interface             { return l }
func (l nopLogger) Named(name string) logger.Interface            { return l }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func TestGetDashboardStats(t *testing.T) {
	uc := NewGetDashboardStatsUseCase(
		&countsChurchRepo{byStatus: map[church.RegistrationStatus]int64{
			church.RegistrationApproved: 12,
			church.RegistrationPending:  3,
		}},
		&countsUserRepo{total: 40},
		&countsResourceRepo{total: 250},
		&countsRequestRepo{pending: 5},
		&countsLoanRepo{byStatus: map[lendingvo.LoanStatus]int64{
			lendingvo.LoanActive:  7,
			lendingvo.LoanOverdue: 2,
		}},
		nopLogger{},
	)

	stats, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.Churches)
	assert.Equal(t, int64(3), stats.PendingChurches)
	assert.Equal(t, int64(40), stats.Users)
	assert.Equal(t, int64(250), stats.Resources)
	assert.Equal(t, int64(9), stats.ActiveLoans, "active plus overdue")
	assert.Equal(t, int64(5), stats.PendingRequests)
}
