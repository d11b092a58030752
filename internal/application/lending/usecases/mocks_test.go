package usecases

import (
	"context"
	"time"

	"ministryshare/internal/application/notification"
	"ministryshare/internal/domain/catalog"
	catalogvo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/domain/lending"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/logger"
)

type mockRequestRepository struct {
	CreateFunc                 func(ctx context.Context, request *lending.LoanRequest) error
	GetByIDFunc                func(ctx context.Context, id uint) (*lending.LoanRequest, error)
	UpdateFunc                 func(ctx context.Context, request *lending.LoanRequest) error
	ListFunc                   func(ctx context.Context, filter lending.RequestFilter) ([]*lending.LoanRequest, int64, error)
	ExistsPendingFunc          func(ctx context.Context, resourceID, requestingChurchID uint) (bool, error)
	ListPendingForResourceFunc func(ctx context.Context, resourceID uint, excludeID uint) ([]*lending.LoanRequest, error)
}

func (m *mockRequestRepository) Create(ctx context.Context, request *lending.LoanRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, request)
	}
	return request.SetID(1)
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id uint) (*lending.LoanRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, lending.ErrRequestNotFound
}

func (m *mockRequestRepository) Update(ctx context.Context, request *lending.LoanRequest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, request)
	}
	return nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter lending.RequestFilter) ([]*lending.LoanRequest, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockRequestRepository) ExistsPending(ctx context.Context, resourceID, requestingChurchID uint) (bool, error) {
	if m.ExistsPendingFunc != nil {
		return m.ExistsPendingFunc(ctx, resourceID, requestingChurchID)
	}
	return false, nil
}

func (m *mockRequestRepository) ListPendingForResource(ctx context.Context, resourceID uint, excludeID uint) ([]*lending.LoanRequest, error) {
	if m.ListPendingForResourceFunc != nil {
		return m.ListPendingForResourceFunc(ctx, resourceID, excludeID)
	}
	return nil, nil
}

type mockLoanRepository struct {
	CreateFunc           func(ctx context.Context, loan *lending.Loan) error
	GetByIDFunc          func(ctx context.Context, id uint) (*lending.Loan, error)
	UpdateFunc           func(ctx context.Context, loan *lending.Loan) error
	ListFunc             func(ctx context.Context, filter lending.LoanFilter) ([]*lending.Loan, int64, error)
	GetOpenByResourceFunc func(ctx context.Context, resourceID uint) (*lending.Loan, error)
	ListDueBeforeFunc    func(ctx context.Context, t time.Time) ([]*lending.Loan, error)
}

func (m *mockLoanRepository) Create(ctx context.Context, loan *lending.Loan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, loan)
	}
	return loan.SetID(1)
}

func (m *mockLoanRepository) GetByID(ctx context.Context, id uint) (*lending.Loan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, lending.ErrLoanNotFound
}

func (m *mockLoanRepository) Update(ctx context.Context, loan *lending.Loan) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, loan)
	}
	return nil
}

func (m *mockLoanRepository) List(ctx context.Context, filter lending.LoanFilter) ([]*lending.Loan, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockLoanRepository) GetOpenByResource(ctx context.Context, resourceID uint) (*lending.Loan, error) {
	if m.GetOpenByResourceFunc != nil {
		return m.GetOpenByResourceFunc(ctx, resourceID)
	}
	return nil, lending.ErrLoanNotFound
}

func (m *mockLoanRepository) ListDueBefore(ctx context.Context, t time.Time) ([]*lending.Loan, error) {
	if m.ListDueBeforeFunc != nil {
		return m.ListDueBeforeFunc(ctx, t)
	}
	return nil, nil
}

type mockResourceRepository struct {
	CreateFunc            func(ctx context.Context, resource *catalog.Resource) error
	GetByIDFunc           func(ctx context.Context, id uint) (*catalog.Resource, error)
	UpdateFunc            func(ctx context.Context, resource *catalog.Resource) error
	DeleteFunc            func(ctx context.Context, id uint) error
	ListFunc              func(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Resource, int64, error)
	ListByChurchFunc      func(ctx context.Context, churchID uint) ([]*catalog.Resource, error)
	CreateBatchFunc       func(ctx context.Context, resources []*catalog.Resource) error
	SetAvailabilityIfFunc func(ctx context.Context, id uint, expected, next catalogvo.AvailabilityStatus) (bool, error)
}

func (m *mockResourceRepository) Create(ctx context.Context, resource *catalog.Resource) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, resource)
	}
	return resource.SetID(1)
}

func (m *mockResourceRepository) GetByID(ctx context.Context, id uint) (*catalog.Resource, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, catalog.ErrResourceNotFound
}

func (m *mockResourceRepository) Update(ctx context.Context, resource *catalog.Resource) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, resource)
	}
	return nil
}

func (m *mockResourceRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockResourceRepository) List(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Resource, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockResourceRepository) ListByChurch(ctx context.Context, churchID uint) ([]*catalog.Resource, error) {
	if m.ListByChurchFunc != nil {
		return m.ListByChurchFunc(ctx, churchID)
	}
	return nil, nil
}

func (m *mockResourceRepository) CreateBatch(ctx context.Context, resources []*catalog.Resource) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, resources)
	}
	return nil
}

func (m *mockResourceRepository) SetAvailabilityIf(ctx context.Context, id uint, expected, next catalogvo.AvailabilityStatus) (bool, error) {
	if m.SetAvailabilityIfFunc != nil {
		return m.SetAvailabilityIfFunc(ctx, id, expected, next)
	}
	return true, nil
}

type mockChurchRepository struct {
	CreateFunc        func(ctx context.Context, c *church.Church) error
	GetByIDFunc       func(ctx context.Context, id uint) (*church.Church, error)
	GetByNameFunc     func(ctx context.Context, name string) (*church.Church, error)
	UpdateFunc        func(ctx context.Context, c *church.Church) error
	DeleteFunc        func(ctx context.Context, id uint) error
	ListFunc          func(ctx context.Context, filter church.ListFilter) ([]*church.Church, int64, error)
	CountByStatusFunc func(ctx context.Context, status church.RegistrationStatus) (int64, error)
}

func (m *mockChurchRepository) Create(ctx context.Context, c *church.Church) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockChurchRepository) GetByID(ctx context.Context, id uint) (*church.Church, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, church.ErrChurchNotFound
}

func (m *mockChurchRepository) GetByName(ctx context.Context, name string) (*church.Church, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, church.ErrChurchNotFound
}

func (m *mockChurchRepository) Update(ctx context.Context, c *church.Church) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockChurchRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockChurchRepository) List(ctx context.Context, filter church.ListFilter) ([]*church.Church, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockChurchRepository) CountByStatus(ctx context.Context, status church.RegistrationStatus) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

type mockUserRepository struct {
	CreateFunc                 func(ctx context.Context, u *user.User) error
	GetByIDFunc                func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc          func(ctx context.Context, username string) (*user.User, error)
	GetByEmailFunc             func(ctx context.Context, email string) (*user.User, error)
	GetByVerificationTokenFunc func(ctx context.Context, token string) (*user.User, error)
	UpdateFunc                 func(ctx context.Context, u *user.User) error
	ListFunc                   func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
	ListByChurchFunc           func(ctx context.Context, churchID uint) ([]*user.User, error)
	CountFunc                  func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) GetByVerificationToken(ctx context.Context, token string) (*user.User, error) {
	if m.GetByVerificationTokenFunc != nil {
		return m.GetByVerificationTokenFunc(ctx, token)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ListByChurch(ctx context.Context, churchID uint) ([]*user.User, error) {
	if m.ListByChurchFunc != nil {
		return m.ListByChurchFunc(ctx, churchID)
	}
	return nil, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// mockTxManager runs the function inline, no real transaction.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

// mockRecorder captures audit calls synchronously.
type mockRecorder struct {
	actions []string
}

func (m *mockRecorder) Record(userID uint, action, entityType string, entityID *uint, details map[string]any) {
	m.actions = append(m.actions, action)
}

// mockNotifier captures dispatched notification kinds and their recipient
// lists synchronously.
type mockNotifier struct {
	kinds      []string
	recipients [][]notification.Recipient
}

func (m *mockNotifier) note(kind string, recipients []notification.Recipient) {
	m.kinds = append(m.kinds, kind)
	m.recipients = append(m.recipients, recipients)
}

func (m *mockNotifier) RequestCreated(event notification.RequestEvent, recipients []notification.Recipient) {
	m.note("request_created", recipients)
}

func (m *mockNotifier) RequestApproved(event notification.RequestEvent, recipients []notification.Recipient) {
	m.note("request_approved", recipients)
}

func (m *mockNotifier) RequestDenied(event notification.RequestEvent, recipients []notification.Recipient) {
	m.note("request_denied", recipients)
}

func (m *mockNotifier) RequestCancelled(event notification.RequestEvent, recipients []notification.Recipient) {
	m.note("request_cancelled", recipients)
}

func (m *mockNotifier) LoanReturned(event notification.LoanEvent, recipients []notification.Recipient) {
	m.note("loan_returned", recipients)
}

func (m *mockNotifier) LoanOverdue(event notification.LoanEvent, recipients []notification.Recipient) {
	m.note("loan_overdue", recipients)
}

func (m *mockNotifier) LoanLost(event notification.LoanEvent, recipients []notification.Recipient) {
	m.note("loan_lost", recipients)
}

func (m *mockNotifier) ChurchApproved(event notification.ChurchEvent, recipients []notification.Recipient) {
	m.note("church_approved", recipients)
}

func (m *mockNotifier) ChurchRejected(event notification.ChurchEvent, recipients []notification.Recipient) {
	m.note("church_rejected", recipients)
}

func (m *mockNotifier) VerificationEmail(recipient notification.Recipient, verifyURL string) {
	m.note("verification", []notification.Recipient{recipient})
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                    {}
func (nopLogger) Info(msg string, args ...any)                     {}
func (nopLogger) Warn(msg string, args ...any)                     {}
func (nopLogger) Error(msg string, args ...any)                    {}
func (l nopLogger) With(args ...any) logger.Interface              { return l }
func (l nopLogger) Named(name string) logger.Interface             { return l }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{})  {}
