package usecases

import (
	"context"

	"ministryshare/internal/application/notification"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/logger"
)

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
	ListByChurchFunc func(ctx context.Context, churchID uint) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return u.SetID(1) }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) GetByVerificationToken(ctx context.Context, token string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) ListByChurch(ctx context.Context, churchID uint) ([]*user.User, error) {
	if m.ListByChurchFunc != nil {
		return m.ListByChurchFunc(ctx, churchID)
	}
	return nil, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockRecorder struct {
	actions []string
}

func (m *mockRecorder) Record(userID uint, action, entityType string, entityID *uint, details map[string]any) {
	m.actions = append(m.actions, action)
}

type mockNotifier struct {
	kinds      []string
	recipients [][]notification.Recipient
}

func (m *mockNotifier) RequestCreated(event notification.RequestEvent, recipients []notification.Recipient) {
	m.kinds = append(m.kinds, "request_created")
}

func (m *mockNotifier) RequestApproved(event notification.RequestEvent, recipients []notification.Recipient) {
	m.kinds = append(m.kinds, "request_approved")
}

func (m *mockNotifier) RequestDenied(event notification.RequestEvent, recipients []notification.Recipient) {
	m.kinds = append(m.kinds, "request_denied")
}

func (m *mockNotifier) RequestCancelled(event notification.RequestEvent, recipients []notification.Recipient) {
	m.kinds = append(m.kinds, "request_cancelled")
}

func (m *mockNotifier) LoanReturned(event notification.LoanEvent, recipients []notification.Recipient) {
	m.kinds = append(m.kinds, "loan_returned")
}

func (m *mockNotifier) LoanOverdue(event notification.LoanEvent, recipients []notification.Recipient) {
	m.kinds = append(m.kinds, "loan_overdue")
}

func (m *mockNotifier) LoanLost(event notification.LoanEvent, recipients []notification.Recipient) {
	m.kinds = append(m.kinds, "loan_lost")
}

func (m *mockNotifier) ChurchApproved(event notification.ChurchEvent, recipients []notification.Recipient) {
	m.kinds = append(m.kinds, "church_approved")
	m.recipients = append(m.recipients, recipients)
}

func (m *mockNotifier) ChurchRejected(event notification.ChurchEvent, recipients []notification.Recipient) {
	m.kinds = append(m.kinds, "church_rejected")
	m.recipients = append(m.recipients, recipients)
}

func (m *mockNotifier) VerificationEmail(recipient notification.Recipient, verifyURL string) {
	m.kinds = append(m.kinds, "verification")
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

func uintPtr(v uint) *uint { return &v }
