package usecases

import (
	"context"
	"fmt"

	"ministryshare/internal/application/notification"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc                 func(ctx context.Context, u *user.User) error
	GetByIDFunc                func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc          func(ctx context.Context, username string) (*user.User, error)
	GetByEmailFunc             func(ctx context.Context, email string) (*user.User, error)
	GetByVerificationTokenFunc func(ctx context.Context, token string) (*user.User, error)
	UpdateFunc                 func(ctx context.Context, u *user.User) error
	ListFunc                   func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
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
	return nil, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockChurchRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*church.Church, error)
}

func (m *mockChurchRepository) Create(ctx context.Context, c *church.Church) error { return nil }

func (m *mockChurchRepository) GetByID(ctx context.Context, id uint) (*church.Church, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, church.ErrChurchNotFound
}

func (m *mockChurchRepository) GetByName(ctx context.Context, name string) (*church.Church, error) {
	return nil, church.ErrChurchNotFound
}

func (m *mockChurchRepository) Update(ctx context.Context, c *church.Church) error { return nil }

func (m *mockChurchRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockChurchRepository) List(ctx context.Context, filter church.ListFilter) ([]*church.Church, int64, error) {
	return nil, 0, nil
}

func (m *mockChurchRepository) CountByStatus(ctx context.Context, status church.RegistrationStatus) (int64, error) {
	return 0, nil
}

// mockHasher prefixes instead of hashing so tests can assert on the value.
type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (mockHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockTokenService struct {
	GenerateFunc func(userID uint, role authorization.UserRole, churchID *uint) (*TokenPair, error)
}

func (m *mockTokenService) Generate(userID uint, role authorization.UserRole, churchID *uint) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role, churchID)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

type mockRecorder struct {
	actions []string
}

func (m *mockRecorder) Record(userID uint, action, entityType string, entityID *uint, details map[string]any) {
	m.actions = append(m.actions, action)
}

type mockNotifier struct {
	kinds        []string
	verifyURLs   []string
	verifyTarget notification.Recipient
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
}

func (m *mockNotifier) ChurchRejected(event notification.ChurchEvent, recipients []notification.Recipient) {
	m.kinds = append(m.kinds, "church_rejected")
}

func (m *mockNotifier) VerificationEmail(recipient notification.Recipient, verifyURL string) {
	m.kinds = append(m.kinds, "verification")
	m.verifyURLs = append(m.verifyURLs, verifyURL)
	m.verifyTarget = recipient
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

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }
