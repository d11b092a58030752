package usecases

import (
	"fmt"
	"testing"
	"time"

	"ministryshare/internal/domain/catalog"
	catalogvo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/domain/lending"
	lendingvo "ministryshare/internal/domain/lending/valueobjects"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/i18n"
)

const (
	ownerChurchID     = uint(1)
	requesterChurchID = uint(2)
	requesterUserID   = uint(20)
	ownerUserID       = uint(10)
)

func uintPtr(v uint) *uint { return &v }

func testResource(t *testing.T, availability catalogvo.AvailabilityStatus) *catalog.Resource {
	t.Helper()
	r, err := catalog.ReconstructResource(
		100, ownerChurchID, catalogvo.CategoryMusic, "Hymnal Collection",
		catalog.Attributes{Quantity: 1},
		availability, nil, time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("ReconstructResource() error = %v", err)
	}
	return r
}

func testPendingRequest(t *testing.T) *lending.LoanRequest {
	t.Helper()
	r, err := lending.ReconstructLoanRequest(
		50, 100, requesterChurchID, requesterUserID,
		nil, time.Now().AddDate(0, 0, 28), "for choir practice",
		lendingvo.RequestPending, "", nil, nil,
		time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("ReconstructLoanRequest() error = %v", err)
	}
	return r
}

func testOpenLoan(t *testing.T, status lendingvo.LoanStatus) *lending.Loan {
	t.Helper()
	l, err := lending.ReconstructLoan(
		70, 100, 50, ownerChurchID, requesterChurchID,
		status, time.Now().AddDate(0, 0, 14), nil, "",
		time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("ReconstructLoan() error = %v", err)
	}
	return l
}

func testMember(t *testing.T, id uint, email string, locale i18n.Locale) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(
		id, fmt.Sprintf("member%d", id), "Member", email, "hash",
		authorization.RoleEditor, uintPtr(requesterChurchID), locale,
		true, true, nil, nil, time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("ReconstructUser() error = %v", err)
	}
	return u
}

func testActiveChurch(t *testing.T, id uint, name string) *church.Church {
	t.Helper()
	c, err := church.ReconstructChurch(
		id, name, church.Profile{},
		church.RegistrationApproved, "", true,
		time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("ReconstructChurch() error = %v", err)
	}
	return c
}
