// Package notification composes and dispatches workflow emails. All sends
// are best-effort: failures are logged and never surfaced to the caller.
package notification

import "ministryshare/internal/shared/i18n"

// Recipient is an email target with a negotiated display locale.
type Recipient struct {
	Email       string
	DisplayName string
	Locale      i18n.Locale
}

// Sender delivers a composed email. Implemented by the SMTP service.
type Sender interface {
	Send(to, toName, subject, htmlBody string) error
}

// RequestEvent carries the context of a loan request notification.
type RequestEvent struct {
	ResourceTitle   string
	RequesterChurch string
	OwnerChurch     string
	ReturnByDate    string
	Message         string
	ResponseMessage string
}

// LoanEvent carries the context of a loan lifecycle notification.
type LoanEvent struct {
	ResourceTitle   string
	BorrowingChurch string
	LendingChurch   string
	DueDate         string
	Notes           string
}

// ChurchEvent carries the context of a registration decision notification.
type ChurchEvent struct {
	ChurchName      string
	RejectionReason string
}

// Notifier is the application-facing surface. Workflow notifications honor
// the site-wide email gate; verification emails always send.
type Notifier interface {
	RequestCreated(event RequestEvent, recipients []Recipient)
	RequestApproved(event RequestEvent, recipients []Recipient)
	RequestDenied(event RequestEvent, recipients []Recipient)
	RequestCancelled(event RequestEvent, recipients []Recipient)
	LoanReturned(event LoanEvent, recipients []Recipient)
	LoanOverdue(event LoanEvent, recipients []Recipient)
	LoanLost(event LoanEvent, recipients []Recipient)
	ChurchApproved(event ChurchEvent, recipients []Recipient)
	ChurchRejected(event ChurchEvent, recipients []Recipient)
	VerificationEmail(recipient Recipient, verifyURL string)
}
