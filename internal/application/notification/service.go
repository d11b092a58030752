package notification

import (
	"context"
	"time"

	"ministryshare/internal/domain/setting"
	"ministryshare/internal/shared/goroutine"
	"ministryshare/internal/shared/i18n"
	"ministryshare/internal/shared/logger"
	"ministryshare/internal/shared/services/markdown"
)

const sendTimeout = 30 * time.Second

type service struct {
	sender      Sender
	settingRepo setting.Repository
	markdown    markdown.Service
	logger      logger.Interface
}

// NewService wires the notifier. Workflow notifications consult the site
// settings gate on every dispatch so an admin toggle takes effect
// immediately.
func NewService(
	sender Sender,
	settingRepo setting.Repository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) Notifier {
	return &service{
		sender:      sender,
		settingRepo: settingRepo,
		markdown:    markdownSvc,
		logger:      logger,
	}
}

func (s *service) RequestCreated(event RequestEvent, recipients []Recipient) {
	messageHTML := s.renderUserText(event.Message)
	s.dispatchGated("request_created", recipients, func(l i18n.Locale) (string, string) {
		return subjectRequestCreated(l, event), bodyRequestCreated(l, event, messageHTML)
	})
}

func (s *service) RequestApproved(event RequestEvent, recipients []Recipient) {
	responseHTML := s.renderUserText(event.ResponseMessage)
	s.dispatchGated("request_approved", recipients, func(l i18n.Locale) (string, string) {
		return subjectRequestDecision(l, event, true), bodyRequestDecision(l, event, true, responseHTML)
	})
}

func (s *service) RequestDenied(event RequestEvent, recipients []Recipient) {
	responseHTML := s.renderUserText(event.ResponseMessage)
	s.dispatchGated("request_denied", recipients, func(l i18n.Locale) (string, string) {
		return subjectRequestDecision(l, event, false), bodyRequestDecision(l, event, false, responseHTML)
	})
}

func (s *service) RequestCancelled(event RequestEvent, recipients []Recipient) {
	s.dispatchGated("request_cancelled", recipients, func(l i18n.Locale) (string, string) {
		return subjectRequestCancelled(l, event), bodyRequestCancelled(l, event)
	})
}

func (s *service) LoanReturned(event LoanEvent, recipients []Recipient) {
	s.dispatchGated("loan_returned", recipients, func(l i18n.Locale) (string, string) {
		return subjectLoan(l, event, "returned"), bodyLoan(l, event, "returned")
	})
}

func (s *service) LoanOverdue(event LoanEvent, recipients []Recipient) {
	s.dispatchGated("loan_overdue", recipients, func(l i18n.Locale) (string, string) {
		return subjectLoan(l, event, "overdue"), bodyLoan(l, event, "overdue")
	})
}

func (s *service) LoanLost(event LoanEvent, recipients []Recipient) {
	s.dispatchGated("loan_lost", recipients, func(l i18n.Locale) (string, string) {
		return subjectLoan(l, event, "lost"), bodyLoan(l, event, "lost")
	})
}

func (s *service) ChurchApproved(event ChurchEvent, recipients []Recipient) {
	s.dispatchGated("church_approved", recipients, func(l i18n.Locale) (string, string) {
		return subjectChurchDecision(l, event, true), bodyChurchDecision(l, event, true)
	})
}

func (s *service) ChurchRejected(event ChurchEvent, recipients []Recipient) {
	s.dispatchGated("church_rejected", recipients, func(l i18n.Locale) (string, string) {
		return subjectChurchDecision(l, event, false), bodyChurchDecision(l, event, false)
	})
}

// VerificationEmail bypasses the settings gate: without it new accounts can
// never activate.
func (s *service) VerificationEmail(recipient Recipient, verifyURL string) {
	goroutine.SafeGo(s.logger, "notification.verification", func() {
		subject := subjectVerification(recipient.Locale)
		body := bodyVerification(recipient.Locale, verifyURL)
		if err := s.sender.Send(recipient.Email, recipient.DisplayName, subject, body); err != nil {
			s.logger.Warnw("failed to send verification email", "error", err, "to", recipient.Email)
		}
	})
}

// renderUserText pushes user-supplied free text through the markdown
// sanitizer so it is safe to embed in an HTML body.
func (s *service) renderUserText(text string) string {
	if text == "" {
		return ""
	}
	out, err := s.markdown.ToHTMLSanitized(text)
	if err != nil {
		s.logger.Warnw("failed to render user text for email", "error", err)
		return ""
	}
	return out
}

func (s *service) dispatchGated(kind string, recipients []Recipient, compose func(i18n.Locale) (string, string)) {
	if len(recipients) == 0 {
		return
	}
	goroutine.SafeGo(s.logger, "notification."+kind, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		settings, err := s.settingRepo.Get(ctx)
		if err != nil {
			s.logger.Warnw("failed to load site settings, skipping notification", "error", err, "kind", kind)
			return
		}
		if !settings.EmailNotifications() {
			s.logger.Debugw("email notifications disabled, skipping", "kind", kind)
			return
		}

		for _, r := range recipients {
			subject, body := compose(r.Locale)
			if err := s.sender.Send(r.Email, r.DisplayName, subject, body); err != nil {
				s.logger.Warnw("failed to send notification email",
					"error", err,
					"kind", kind,
					"to", r.Email,
				)
			}
		}
	})
}
