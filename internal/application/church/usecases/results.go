// Package usecases implements church registration, admin review, and church
// management.
package usecases

import (
	"context"
	"time"

	"ministryshare/internal/application/notification"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/i18n"
	"ministryshare/internal/shared/logger"
)

// ChurchResult is the API-facing shape of a church.
type ChurchResult struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	NameEs             string    `json:"name_es,omitempty"`
	Address            string    `json:"address,omitempty"`
	City               string    `json:"city,omitempty"`
	State              string    `json:"state,omitempty"`
	Zip                string    `json:"zip,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Email              string    `json:"email,omitempty"`
	Pastor             string    `json:"pastor,omitempty"`
	Website            string    `json:"website,omitempty"`
	Description        string    `json:"description,omitempty"`
	DescriptionEs      string    `json:"description_es,omitempty"`
	RegistrationStatus string    `json:"registration_status"`
	RejectionReason    string    `json:"rejection_reason,omitempty"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func toChurchResult(c *church.Church) *ChurchResult {
	p := c.Profile()
	return &ChurchResult{
		ID:                 c.ID(),
		Name:               c.Name(),
		NameEs:             p.NameEs,
		Address:            p.Address,
		City:               p.City,
		State:              p.State,
		Zip:                p.Zip,
		Phone:              p.Phone,
		Email:              p.Email,
		Pastor:             p.Pastor,
		Website:            p.Website,
		Description:        p.Description,
		DescriptionEs:      p.DescriptionEs,
		RegistrationStatus: c.RegistrationStatus().String(),
		RejectionReason:    c.RejectionReason(),
		IsActive:           c.IsActive(),
		CreatedAt:          c.CreatedAt(),
		UpdatedAt:          c.UpdatedAt(),
	}
}

// churchRecipients resolves who hears about a registration decision: the
// church's contact address plus its active members, deduped by email.
func churchRecipients(ctx context.Context, userRepo user.Repository, log logger.Interface, c *church.Church) []notification.Recipient {
	var recipients []notification.Recipient
	seen := make(map[string]bool)

	if contact := c.Profile().Email; contact != "" {
		recipients = append(recipients, notification.Recipient{
			Email:       contact,
			DisplayName: c.Name(),
			Locale:      i18n.LocaleEnglish,
		})
		seen[contact] = true
	}

	members, err := userRepo.ListByChurch(ctx, c.ID())
	if err != nil {
		log.Warnw("failed to resolve church members", "error", err, "church_id", c.ID())
		return recipients
	}
	for _, m := range members {
		if !m.IsActive() || seen[m.Email()] {
			continue
		}
		seen[m.Email()] = true
		recipients = append(recipients, notification.Recipient{
			Email:       m.Email(),
			DisplayName: m.DisplayName(),
			Locale:      m.PreferredLocale(),
		})
	}
	return recipients
}

func profileFromCommand(cmd ChurchProfileInput) church.Profile {
	return church.Profile{
		NameEs:        cmd.NameEs,
		Address:       cmd.Address,
		City:          cmd.City,
		State:         cmd.State,
		Zip:           cmd.Zip,
		Phone:         cmd.Phone,
		Email:         cmd.Email,
		Pastor:        cmd.Pastor,
		Website:       cmd.Website,
		Description:   cmd.Description,
		DescriptionEs: cmd.DescriptionEs,
	}
}

// ChurchProfileInput carries the writable profile fields shared by the
// register, create, and update commands.
type ChurchProfileInput struct {
	NameEs        string
	Address       string
	City          string
	State         string
	Zip           string
	Phone         string
	Email         string
	Pastor        string
	Website       string
	Description   string
	DescriptionEs string
}
