// Package usecases implements the admin site settings surface.
package usecases

import (
	"context"
	"fmt"
	"time"

	"ministryshare/internal/application/activity"
	"ministryshare/internal/domain/setting"
	"ministryshare/internal/shared/constants"
	"ministryshare/internal/shared/logger"
)

// SettingsResult is the API-facing shape of the site settings.
type SettingsResult struct {
	EmailNotifications bool      `json:"email_notifications"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type UpdateSettingsCommand struct {
	ActorUserID        uint
	EmailNotifications bool
}

// SiteSettingsUseCase reads and updates the settings singleton.
type SiteSettingsUseCase struct {
	settingRepo setting.Repository
	recorder    activity.Recorder
	logger      logger.Interface
}

func NewSiteSettingsUseCase(settingRepo setting.Repository, recorder activity.Recorder, logger logger.Interface) *SiteSettingsUseCase {
	return &SiteSettingsUseCase{settingRepo: settingRepo, recorder: recorder, logger: logger}
}

func (uc *SiteSettingsUseCase) Get(ctx context.Context) (*SettingsResult, error) {
	settings, err := uc.settingRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load site settings", "error", err)
		return nil, fmt.Errorf("failed to load site settings: %w", err)
	}
	return toSettingsResult(settings), nil
}

func (uc *SiteSettingsUseCase) Update(ctx context.Context, cmd UpdateSettingsCommand) (*SettingsResult, error) {
	settings, err := uc.settingRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load site settings", "error", err)
		return nil, fmt.Errorf("failed to load site settings: %w", err)
	}

	settings.SetEmailNotifications(cmd.EmailNotifications)

	if err := uc.settingRepo.Save(ctx, settings); err != nil {
		uc.logger.Errorw("failed to save site settings", "error", err)
		return nil, fmt.Errorf("failed to save site settings: %w", err)
	}

	uc.logger.Infow("site settings updated", "email_notifications", cmd.EmailNotifications)

	uc.recorder.Record(cmd.ActorUserID, constants.ActionUpdateSettings, constants.EntitySettings, nil, map[string]any{
		"email_notifications": cmd.EmailNotifications,
	})
	return toSettingsResult(settings), nil
}

func toSettingsResult(s *setting.SiteSettings) *SettingsResult {
	return &SettingsResult{
		EmailNotifications: s.EmailNotifications(),
		UpdatedAt:          s.UpdatedAt(),
	}
}
