package service

import (
	"context"

	"gamecharge/internal/model"
	"gamecharge/internal/repository"
	"gamecharge/internal/ws"

	"github.com/rs/zerolog"
)

// settingsService implements SettingsService.
type settingsService struct {
	settings    repository.SettingsRepository
	broadcaster Broadcaster
	logger      zerolog.Logger
}

// NewSettingsService creates the settings service.
func NewSettingsService(settings repository.SettingsRepository, broadcaster Broadcaster, logger zerolog.Logger) SettingsService {
	return &settingsService{
		settings:    settings,
		broadcaster: broadcaster,
		logger:      logger.With().Str("service", "settings").Logger(),
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (model.SiteSettings, error) {
	return s.settings.GetSettings(ctx)
}

// UpdateSettings merges the partial edit and pushes the new settings to every
// connected client.
func (s *settingsService) UpdateSettings(ctx context.Context, upd model.SettingsUpdate) (model.SiteSettings, error) {
	settings, err := s.settings.UpdateSettings(ctx, upd)
	if err != nil {
		return model.SiteSettings{}, err
	}

	s.logger.Info().Msg("site settings updated")
	s.broadcaster.Broadcast(ws.EventSettingsUpdated, settings)
	return settings, nil
}
