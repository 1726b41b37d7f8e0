package service

import (
	"context"
	"testing"

	"gamecharge/internal/model"
	"gamecharge/internal/ws"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_UpdateSettings_Broadcasts(t *testing.T) {
	ctx := context.Background()

	repo := new(MockSettingsRepository)
	broadcaster := &recordingBroadcaster{}

	siteName := "شحن العاب"
	updated := model.SiteSettings{ID: 1, SiteName: siteName}
	repo.On("UpdateSettings", ctx, model.SettingsUpdate{SiteName: &siteName}).Return(updated, nil)

	svc := NewSettingsService(repo, broadcaster, zerolog.Nop())

	settings, err := svc.UpdateSettings(ctx, model.SettingsUpdate{SiteName: &siteName})
	require.NoError(t, err)
	assert.Equal(t, siteName, settings.SiteName)

	events := broadcaster.Events()
	require.Len(t, events, 1)
	assert.Equal(t, ws.EventSettingsUpdated, events[0].Type)
	assert.Equal(t, updated, events[0].Data)
}

func TestSettingsService_GetSettings(t *testing.T) {
	ctx := context.Background()

	repo := new(MockSettingsRepository)
	repo.On("GetSettings", ctx).Return(model.SiteSettings{ID: 1, SiteName: "GameCharge"}, nil)

	svc := NewSettingsService(repo, &recordingBroadcaster{}, zerolog.Nop())

	settings, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "GameCharge", settings.SiteName)
}
