package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/witherings/PocePao-sub001/internal/repository"
)

const (
	maintenanceKey      = "maintenance_mode"
	maintenanceCacheKey = "settings:maintenance_mode"
)

// SettingsService answers the maintenance flag on the hot path, so the value
// is cached in redis for a few seconds instead of hitting MySQL per request.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	rdb          *redis.Client
}

// NewSettingsService creates a new instance of SettingsService.
func NewSettingsService(settingsRepo repository.SettingsRepository, rdb *redis.Client) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		rdb:          rdb,
	}
}

// MaintenanceMode reports whether the public site is switched off. Lookup
// failures answer false so an infrastructure hiccup never locks visitors out.
func (s *SettingsService) MaintenanceMode(ctx context.Context) bool {
	cached, err := s.rdb.Get(ctx, maintenanceCacheKey).Result()
	if err == nil {
		return cached == "on"
	}
	if !errors.Is(err, redis.Nil) {
		logger.Error().Err(err).Msg("Error reading maintenance flag from cache")
	}

	value, err := s.settingsRepo.GetSetting(ctx, maintenanceKey)
	if err != nil {
		logger.Error().Err(err).Msg("Error reading maintenance flag")
		return false
	}
	if value == "" {
		value = "off"
	}

	if err := s.rdb.Set(ctx, maintenanceCacheKey, value, 10*time.Second).Err(); err != nil {
		logger.Error().Err(err).Msg("Error caching maintenance flag")
	}

	return value == "on"
}

func (s *SettingsService) SetMaintenanceMode(ctx context.Context, on bool) error {
	value := "off"
	if on {
		value = "on"
	}

	if err := s.settingsRepo.SetSetting(ctx, maintenanceKey, value); err != nil {
		logger.Error().Err(err).Msg("Error setting maintenance flag")
		return err
	}

	if err := s.rdb.Set(ctx, maintenanceCacheKey, value, 10*time.Second).Err(); err != nil {
		logger.Error().Err(err).Msg("Error caching maintenance flag")
	}

	return nil
}
