package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/config"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/constants"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/cache"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

var ErrSettingNotFound = errors.New("setting not found")

type Service interface {
	// All returns every setting as a flat map, served from cache when warm
	All(ctx context.Context) (map[string]string, error)
	Get(ctx context.Context, key string) (string, error)

	// Currency never fails; it falls back to the configured default
	Currency(ctx context.Context) string

	// Number parses a numeric setting, returning fallback when absent or malformed
	Number(ctx context.Context, key string, fallback float64) float64

	Set(ctx context.Context, key, value, adminID string) (*Setting, error)
}

type service struct {
	repo     Repository
	cache    cache.Service
	defaults config.DefaultsConfig
	log      *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service, defaults config.DefaultsConfig, log *logger.Logger) Service {
	if log == nil {
		log = logger.GetDefault()
	}
	return &service{
		repo:     repo,
		cache:    cacheService,
		defaults: defaults,
		log:      log.WithComponent("settings"),
	}
}

func (s *service) All(ctx context.Context) (map[string]string, error) {
	values := map[string]string{}
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_SETTINGS_ALL, constants.TTL_SETTINGS, func() (interface{}, error) {
		rows, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		m := make(map[string]string, len(rows))
		for _, row := range rows {
			m[row.Key] = row.Value
		}
		return m, nil
	}, &values)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return values, nil
}

func (s *service) Get(ctx context.Context, key string) (string, error) {
	all, err := s.All(ctx)
	if err != nil {
		return "", err
	}
	value, ok := all[key]
	if !ok {
		return "", ErrSettingNotFound
	}
	return value, nil
}

func (s *service) Currency(ctx context.Context) string {
	value, err := s.Get(ctx, KeyCurrency)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			s.log.Warn("currency lookup failed, using default", slog.String("error", err.Error()))
		}
		return s.defaults.Currency
	}
	if strings.TrimSpace(value) == "" {
		return s.defaults.Currency
	}
	return value
}

func (s *service) Number(ctx context.Context, key string, fallback float64) float64 {
	value, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			s.log.Warn("setting lookup failed, using fallback",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return fallback
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (s *service) Set(ctx context.Context, key, value, adminID string) (*Setting, error) {
	setting, err := s.repo.Upsert(ctx, key, value)
	if err != nil {
		return nil, fmt.Errorf("failed to save setting %q: %w", key, err)
	}

	if err := s.cache.Delete(ctx, constants.CACHE_KEY_SETTINGS_ALL); err != nil {
		s.log.Warn("failed to invalidate settings cache", slog.String("error", err.Error()))
	}

	s.log.LogSettingUpdated(ctx, key, adminID)
	return setting, nil
}

// stringify renders a decoded JSON value the way it was written
func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
