package service

import (
	"fmt"
	"strings"
	"time"

	"go-inventario/internal/model"
	"go-inventario/internal/repository"
)

type SettingService interface {
	GetAll() ([]model.Setting, error)
	Get(key string) (*model.Setting, error)
	// Value returns the stored value, falling back to the seeded default.
	Value(key string) string
	Set(key, value string, actor Actor) (*model.Setting, error)
	SeedDefaults(overrides map[string]string) error
}

type settingService struct {
	repo     repository.SettingRepository
	defaults map[string]string
	publish  Publisher
}

func NewSettingService(repo repository.SettingRepository, hub Publisher) SettingService {
	defaults := make(map[string]string, len(model.DefaultSettings))
	for _, s := range model.DefaultSettings {
		defaults[s.Key] = s.Value
	}
	return &settingService{repo: repo, defaults: defaults, publish: publisherOrNop(hub)}
}

func (s *settingService) GetAll() ([]model.Setting, error) {
	return s.repo.FindAll()
}

func (s *settingService) Get(key string) (*model.Setting, error) {
	setting, err := s.repo.FindByKey(key)
	if err != nil {
		return nil, notFound(err, ErrSettingNotFound)
	}
	return setting, nil
}

func (s *settingService) Value(key string) string {
	if setting, err := s.repo.FindByKey(key); err == nil {
		return setting.Value
	}
	return s.defaults[key]
}

func (s *settingService) Set(key, value string, actor Actor) (*model.Setting, error) {
	if !model.IsKnownSetting(key) {
		return nil, ErrUnknownSetting
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("%w: value for '%s' is required", ErrValidation, key)
	}

	setting := &model.Setting{Key: key, Value: value, UpdatedAt: time.Now(), UpdatedBy: actor.ID}
	if err := s.repo.Upsert(setting); err != nil {
		return nil, err
	}

	s.publish.Publish("setting_updated", map[string]interface{}{
		"setting": map[string]interface{}{"key": key, "value": value},
		"user":    actor.payload(),
	})
	return setting, nil
}

// SeedDefaults stores missing settings. Overrides (usually from the
// environment) replace the built-in default of keys not stored yet.
func (s *settingService) SeedDefaults(overrides map[string]string) error {
	seeds := make([]model.Setting, 0, len(model.DefaultSettings))
	for _, def := range model.DefaultSettings {
		if v := strings.TrimSpace(overrides[def.Key]); v != "" {
			s.defaults[def.Key] = v
		}
		seeds = append(seeds, model.Setting{Key: def.Key, Value: s.defaults[def.Key]})
	}
	return s.repo.SeedDefaults(seeds)
}
