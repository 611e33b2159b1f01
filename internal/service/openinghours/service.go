package openinghours

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/service/openinghours/models"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// Service сервис таблицы часов работы.
// Чтение идёт через кеш; при недоступности хранилища отдаётся последняя успешно прочитанная копия.
type Service struct {
	repo      Repository
	cache     Cache
	txManager TxManager
	logger    Logger

	mu        sync.RWMutex
	lastKnown domain.WeeklySchedule
}

// NewService создает новый экземпляр сервиса часов работы; cache может быть nil
func NewService(repo Repository, cache Cache, txManager TxManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		txManager: txManager,
		logger:    logger,
	}
}

// GetSchedule returns the current weekly schedule
func (s *Service) GetSchedule(ctx context.Context) (domain.WeeklySchedule, error) {
	if s.cache != nil {
		rules, found, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("GetSchedule: cache read failed: %v", err)
		}
		if found {
			schedule := domain.NewWeeklySchedule(rules)
			s.remember(schedule)
			return schedule, nil
		}
	}

	rules, err := s.repo.List(ctx)
	if err != nil {
		if last, ok := s.lastKnownGood(); ok {
			s.logger.Warn("GetSchedule: repository error, serving last known schedule: %v", err)
			return last, nil
		}
		s.logger.Error("GetSchedule: repository error and no cached schedule: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - %w", ErrUnavailable, err)
	}

	if len(rules) == 0 {
		rules, err = s.seed(ctx)
		if err != nil {
			return nil, err
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, rules); err != nil {
			s.logger.Warn("GetSchedule: cache write failed: %v", err)
		}
	}

	schedule := domain.NewWeeklySchedule(rules)
	s.remember(schedule)
	return schedule, nil
}

// Get returns all seven days for the admin screen
func (s *Service) Get(ctx context.Context) (*models.OpeningHoursResponse, error) {
	schedule, err := s.GetSchedule(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSchedule(schedule), nil
}

// Replace validates and stores the whole weekly table in one transaction
func (s *Service) Replace(ctx context.Context, req *models.ReplaceRequest) (*models.OpeningHoursResponse, error) {
	s.logger.Info("Replace: saving %d opening hours rules", len(req.Rules))

	rules, err := ValidateRules(req.Rules)
	if err != nil {
		s.logger.Warn("Replace: validation failed: %v", err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.ReplaceAll(ctx, rules)
	})
	if err != nil {
		s.logger.Error("Replace: repository error: %v", err)
		return nil, fmt.Errorf("%w: Replace - repository error: %w", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("Replace: cache invalidation failed: %v", err)
		}
	}

	schedule := domain.NewWeeklySchedule(rules)
	s.remember(schedule)

	s.logger.Info("Replace: opening hours saved")
	return models.FromDomainSchedule(schedule), nil
}

// EnsureSeeded writes the default schedule when the table is empty
func (s *Service) EnsureSeeded(ctx context.Context) error {
	rules, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("%w: EnsureSeeded - %w", ErrUnavailable, err)
	}
	if len(rules) > 0 {
		return nil
	}
	_, err = s.seed(ctx)
	return err
}

func (s *Service) seed(ctx context.Context) ([]domain.OpeningHoursRule, error) {
	defaults := domain.DefaultOpeningHours()
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.ReplaceAll(ctx, defaults)
	})
	if err != nil {
		s.logger.Error("seed: failed to store default opening hours: %v", err)
		return nil, fmt.Errorf("%w: seed - %w", ErrInternal, err)
	}
	s.logger.Info("seed: opening hours table was empty, default schedule stored")
	return defaults, nil
}

func (s *Service) remember(schedule domain.WeeklySchedule) {
	s.mu.Lock()
	s.lastKnown = schedule
	s.mu.Unlock()
}

func (s *Service) lastKnownGood() (domain.WeeklySchedule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastKnown, s.lastKnown != nil
}

// ValidateRules проверяет недельную таблицу и возвращает все семь дней по порядку.
// Дни, которых нет во входных данных, становятся выходными.
func ValidateRules(in []models.RuleRequest) ([]domain.OpeningHoursRule, error) {
	seen := make(map[int]bool, len(in))
	byDOW := make(map[int]domain.OpeningHoursRule, len(in))

	for _, r := range in {
		if r.DOW < 0 || r.DOW > 6 {
			return nil, fmt.Errorf("%w: dow %d out of range 0..6", ErrInvalidInput, r.DOW)
		}
		if seen[r.DOW] {
			return nil, fmt.Errorf("%w: duplicate dow %d", ErrInvalidInput, r.DOW)
		}
		seen[r.DOW] = true

		if r.IsClosed {
			byDOW[r.DOW] = domain.ClosedRule(r.DOW)
			continue
		}

		if r.OpenTime == nil || r.CloseTime == nil {
			return nil, fmt.Errorf("%w: dow %d: open day needs openTime and closeTime", ErrInvalidInput, r.DOW)
		}
		open, ok := types.NormalizeHalfHour(*r.OpenTime)
		if !ok {
			return nil, fmt.Errorf("%w: dow %d: openTime %q must be HH:MM on the half hour", ErrInvalidInput, r.DOW, *r.OpenTime)
		}
		closeTime, ok := types.NormalizeHalfHour(*r.CloseTime)
		if !ok {
			return nil, fmt.Errorf("%w: dow %d: closeTime %q must be HH:MM on the half hour", ErrInvalidInput, r.DOW, *r.CloseTime)
		}
		if closeTime.IsBefore(open) {
			return nil, fmt.Errorf("%w: dow %d: closeTime before openTime", ErrInvalidInput, r.DOW)
		}

		rule := domain.OpenRule(r.DOW, open, closeTime)
		if r.MaxPerHalfHour != nil {
			if *r.MaxPerHalfHour < 0 || *r.MaxPerHalfHour > domain.MaxPerHalfHourCap {
				return nil, fmt.Errorf("%w: dow %d: maxPerHalfHour out of range", ErrInvalidInput, r.DOW)
			}
			rule.MaxPerHalfHour = *r.MaxPerHalfHour
		}
		byDOW[r.DOW] = rule.Normalized()
	}

	rules := make([]domain.OpeningHoursRule, 0, 7)
	for dow := 0; dow <= 6; dow++ {
		rule, ok := byDOW[dow]
		if !ok {
			rule = domain.ClosedRule(dow)
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
