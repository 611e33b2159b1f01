package models

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// Request модели

// RuleRequest правило одного дня недели во входящем запросе
type RuleRequest struct {
	DOW            int     `json:"dow"`
	IsClosed       bool    `json:"isClosed"`
	OpenTime       *string `json:"openTime,omitempty"`
	CloseTime      *string `json:"closeTime,omitempty"`
	MaxPerHalfHour *int    `json:"maxPerHalfHour,omitempty"`
}

// ReplaceRequest заменяет таблицу целиком
type ReplaceRequest struct {
	Rules []RuleRequest `json:"rules"`
}

// Response модели

// RuleResponse правило дня недели в ответе
type RuleResponse struct {
	DOW            int               `json:"dow"`
	IsClosed       bool              `json:"isClosed"`
	OpenTime       *types.TimeString `json:"openTime"`
	CloseTime      *types.TimeString `json:"closeTime"`
	MaxPerHalfHour int               `json:"maxPerHalfHour"`
	UpdatedAt      *time.Time        `json:"updatedAt,omitempty"`
}

// OpeningHoursResponse все семь дней недели
type OpeningHoursResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// FromDomainSchedule конвертирует расписание в DTO, отсутствующие дни отдаются закрытыми
func FromDomainSchedule(schedule domain.WeeklySchedule) *OpeningHoursResponse {
	rules := schedule.Rules()
	resp := &OpeningHoursResponse{Rules: make([]RuleResponse, 0, len(rules))}
	for _, r := range rules {
		item := RuleResponse{
			DOW:            r.DOW,
			IsClosed:       r.IsClosed,
			OpenTime:       r.OpenTime,
			CloseTime:      r.CloseTime,
			MaxPerHalfHour: r.MaxPerHalfHour,
		}
		if !r.UpdatedAt.IsZero() {
			updatedAt := r.UpdatedAt
			item.UpdatedAt = &updatedAt
		}
		resp.Rules = append(resp.Rules, item)
	}
	return resp
}
