package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// ServiceRequest тело создания и обновления услуги
type ServiceRequest struct {
	Title       string `json:"title" validate:"required,max=120"`
	Description string `json:"description" validate:"omitempty,max=500"`
	PriceCents  int64  `json:"priceCents" validate:"gte=0"`
	Active      *bool  `json:"active,omitempty"`
}

// ToDomain конвертирует запрос в domain модель; по умолчанию услуга активна
func (r *ServiceRequest) ToDomain(id int64) *domain.GroomingService {
	return &domain.GroomingService{
		ID:          id,
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		PriceCents:  r.PriceCents,
		Active:      r.Active == nil || *r.Active,
	}
}

// PerkRequest тело создания и обновления мимо
type PerkRequest struct {
	Title       string `json:"title" validate:"required,max=120"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Active      *bool  `json:"active,omitempty"`
}

// ToDomain конвертирует запрос в domain модель; по умолчанию мимо активно
func (r *PerkRequest) ToDomain(id int64) *domain.Perk {
	return &domain.Perk{
		ID:          id,
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Active:      r.Active == nil || *r.Active,
	}
}

// BreedRequest тело создания и обновления породы
type BreedRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PerkResponse ответ с данными мимо
type PerkResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BreedResponse ответ с данными породы
type BreedResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// PerkListResponse список мимо
type PerkListResponse struct {
	Perks []PerkResponse `json:"perks"`
}

// BreedListResponse список пород
type BreedListResponse struct {
	Breeds []BreedResponse `json:"breeds"`
}

// FromDomainService конвертирует услугу в DTO
func FromDomainService(s *domain.GroomingService) *ServiceResponse {
	return &ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		PriceCents:  s.PriceCents,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainPerk конвертирует мимо в DTO
func FromDomainPerk(p *domain.Perk) *PerkResponse {
	return &PerkResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromDomainBreed конвертирует породу в DTO
func FromDomainBreed(b *domain.DogBreed) *BreedResponse {
	return &BreedResponse{ID: b.ID, Name: b.Name}
}
