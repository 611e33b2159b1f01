package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// PetRequest тело создания и обновления питомца
type PetRequest struct {
	CustomerID int64  `json:"customerId" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required,max=80"`
	Species    string `json:"species" validate:"omitempty,max=40"`
	BreedID    *int64 `json:"breedId,omitempty" validate:"omitempty,gt=0"`
	Breed      string `json:"breed" validate:"omitempty,max=80"`
	Size       string `json:"size" validate:"omitempty,oneof=mini pequeno medio grande gigante"`
	Notes      string `json:"notes" validate:"omitempty,max=500"`
}

// ToDomain конвертирует запрос в domain модель
func (r *PetRequest) ToDomain(id int64) *domain.Pet {
	return &domain.Pet{
		ID:         id,
		CustomerID: r.CustomerID,
		Name:       strings.TrimSpace(r.Name),
		Species:    strings.TrimSpace(r.Species),
		BreedID:    r.BreedID,
		Breed:      strings.TrimSpace(r.Breed),
		Size:       r.Size,
		Notes:      r.Notes,
	}
}

// PetResponse ответ с данными питомца
type PetResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	Name       string    `json:"name"`
	Label      string    `json:"label"`
	Species    string    `json:"species,omitempty"`
	BreedID    *int64    `json:"breedId,omitempty"`
	Breed      string    `json:"breed,omitempty"`
	Size       string    `json:"size,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PetListResponse ответ со списком питомцев
type PetListResponse struct {
	Pets []PetResponse `json:"pets"`
}

// FromDomainPet конвертирует domain модель в DTO
func FromDomainPet(p *domain.Pet) *PetResponse {
	if p == nil {
		return nil
	}
	return &PetResponse{
		ID:         p.ID,
		CustomerID: p.CustomerID,
		Name:       p.Name,
		Label:      p.Label(),
		Species:    p.Species,
		BreedID:    p.BreedID,
		Breed:      p.Breed,
		Size:       p.Size,
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// FromDomainPetList конвертирует список питомцев
func FromDomainPetList(list []*domain.Pet) *PetListResponse {
	resp := &PetListResponse{Pets: make([]PetResponse, 0, len(list))}
	for _, p := range list {
		resp.Pets = append(resp.Pets, *FromDomainPet(p))
	}
	return resp
}
