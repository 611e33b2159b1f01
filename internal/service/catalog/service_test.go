package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-GroomingService/internal/service/catalog/models"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
	"github.com/m04kA/SMC-GroomingService/pkg/ptr"
)

type memServices struct{ items map[int64]*domain.GroomingService }

func (m *memServices) Create(ctx context.Context, s *domain.GroomingService) (*domain.GroomingService, error) {
	s.ID = int64(len(m.items) + 1)
	m.items[s.ID] = s
	return s, nil
}

func (m *memServices) GetByID(ctx context.Context, id int64) (*domain.GroomingService, error) {
	if s, ok := m.items[id]; ok {
		return s, nil
	}
	return nil, catalogRepo.ErrNotFound
}

func (m *memServices) List(ctx context.Context, onlyActive bool) ([]*domain.GroomingService, error) {
	out := make([]*domain.GroomingService, 0)
	for _, s := range m.items {
		if !onlyActive || s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memServices) Update(ctx context.Context, s *domain.GroomingService) (*domain.GroomingService, error) {
	if _, ok := m.items[s.ID]; !ok {
		return nil, catalogRepo.ErrNotFound
	}
	m.items[s.ID] = s
	return s, nil
}

func (m *memServices) Delete(ctx context.Context, id int64) error {
	return catalogRepo.ErrInUse
}

type dupBreeds struct{ BreedRepository }

func (dupBreeds) Create(ctx context.Context, b *domain.DogBreed) (*domain.DogBreed, error) {
	return nil, catalogRepo.ErrDuplicate
}

func TestServices_CRUD(t *testing.T) {
	repo := &memServices{items: map[int64]*domain.GroomingService{}}
	svc := NewService(repo, nil, nil, logger.NewNop())
	ctx := context.Background()

	created, err := svc.CreateService(ctx, &models.ServiceRequest{Title: "Banho", PriceCents: 5000})
	require.NoError(t, err)
	assert.True(t, created.Active)

	_, err = svc.UpdateService(ctx, created.ID, &models.ServiceRequest{Title: "Banho", PriceCents: 5500, Active: ptr.Ptr(false)})
	require.NoError(t, err)

	active, err := svc.ListServices(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active.Services)

	_, err = svc.GetService(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.DeleteService(ctx, created.ID), ErrInUse)
}

func TestServices_Validation(t *testing.T) {
	svc := NewService(&memServices{items: map[int64]*domain.GroomingService{}}, nil, nil, logger.NewNop())

	_, err := svc.CreateService(context.Background(), &models.ServiceRequest{Title: "Tosa", PriceCents: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBreeds_Duplicate(t *testing.T) {
	svc := NewService(nil, nil, dupBreeds{}, logger.NewNop())

	_, err := svc.CreateBreed(context.Background(), &models.BreedRequest{Name: "Poodle"})
	assert.ErrorIs(t, err, ErrDuplicate)
}
