package pets

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	petService "github.com/m04kA/SMC-GroomingService/internal/service/pets"
	"github.com/m04kA/SMC-GroomingService/internal/service/pets/models"
)

const (
	msgInvalidPetID      = "некорректный ID питомца"
	msgInvalidCustomerID = "некорректный ID клиента"
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidInput      = "некорректные данные питомца"
	msgNotFound          = "питомец не найден"
	msgOwnerNotFound     = "владелец или порода не найдены"
	msgInUse             = "у питомца есть записи"
)

// Handler CRUD питомцев
type Handler struct {
	service PetService
	logger  Logger
}

func NewHandler(service PetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/pets?customerId=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	customerID, err := handlers.ParseOptionalID(r.URL.Query().Get("customerId"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	result, err := h.service.List(r.Context(), customerID)
	if err != nil {
		h.respondError(w, r, "GET /pets", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result.Pets)
}

// ListByCustomer GET /api/v1/customers/{customerId}/pets
func (h *Handler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := handlers.PathID(r, "customerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	result, err := h.service.List(r.Context(), &customerID)
	if err != nil {
		h.respondError(w, r, "GET /customers/{id}/pets", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result.Pets)
}

// Get GET /api/v1/pets/{petId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "petId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPetID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "GET /pets/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/pets
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.PetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pets - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, "POST /pets", err)
		return
	}

	h.logger.Info("POST /pets - Pet created: pet_id=%d, customer_id=%d", result.ID, result.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/pets/{petId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "petId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPetID)
		return
	}

	var req models.PetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /pets/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, r, "PUT /pets/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/pets/{petId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "petId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPetID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, "DELETE /pets/{id}", err)
		return
	}

	h.logger.Info("DELETE /pets/{id} - Pet deleted: pet_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, petService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, petService.ErrPetNotFound):
		h.logger.Warn("%s - Pet not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, petService.ErrOwnerNotFound):
		h.logger.Warn("%s - Owner or breed not found: %v", op, err)
		handlers.RespondNotFound(w, msgOwnerNotFound)

	case errors.Is(err, petService.ErrPetInUse):
		h.logger.Warn("%s - Pet in use: %v", op, err)
		handlers.RespondConflict(w, msgInUse)

	default:
		h.logger.Error("%s - Unexpected error: %v", op, err)
		handlers.RespondUnexpected(w, r, err)
	}
}
