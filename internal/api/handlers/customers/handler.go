package customers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	customerService "github.com/m04kA/SMC-GroomingService/internal/service/customers"
	"github.com/m04kA/SMC-GroomingService/internal/service/customers/models"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidInput      = "некорректные данные клиента"
	msgNotFound          = "клиент не найден"
	msgInUse             = "у клиента есть питомцы или записи"
)

// Handler CRUD клиентов
type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/customers?search=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.respondError(w, r, "GET /customers", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result.Customers)
}

// Get GET /api/v1/customers/{customerId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "customerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "GET /customers/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/customers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, "POST /customers", err)
		return
	}

	h.logger.Info("POST /customers - Customer created: customer_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/customers/{customerId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "customerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	var req models.CustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /customers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, r, "PUT /customers/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/customers/{customerId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "customerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, "DELETE /customers/{id}", err)
		return
	}

	h.logger.Info("DELETE /customers/{id} - Customer deleted: customer_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, customerService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, customerService.ErrCustomerNotFound):
		h.logger.Warn("%s - Customer not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, customerService.ErrCustomerInUse):
		h.logger.Warn("%s - Customer in use: %v", op, err)
		handlers.RespondConflict(w, msgInUse)

	default:
		h.logger.Error("%s - Unexpected error: %v", op, err)
		handlers.RespondUnexpected(w, r, err)
	}
}
