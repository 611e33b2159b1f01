package catalog

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	catalogService "github.com/m04kA/SMC-GroomingService/internal/service/catalog"
	"github.com/m04kA/SMC-GroomingService/internal/service/catalog/models"
)

const (
	msgInvalidID    = "некорректный ID"
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidInput = "некорректные данные справочника"
	msgNotFound     = "элемент справочника не найден"
	msgInUse        = "элемент справочника используется"
	msgDuplicate    = "элемент с таким названием уже существует"
)

// Handler CRUD справочников: услуги, доп. опции, породы
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListServices GET /api/v1/services?active=true
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListServices(r.Context(), handlers.ParseBool(r.URL.Query().Get("active")))
	if err != nil {
		h.respondError(w, r, "GET /services", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result.Services)
}

// GetService GET /api/v1/services/{serviceId}
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "serviceId")
	if !ok {
		return
	}
	result, err := h.service.GetService(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "GET /services/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// CreateService POST /api/v1/services
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req models.ServiceRequest
	if !h.decode(w, r, "POST /services", &req) {
		return
	}
	result, err := h.service.CreateService(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, "POST /services", err)
		return
	}
	h.logger.Info("POST /services - Service created: service_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateService PUT /api/v1/services/{serviceId}
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "serviceId")
	if !ok {
		return
	}
	var req models.ServiceRequest
	if !h.decode(w, r, "PUT /services/{id}", &req) {
		return
	}
	result, err := h.service.UpdateService(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, r, "PUT /services/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteService DELETE /api/v1/services/{serviceId}
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "serviceId")
	if !ok {
		return
	}
	if err := h.service.DeleteService(r.Context(), id); err != nil {
		h.respondError(w, r, "DELETE /services/{id}", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPerks GET /api/v1/perks?active=true
func (h *Handler) ListPerks(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPerks(r.Context(), handlers.ParseBool(r.URL.Query().Get("active")))
	if err != nil {
		h.respondError(w, r, "GET /perks", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result.Perks)
}

// GetPerk GET /api/v1/perks/{perkId}
func (h *Handler) GetPerk(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "perkId")
	if !ok {
		return
	}
	result, err := h.service.GetPerk(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "GET /perks/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// CreatePerk POST /api/v1/perks
func (h *Handler) CreatePerk(w http.ResponseWriter, r *http.Request) {
	var req models.PerkRequest
	if !h.decode(w, r, "POST /perks", &req) {
		return
	}
	result, err := h.service.CreatePerk(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, "POST /perks", err)
		return
	}
	h.logger.Info("POST /perks - Perk created: perk_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdatePerk PUT /api/v1/perks/{perkId}
func (h *Handler) UpdatePerk(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "perkId")
	if !ok {
		return
	}
	var req models.PerkRequest
	if !h.decode(w, r, "PUT /perks/{id}", &req) {
		return
	}
	result, err := h.service.UpdatePerk(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, r, "PUT /perks/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeletePerk DELETE /api/v1/perks/{perkId}
func (h *Handler) DeletePerk(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "perkId")
	if !ok {
		return
	}
	if err := h.service.DeletePerk(r.Context(), id); err != nil {
		h.respondError(w, r, "DELETE /perks/{id}", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListBreeds GET /api/v1/breeds
func (h *Handler) ListBreeds(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBreeds(r.Context())
	if err != nil {
		h.respondError(w, r, "GET /breeds", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result.Breeds)
}

// GetBreed GET /api/v1/breeds/{breedId}
func (h *Handler) GetBreed(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "breedId")
	if !ok {
		return
	}
	result, err := h.service.GetBreed(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "GET /breeds/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// CreateBreed POST /api/v1/breeds
func (h *Handler) CreateBreed(w http.ResponseWriter, r *http.Request) {
	var req models.BreedRequest
	if !h.decode(w, r, "POST /breeds", &req) {
		return
	}
	result, err := h.service.CreateBreed(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, "POST /breeds", err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateBreed PUT /api/v1/breeds/{breedId}
func (h *Handler) UpdateBreed(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "breedId")
	if !ok {
		return
	}
	var req models.BreedRequest
	if !h.decode(w, r, "PUT /breeds/{id}", &req) {
		return
	}
	result, err := h.service.UpdateBreed(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, r, "PUT /breeds/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteBreed DELETE /api/v1/breeds/{breedId}
func (h *Handler) DeleteBreed(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "breedId")
	if !ok {
		return
	}
	if err := h.service.DeleteBreed(r.Context(), id); err != nil {
		h.respondError(w, r, "DELETE /breeds/{id}", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := handlers.PathID(r, name)
	if err != nil {
		h.logger.Warn("%s %s - Invalid ID: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return 0, false
	}
	return id, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, op string, dst interface{}) bool {
	if err := handlers.DecodeJSON(r, dst); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return false
	}
	return true
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, catalogService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, catalogService.ErrNotFound):
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, catalogService.ErrInUse):
		h.logger.Warn("%s - Still referenced: %v", op, err)
		handlers.RespondConflict(w, msgInUse)

	case errors.Is(err, catalogService.ErrDuplicate):
		handlers.RespondConflict(w, msgDuplicate)

	default:
		h.logger.Error("%s - Unexpected error: %v", op, err)
		handlers.RespondUnexpected(w, r, err)
	}
}
