package logout

import (
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), handlers.BearerToken(r)); err != nil {
		h.logger.Error("POST /auth/logout - Failed to logout: %v", err)
		handlers.RespondUnexpected(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
