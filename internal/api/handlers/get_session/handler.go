package get_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/barberbook/internal/api/handlers"
	"github.com/m04kA/barberbook/internal/api/middleware"
	"github.com/m04kA/barberbook/internal/service/session"
)

const (
	msgUnauthorized = "требуется вход"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/auth/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Describe(r.Context(), sess)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidToken):
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("GET /auth/session - Failed to describe session: account_id=%s, error=%v", sess.AccountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
