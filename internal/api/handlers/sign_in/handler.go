package sign_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/barberbook/internal/api/handlers"
	"github.com/m04kA/barberbook/internal/service/session"
	"github.com/m04kA/barberbook/internal/service/session/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/auth/sign-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidCredentials):
			// Сообщение об ошибке входа показывается пользователю как есть
			h.logger.Warn("POST /auth/sign-in - Invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, err.Error())

		default:
			h.logger.Error("POST /auth/sign-in - Failed to sign in: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/sign-in - Signed in: account_id=%s", result.Session.AccountID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
