package pages

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/barberbook/internal/api/handlers"
	"github.com/m04kA/barberbook/internal/api/middleware"
	"github.com/m04kA/barberbook/internal/service/appointments"
	"github.com/m04kA/barberbook/internal/service/session"
	"github.com/m04kA/barberbook/internal/service/session/models"
	getAvailableSlots "github.com/m04kA/barberbook/internal/usecase/get_available_slots"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	loginPath = "/login"
	adminPath = "/admin"

	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden   = "доступ запрещен"

	msgMisconfigured = "расписание настроено некорректно, проверьте часы работы"
)

// Handler серверные страницы: вход, кабинет владельца и публичная страница записи
type Handler struct {
	sessions  SessionService
	days      DayReader
	slots     SlotsUseCase
	cookie    CookieOptions
	location  *time.Location
	templates *template.Template
	logger    Logger
}

func NewHandler(
	sessions SessionService,
	days DayReader,
	slots SlotsUseCase,
	cookie CookieOptions,
	location *time.Location,
	logger Logger,
) (*Handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Handler{
		sessions:  sessions,
		days:      days,
		slots:     slots,
		cookie:    cookie,
		location:  location,
		templates: tmpl,
		logger:    logger,
	}, nil
}

// Root GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, loginPath, http.StatusFound)
}

// LoginPage GET /login
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSession(r.Context()); ok {
		http.Redirect(w, r, adminPath, http.StatusFound)
		return
	}
	h.render(w, http.StatusOK, "login.html", &loginView{})
}

// Login POST /login
// Принимает форму или JSON (email, password), при успехе ставит cookie сессии
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := parseLoginRequest(r)
	if err != nil {
		h.render(w, http.StatusBadRequest, "login.html", &loginView{Error: "некорректная форма"})
		return
	}

	result, err := h.sessions.SignIn(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidCredentials):
			h.logger.Warn("POST /login - Invalid credentials: email=%s", req.Email)
			h.render(w, http.StatusUnauthorized, "login.html", &loginView{Email: req.Email, Error: err.Error()})

		default:
			h.logger.Error("POST /login - Failed to sign in: email=%s, error=%v", req.Email, err)
			h.render(w, http.StatusInternalServerError, "login.html", &loginView{Email: req.Email, Error: "внутренняя ошибка сервера"})
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    result.AccessToken,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /login - Signed in: account_id=%s", result.Session.AccountID)
	http.Redirect(w, r, adminPath, http.StatusSeeOther)
}

// Logout POST /logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := middleware.GetToken(r.Context()); ok {
		if err := h.sessions.SignOut(r.Context(), token); err != nil {
			// Cookie все равно удаляем, токен истечет сам
			h.logger.Warn("POST /logout - Failed to revoke session: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

// Admin GET /admin?date=
func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		http.Redirect(w, r, loginPath, http.StatusFound)
		return
	}
	if !sess.Role.CanManageSchedule() {
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	date, err := handlers.ParseDate(r.URL.Query().Get("date"), time.Now(), h.location)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	day, err := h.days.GetDay(r.Context(), sess.AccountID, date)
	if err != nil {
		if errors.Is(err, appointments.ErrScheduleMisconfigured) {
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgMisconfigured)
			return
		}
		h.logger.Error("GET /admin - Failed to load day: account=%s, error=%v", sess.AccountID, err)
		handlers.RespondInternalError(w)
		return
	}

	prev, next := neighbourDates(date)
	h.render(w, http.StatusOK, "admin.html", &adminView{
		Slug:     sess.Slug,
		Day:      day,
		PrevDate: prev,
		NextDate: next,
	})
}

// Booking GET /{slug}?date=
// Неизвестный slug отдает страницу 404
func (h *Handler) Booking(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	date, err := handlers.ParseDate(r.URL.Query().Get("date"), time.Now(), h.location)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.slots.Execute(r.Context(), &getAvailableSlots.Request{Slug: slug, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBusinessNotFound), errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.render(w, http.StatusNotFound, "not_found.html", &notFoundView{Slug: slug})

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			// Прошедшая дата: показываем сегодняшний день
			http.Redirect(w, r, "/"+slug, http.StatusFound)

		default:
			h.logger.Error("GET /{slug} - Failed to load slots: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.render(w, http.StatusOK, "booking.html", newBookingView(result))
}

// NotFound страница для путей, не совпавших ни с одним маршрутом
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, "not_found.html", &notFoundView{})
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("render %s: %v", name, err)
	}
}

func parseLoginRequest(r *http.Request) (*models.SignInRequest, error) {
	var req models.SignInRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			return nil, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		req.Email = r.PostFormValue("email")
		req.Password = r.PostFormValue("password")
	}

	req.Email = strings.TrimSpace(req.Email)
	return &req, nil
}
