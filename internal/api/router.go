package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	blockSlotsHandler "github.com/m04kA/barberbook/internal/api/handlers/block_slots"
	cancelAppointmentHandler "github.com/m04kA/barberbook/internal/api/handlers/cancel_appointment"
	cancelByClientHandler "github.com/m04kA/barberbook/internal/api/handlers/cancel_by_client"
	createBookingHandler "github.com/m04kA/barberbook/internal/api/handlers/create_booking"
	createManualBookingHandler "github.com/m04kA/barberbook/internal/api/handlers/create_manual_booking"
	getAppointmentHandler "github.com/m04kA/barberbook/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/m04kA/barberbook/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/m04kA/barberbook/internal/api/handlers/get_available_slots"
	getBusinessHandler "github.com/m04kA/barberbook/internal/api/handlers/get_business"
	getOwnerConfigHandler "github.com/m04kA/barberbook/internal/api/handlers/get_owner_config"
	getOwnerScheduleHandler "github.com/m04kA/barberbook/internal/api/handlers/get_owner_schedule"
	getSessionHandler "github.com/m04kA/barberbook/internal/api/handlers/get_session"
	"github.com/m04kA/barberbook/internal/api/handlers/pages"
	signInHandler "github.com/m04kA/barberbook/internal/api/handlers/sign_in"
	signOutHandler "github.com/m04kA/barberbook/internal/api/handlers/sign_out"
	updateOwnerConfigHandler "github.com/m04kA/barberbook/internal/api/handlers/update_owner_config"
	"github.com/m04kA/barberbook/internal/api/middleware"
	"github.com/m04kA/barberbook/pkg/metrics"
)

// Handlers все обработчики сервиса
type Handlers struct {
	SignIn              *signInHandler.Handler
	SignOut             *signOutHandler.Handler
	GetSession          *getSessionHandler.Handler
	GetBusiness         *getBusinessHandler.Handler
	GetAvailableSlots   *getAvailableSlotsHandler.Handler
	CreateBooking       *createBookingHandler.Handler
	GetAppointments     *getAppointmentsHandler.Handler
	GetAppointment      *getAppointmentHandler.Handler
	CancelByClient      *cancelByClientHandler.Handler
	GetOwnerSchedule    *getOwnerScheduleHandler.Handler
	CreateManualBooking *createManualBookingHandler.Handler
	BlockSlots          *blockSlotsHandler.Handler
	CancelAppointment   *cancelAppointmentHandler.Handler
	GetOwnerConfig      *getOwnerConfigHandler.Handler
	UpdateOwnerConfig   *updateOwnerConfigHandler.Handler
	Pages               *pages.Handler
}

// Pinger проверка доступности хранилища для /healthz
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Options middleware и служебные эндпоинты роутера
type Options struct {
	Auth         *middleware.Authenticator
	PublicAPIKey string
	RateLimiter  *middleware.RateLimiter // nil отключает ограничение частоты
	Metrics      *metrics.Metrics        // nil отключает метрики
	MetricsPath  string
	Health       Pinger
}

// NewRouter собирает роутер сервиса
// Порядок регистрации важен: /{slug} совпадает с любым одиночным сегментом,
// поэтому регистрируется последним
func NewRouter(h *Handlers, opts Options) *mux.Router {
	r := mux.NewRouter()

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/healthz", healthz(opts.Health)).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (api key)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.APIKey(opts.PublicAPIKey))

	public.HandleFunc("/auth/sign-in", h.SignIn.Handle).Methods(http.MethodPost)

	public.HandleFunc("/businesses/{slug}", h.GetBusiness.Handle).Methods(http.MethodGet)
	public.HandleFunc("/businesses/{slug}/available-slots", h.GetAvailableSlots.Handle).Methods(http.MethodGet)
	public.Handle("/businesses/{slug}/appointments", limited(opts.RateLimiter, h.CreateBooking.Handle)).Methods(http.MethodPost)

	// Записи "с этого устройства"
	public.HandleFunc("/appointments", h.GetAppointments.Handle).Methods(http.MethodGet)
	public.HandleFunc("/appointments/{appointmentId}", h.GetAppointment.Handle).Methods(http.MethodGet)
	public.Handle("/appointments/{appointmentId}/client-cancel", limited(opts.RateLimiter, h.CancelByClient.Handle)).Methods(http.MethodPost)

	// ============================================================
	// SESSION ROUTES (bearer токен)
	// ============================================================

	authed := api.PathPrefix("/auth").Subrouter()
	authed.Use(opts.Auth.Required)

	authed.HandleFunc("/sign-out", h.SignOut.Handle).Methods(http.MethodPost)
	authed.HandleFunc("/session", h.GetSession.Handle).Methods(http.MethodGet)

	// ============================================================
	// OWNER ROUTES (сессия владельца)
	// ============================================================

	owner := api.PathPrefix("/owner").Subrouter()
	owner.Use(opts.Auth.Required, middleware.RequireRole)

	owner.HandleFunc("/schedule", h.GetOwnerSchedule.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/appointments", h.CreateManualBooking.Handle).Methods(http.MethodPost)
	owner.HandleFunc("/appointments/{appointmentId}/cancel", h.CancelAppointment.Handle).Methods(http.MethodPatch)
	owner.HandleFunc("/blocks", h.BlockSlots.Handle).Methods(http.MethodPost)
	owner.HandleFunc("/config", h.GetOwnerConfig.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/config", h.UpdateOwnerConfig.Handle).Methods(http.MethodPut)

	// ============================================================
	// PAGES
	// ============================================================

	r.Handle("/login", opts.Auth.Optional(http.HandlerFunc(h.Pages.LoginPage))).Methods(http.MethodGet)
	r.HandleFunc("/login", h.Pages.Login).Methods(http.MethodPost)
	r.Handle("/logout", opts.Auth.Optional(http.HandlerFunc(h.Pages.Logout))).Methods(http.MethodPost)
	r.Handle("/admin", opts.Auth.Optional(http.HandlerFunc(h.Pages.Admin))).Methods(http.MethodGet)
	r.HandleFunc("/", h.Pages.Root).Methods(http.MethodGet)

	// Публичная страница барбершопа, всегда последней
	r.HandleFunc("/{slug}", h.Pages.Booking).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(h.Pages.NotFound)

	return r
}

func limited(l *middleware.RateLimiter, fn http.HandlerFunc) http.Handler {
	if l == nil {
		return fn
	}
	return l.Middleware(fn)
}

func healthz(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := p.PingContext(ctx); err != nil {
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
