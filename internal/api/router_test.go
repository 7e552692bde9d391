package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getBusinessHandler "github.com/m04kA/barberbook/internal/api/handlers/get_business"
	"github.com/m04kA/barberbook/internal/api/handlers/pages"
	"github.com/m04kA/barberbook/internal/api/middleware"
	"github.com/m04kA/barberbook/internal/domain"
	appointmentmodels "github.com/m04kA/barberbook/internal/service/appointments/models"
	"github.com/m04kA/barberbook/internal/service/business"
	sessionmodels "github.com/m04kA/barberbook/internal/service/session/models"
	getAvailableSlots "github.com/m04kA/barberbook/internal/usecase/get_available_slots"
	"github.com/m04kA/barberbook/pkg/logger"
)

const testAPIKey = "public-key"

type fakeBusinesses struct{}

func (fakeBusinesses) ResolveSlug(_ context.Context, slug string) (*domain.Business, error) {
	if slug != "fade-house" {
		return nil, business.ErrBusinessNotFound
	}
	return &domain.Business{ID: uuid.New(), Slug: slug, Name: "Fade House", Config: domain.DefaultScheduleConfig()}, nil
}

type fakeSlots struct{}

func (fakeSlots) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	if req.Slug != "fade-house" {
		return nil, getAvailableSlots.ErrBusinessNotFound
	}
	return &getAvailableSlots.Response{Date: req.Date, Business: domain.Business{Slug: req.Slug, Name: "Fade House"}}, nil
}

type fakeSessions struct{}

func (fakeSessions) SignIn(context.Context, *sessionmodels.SignInRequest) (*sessionmodels.SignInResponse, error) {
	return nil, errors.New("not used")
}

func (fakeSessions) SignOut(context.Context, string) error { return nil }

func (fakeSessions) Resolve(context.Context, string) (*domain.Session, error) {
	return nil, errors.New("invalid token")
}

type fakeDays struct{}

func (fakeDays) GetDay(context.Context, uuid.UUID, time.Time) (*appointmentmodels.DaySchedule, error) {
	return nil, errors.New("not used")
}

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error { return p.err }

func newTestRouter(t *testing.T, health Pinger) http.Handler {
	t.Helper()
	log := logger.NewNop()

	pagesHandler, err := pages.NewHandler(fakeSessions{}, fakeDays{}, fakeSlots{}, pages.CookieOptions{Name: "bb_session"}, time.UTC, log)
	require.NoError(t, err)

	return NewRouter(&Handlers{
		GetBusiness: getBusinessHandler.NewHandler(fakeBusinesses{}, log),
		Pages:       pagesHandler,
	}, Options{
		Auth:         middleware.NewAuthenticator(fakeSessions{}, "bb_session", log),
		PublicAPIKey: testAPIKey,
		Health:       health,
	})
}

func TestRouter_FixedRoutesWinOverSlug(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name     string
		path     string
		code     int
		location string
	}{
		{name: "root", path: "/", code: http.StatusFound, location: "/login"},
		{name: "login", path: "/login", code: http.StatusOK},
		{name: "admin without session", path: "/admin", code: http.StatusFound, location: "/login"},
		{name: "healthz", path: "/healthz", code: http.StatusOK},
		{name: "business page", path: "/fade-house", code: http.StatusOK},
		{name: "unknown slug", path: "/nobody", code: http.StatusNotFound},
		{name: "unknown nested path", path: "/a/b/c", code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.code, rec.Code)
			if tt.location != "" {
				assert.Equal(t, tt.location, rec.Header().Get("Location"))
			}
		})
	}
}

func TestRouter_PublicAPIRequiresKey(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/businesses/fade-house", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/fade-house", nil)
	req.Header.Set("apikey", testAPIKey)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slug":"fade-house"`)
}

func TestRouter_OwnerRoutesRequireSession(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/owner/schedule", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_HealthzReportsStorage(t *testing.T) {
	router := newTestRouter(t, fakePinger{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
