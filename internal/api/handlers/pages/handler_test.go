package pages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barberbook/internal/api/middleware"
	"github.com/m04kA/barberbook/internal/domain"
	appointmentmodels "github.com/m04kA/barberbook/internal/service/appointments/models"
	schedulemodels "github.com/m04kA/barberbook/internal/service/schedule/models"
	"github.com/m04kA/barberbook/internal/service/session"
	"github.com/m04kA/barberbook/internal/service/session/models"
	getAvailableSlots "github.com/m04kA/barberbook/internal/usecase/get_available_slots"
	"github.com/m04kA/barberbook/pkg/logger"
)

type fakeSessions struct {
	signedOut string
}

func (f *fakeSessions) SignIn(_ context.Context, req *models.SignInRequest) (*models.SignInResponse, error) {
	if req.Password != "secret" {
		return nil, session.ErrInvalidCredentials
	}
	return &models.SignInResponse{AccessToken: "token-1", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (f *fakeSessions) SignOut(_ context.Context, token string) error {
	f.signedOut = token
	return nil
}

type fakeDays struct{}

func (fakeDays) GetDay(_ context.Context, _ uuid.UUID, date time.Time) (*appointmentmodels.DaySchedule, error) {
	return &appointmentmodels.DaySchedule{
		Date:   date.Format(domain.DateFormat),
		Config: schedulemodels.FromDomainConfig(domain.DefaultScheduleConfig(), true),
		Appointments: []appointmentmodels.AppointmentResponse{
			{Time: "10:00", ClientName: "Иван", Status: "scheduled"},
		},
	}, nil
}

type fakeSlots struct{}

func (fakeSlots) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	if req.Slug != "fade-house" {
		return nil, getAvailableSlots.ErrBusinessNotFound
	}
	return &getAvailableSlots.Response{
		Date:     req.Date,
		Business: domain.Business{Slug: "fade-house", Name: "Fade House"},
		Slots:    []domain.Slot{{Time: "09:00", Available: true}, {Time: "10:00"}},
	}, nil
}

func newHandler(t *testing.T, sessions *fakeSessions) *Handler {
	t.Helper()
	h, err := NewHandler(sessions, fakeDays{}, fakeSlots{}, CookieOptions{Name: "bb_session"}, time.UTC, logger.NewNop())
	require.NoError(t, err)
	return h
}

func withSession(r *http.Request, role domain.Role) *http.Request {
	return r.WithContext(middleware.WithSession(r.Context(), &domain.Session{AccountID: uuid.New(), Role: role, Slug: "fade-house"}))
}

func TestLoginPage_RedirectsWhenSignedIn(t *testing.T) {
	h := newHandler(t, &fakeSessions{})

	rec := httptest.NewRecorder()
	h.LoginPage(rec, withSession(httptest.NewRequest(http.MethodGet, "/login", nil), domain.RoleOwner))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	h.LoginPage(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/login"`)
}

func TestLogin_SetsCookie(t *testing.T) {
	h := newHandler(t, &fakeSessions{})
	form := url.Values{"email": {"owner@fade.house"}, "password": {"secret"}}

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "bb_session", cookies[0].Name)
	assert.Equal(t, "token-1", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_InvalidCredentialsShowsMessage(t *testing.T) {
	h := newHandler(t, &fakeSessions{})
	form := url.Values{"email": {"owner@fade.house"}, "password": {"wrong"}}

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), session.ErrInvalidCredentials.Error())
	assert.Empty(t, rec.Result().Cookies())
}

func TestAdmin(t *testing.T) {
	h := newHandler(t, &fakeSessions{})

	rec := httptest.NewRecorder()
	h.Admin(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	h.Admin(rec, withSession(httptest.NewRequest(http.MethodGet, "/admin?date=2030-01-02", nil), domain.RoleClient))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	h.Admin(rec, withSession(httptest.NewRequest(http.MethodGet, "/admin?date=2030-01-02", nil), domain.RoleOwner))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2030-01-02")
	assert.Contains(t, rec.Body.String(), "Иван")
}

func TestBooking(t *testing.T) {
	h := newHandler(t, &fakeSessions{})
	router := mux.NewRouter()
	router.HandleFunc("/{slug}", h.Booking)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fade-house?date=2030-01-02", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fade House")
	assert.Contains(t, rec.Body.String(), `data-time="09:00" class="free"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nobody", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogout_RevokesAndClearsCookie(t *testing.T) {
	sessions := &fakeSessions{}
	h := newHandler(t, sessions)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Empty(t, sessions.signedOut)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
