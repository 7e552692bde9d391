package bookingclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barberbook/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "public-key", 5*time.Second, logger.NewNop())
}

func TestClient_SendsKeyAndToken(t *testing.T) {
	var gotKey, gotAuth, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(DaySchedule{Date: "2030-01-02", Occupied: []string{"10:00"}})
	})

	day, err := client.WithToken("session-token").OwnerSchedule(context.Background(), "2030-01-02")

	require.NoError(t, err)
	assert.Equal(t, "public-key", gotKey)
	assert.Equal(t, "Bearer session-token", gotAuth)
	assert.Equal(t, "/api/v1/owner/schedule", gotPath)
	assert.Equal(t, []string{"10:00"}, day.Occupied)
	assert.Empty(t, client.Token())
}

func TestClient_SlotTaken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"занято","occupied":["09:00","10:00"]}`))
	})

	_, err := client.CreateAppointment(context.Background(), "fade-house", &CreateAppointmentRequest{
		Date: "2030-01-02", Time: "10:00", ClientName: "Иван",
	})

	var taken *SlotTakenError
	require.ErrorAs(t, err, &taken)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, []string{"09:00", "10:00"}, taken.Occupied)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnprocessableEntity, ErrUnprocessable},
		{http.StatusInternalServerError, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message":"server says no"}`))
			})

			_, err := client.CancelByClient(context.Background(), uuid.New())

			assert.ErrorIs(t, err, tt.want)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, "server says no", apiErr.Message)
		})
	}
}

func TestClient_AppointmentsEmptySkipsRequest(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	got, err := client.Appointments(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.False(t, called)
}

func TestClient_DeviceAppointmentsDedupes(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	var gotIDs string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotIDs = r.URL.Query().Get("ids")
		_, _ = w.Write([]byte(`[]`))
	})

	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Append(ctx, a))
	require.NoError(t, store.Append(ctx, b))
	require.NoError(t, store.Append(ctx, a))

	_, err := client.DeviceAppointments(ctx, store)

	require.NoError(t, err)
	assert.Equal(t, a.String()+","+b.String(), gotIDs)

	// Список устройства не меняется
	ids, _ := store.List(ctx)
	assert.Len(t, ids, 3)
}
