package get_appointments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barberbook/internal/service/appointments"
	"github.com/m04kA/barberbook/internal/service/appointments/models"
	"github.com/m04kA/barberbook/pkg/logger"
)

type fakeService struct {
	ids []uuid.UUID
	err error
}

func (f *fakeService) GetByIDs(_ context.Context, ids []uuid.UUID) ([]models.PublicAppointmentResponse, error) {
	f.ids = ids
	if f.err != nil {
		return nil, f.err
	}
	result := make([]models.PublicAppointmentResponse, 0, len(ids))
	for _, id := range ids {
		result = append(result, models.PublicAppointmentResponse{ID: id, Status: "scheduled"})
	}
	return result, nil
}

func TestParseIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	ids, err := ParseIDs(" " + a.String() + ",," + b.String() + " ")
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)

	ids, err = ParseIDs("")
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = ParseIDs(a.String() + ",nope")
	assert.Error(t, err)
}

func TestHandle_ReturnsAppointments(t *testing.T) {
	id := uuid.New()
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?ids="+id.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body []models.PublicAppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, id, body[0].ID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		err    error
		status int
	}{
		{name: "malformed id", query: "ids=abc", status: http.StatusBadRequest},
		{name: "too many ids", query: "ids=" + uuid.NewString(), err: appointments.ErrTooManyIDs, status: http.StatusBadRequest},
		{name: "storage failure", query: "ids=" + uuid.NewString(), err: assert.AnError, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&fakeService{err: tt.err}, logger.NewNop()).
				Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?"+tt.query, nil))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
