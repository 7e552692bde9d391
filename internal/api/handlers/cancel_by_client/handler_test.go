package cancel_by_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	cancelByClient "github.com/m04kA/barberbook/internal/usecase/cancel_by_client"
	"github.com/m04kA/barberbook/pkg/logger"
)

type fakeUseCase struct {
	resp *cancelByClient.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *cancelByClient.Request) (*cancelByClient.Response, error) {
	return f.resp, f.err
}

func serve(uc CancelByClientUseCase, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/appointments/{appointmentId}/client-cancel", NewHandler(uc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/appointments/"+id+"/client-cancel", nil))
	return rec
}

func TestHandle(t *testing.T) {
	id := uuid.New()
	ok := &cancelByClient.Response{
		ID:          id,
		Date:        time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC),
		Status:      "cancelled",
		CancelledAt: time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name string
		id   string
		uc   *fakeUseCase
		code int
	}{
		{"cancelled", id.String(), &fakeUseCase{resp: ok}, http.StatusOK},
		{"bad id", "not-a-uuid", &fakeUseCase{}, http.StatusBadRequest},
		{"not found", id.String(), &fakeUseCase{err: cancelByClient.ErrAppointmentNotFound}, http.StatusNotFound},
		{"already cancelled", id.String(), &fakeUseCase{err: cancelByClient.ErrNotCancellable}, http.StatusConflict},
		{"too late", id.String(), &fakeUseCase{err: cancelByClient.ErrTooLateToCancel}, http.StatusBadRequest},
		{"internal", id.String(), &fakeUseCase{err: cancelByClient.ErrInternal}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt.uc, tt.id)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
