package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barbershop-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/Barbershop-BookingService/internal/usecase/create_booking"
)

type stubUseCase struct {
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(CreateBookingRequest{
		BarberID:      1,
		ServiceID:     2,
		BookingDate:   "2025-10-15",
		TimeSlot:      "14:00",
		CustomerName:  "Andi",
		CustomerPhone: "+62 812-3456",
	})
	require.NoError(t, err)
	return body
}

func doRequest(h *Handler, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	h := NewHandler(&stubUseCase{resp: &createBooking.Response{
		ID:           42,
		BarberID:     1,
		ServiceID:    2,
		BookingDate:  time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:     "14:00",
		CustomerName: "Andi",
		BarberName:   "Pak Harto",
		ServiceName:  "Gentleman's Cut",
		ServicePrice: 60000,
		CreatedAt:    now,
	}}, nopLogger{})

	rec := doRequest(h, validBody(t))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2025-10-15", resp.BookingDate)
	assert.Equal(t, "14:00", resp.TimeSlot)
	assert.Equal(t, "Pak Harto", resp.BarberName)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot conflict", createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{"date excluded", createBooking.ErrDateExcluded, http.StatusConflict},
		{"barber not found", createBooking.ErrBarberNotFound, http.StatusNotFound},
		{"service not found", createBooking.ErrServiceNotFound, http.StatusNotFound},
		{"date in past", createBooking.ErrInvalidDate, http.StatusBadRequest},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"storage unavailable", createBooking.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tc.err}, nopLogger{})

			rec := doRequest(h, validBody(t))

			require.Equal(t, tc.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantStatus, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&stubUseCase{}, nopLogger{})

	rec := doRequest(h, []byte("{not json"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	h := NewHandler(&stubUseCase{}, nopLogger{})

	body, err := json.Marshal(CreateBookingRequest{
		BarberID:      1,
		ServiceID:     2,
		BookingDate:   "15-10-2025",
		TimeSlot:      "14:00",
		CustomerName:  "Andi",
		CustomerPhone: "+62 812-3456",
	})
	require.NoError(t, err)

	rec := doRequest(h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
