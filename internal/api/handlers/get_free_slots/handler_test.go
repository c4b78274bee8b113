package get_free_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	getFreeSlots "github.com/m04kA/Barbershop-BookingService/internal/usecase/get_free_slots"
)

type stubUseCase struct {
	resp *getFreeSlots.Response
	err  error

	gotReq *getFreeSlots.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getFreeSlots.Request) (*getFreeSlots.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/barbers/{barberId}/free-slots", h.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{resp: &getFreeSlots.Response{
		BarberID: 1,
		Date:     time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Slots: []domain.Slot{
			{StartTime: "10:00", Available: true},
			{StartTime: "11:00", Available: false},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, "/api/v1/barbers/1/free-slots?date=2025-10-15")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp FreeSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.BarberID)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, []string{"10:00"}, resp.FreeSlots)
	require.Len(t, resp.Slots, 2)
	assert.False(t, resp.Slots[1].Available)

	// Запрос до use case дошёл с распарсенными параметрами
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(1), uc.gotReq.BarberID)
	assert.Equal(t, "2025-10-15", uc.gotReq.Date.Format(domain.DateFormat))
}

func TestHandle_DegradedPassedThrough(t *testing.T) {
	uc := &stubUseCase{resp: &getFreeSlots.Response{
		BarberID: 1,
		Date:     time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Degraded: true,
		Slots:    []domain.Slot{{StartTime: "10:00", Available: false}},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, "/api/v1/barbers/1/free-slots?date=2025-10-15")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp FreeSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Degraded)
	assert.Empty(t, resp.FreeSlots)
}

func TestHandle_BadRequest(t *testing.T) {
	h := NewHandler(&stubUseCase{}, nopLogger{})

	t.Run("missing date", func(t *testing.T) {
		rec := doRequest(h, "/api/v1/barbers/1/free-slots")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		rec := doRequest(h, "/api/v1/barbers/1/free-slots?date=15.10.2025")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad barber id", func(t *testing.T) {
		rec := doRequest(h, "/api/v1/barbers/abc/free-slots?date=2025-10-15")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandle_BarberNotFound(t *testing.T) {
	h := NewHandler(&stubUseCase{err: getFreeSlots.ErrBarberNotFound}, nopLogger{})

	rec := doRequest(h, "/api/v1/barbers/99/free-slots?date=2025-10-15")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
