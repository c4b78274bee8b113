package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Barbershop-BookingService/internal/service/bookings/models"
	"github.com/m04kA/Barbershop-BookingService/pkg/ptr"
)

type stubRepo struct {
	bookings  []*domain.Booking
	getErr    error
	listErr   error
	deleteErr error

	gotFilter *domain.BookingsFilter
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &domain.Booking{ID: id}, nil
}

func (s *stubRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	s.gotFilter = &filter
	return s.bookings, s.listErr
}

func (s *stubRepo) Delete(_ context.Context, _ int64) error {
	return s.deleteErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestList(t *testing.T) {
	date, _ := time.Parse(domain.DateFormat, "2025-10-15")

	t.Run("filter passed to repository", func(t *testing.T) {
		repo := &stubRepo{bookings: []*domain.Booking{
			{ID: 1, BookingDate: date, TimeSlot: "10:00", BarberName: "Pak Harto"},
		}}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
			Date:     ptr.Ptr("2025-10-15"),
			BarberID: ptr.Ptr(int64(3)),
		})

		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "2025-10-15", resp.Bookings[0].BookingDate)

		require.NotNil(t, repo.gotFilter)
		require.NotNil(t, repo.gotFilter.Date)
		assert.Equal(t, date, *repo.gotFilter.Date)
		require.NotNil(t, repo.gotFilter.BarberID)
		assert.Equal(t, int64(3), *repo.gotFilter.BarberID)
	})

	t.Run("invalid date filter", func(t *testing.T) {
		svc := NewService(&stubRepo{}, nopLogger{})

		_, err := svc.List(context.Background(), &models.ListBookingsRequest{
			Date: ptr.Ptr("october 15"),
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&stubRepo{getErr: bookingRepo.ErrBookingNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := NewService(&stubRepo{}, nopLogger{})
		require.NoError(t, svc.Delete(context.Background(), 1))
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&stubRepo{deleteErr: bookingRepo.ErrBookingNotFound}, nopLogger{})
		require.ErrorIs(t, svc.Delete(context.Background(), 99), ErrBookingNotFound)
	})
}
