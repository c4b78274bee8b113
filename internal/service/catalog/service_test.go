package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Barbershop-BookingService/internal/service/catalog/models"
)

type stubRepo struct {
	barbers  []*domain.Barber
	services []*domain.ServiceOffering

	barberErr  error
	serviceErr error

	createdBarber  *domain.Barber
	createdService *domain.ServiceOffering
}

func (s *stubRepo) ListBarbers(_ context.Context) ([]*domain.Barber, error) {
	return s.barbers, s.barberErr
}

func (s *stubRepo) GetBarberByID(_ context.Context, id int64) (*domain.Barber, error) {
	if s.barberErr != nil {
		return nil, s.barberErr
	}
	return &domain.Barber{ID: id}, nil
}

func (s *stubRepo) CreateBarber(_ context.Context, barber *domain.Barber) (*domain.Barber, error) {
	if s.barberErr != nil {
		return nil, s.barberErr
	}
	created := *barber
	created.ID = 1
	s.createdBarber = &created
	return &created, nil
}

func (s *stubRepo) UpdateBarber(_ context.Context, id int64, barber *domain.Barber) (*domain.Barber, error) {
	if s.barberErr != nil {
		return nil, s.barberErr
	}
	updated := *barber
	updated.ID = id
	return &updated, nil
}

func (s *stubRepo) DeleteBarber(_ context.Context, _ int64) error {
	return s.barberErr
}

func (s *stubRepo) ListServices(_ context.Context) ([]*domain.ServiceOffering, error) {
	return s.services, s.serviceErr
}

func (s *stubRepo) GetServiceByID(_ context.Context, id int64) (*domain.ServiceOffering, error) {
	if s.serviceErr != nil {
		return nil, s.serviceErr
	}
	return &domain.ServiceOffering{ID: id}, nil
}

func (s *stubRepo) CreateService(_ context.Context, service *domain.ServiceOffering) (*domain.ServiceOffering, error) {
	if s.serviceErr != nil {
		return nil, s.serviceErr
	}
	created := *service
	created.ID = 1
	s.createdService = &created
	return &created, nil
}

func (s *stubRepo) UpdateService(_ context.Context, id int64, service *domain.ServiceOffering) (*domain.ServiceOffering, error) {
	if s.serviceErr != nil {
		return nil, s.serviceErr
	}
	updated := *service
	updated.ID = id
	return &updated, nil
}

func (s *stubRepo) DeleteService(_ context.Context, _ int64) error {
	return s.serviceErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreateBarber(t *testing.T) {
	t.Run("success trims input", func(t *testing.T) {
		repo := &stubRepo{}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.CreateBarber(context.Background(), &models.CreateBarberRequest{
			Name:            "  Pak Harto  ",
			Specialty:       "Traditional & Shaving",
			ExperienceYears: 15,
			Rating:          5.0,
		})

		require.NoError(t, err)
		assert.Equal(t, "Pak Harto", resp.Name)
		require.NotNil(t, repo.createdBarber)
		assert.Equal(t, "Pak Harto", repo.createdBarber.Name)
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewService(&stubRepo{}, nopLogger{})

		cases := []struct {
			name string
			req  models.CreateBarberRequest
		}{
			{"empty name", models.CreateBarberRequest{Rating: 4.5}},
			{"negative experience", models.CreateBarberRequest{Name: "X", ExperienceYears: -1}},
			{"rating above 5", models.CreateBarberRequest{Name: "X", Rating: 5.1}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.CreateBarber(context.Background(), &tc.req)
				require.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestCreateService_Validation(t *testing.T) {
	svc := NewService(&stubRepo{}, nopLogger{})

	_, err := svc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name: "Cut", Price: 0, DurationMinutes: 30,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name: "Cut", Price: 60000, DurationMinutes: 0,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateBarber_NotFound(t *testing.T) {
	svc := NewService(&stubRepo{barberErr: catalogRepo.ErrBarberNotFound}, nopLogger{})

	_, err := svc.UpdateBarber(context.Background(), 99, &models.UpdateBarberRequest{Name: "X", Rating: 4})
	require.ErrorIs(t, err, ErrBarberNotFound)
}

func TestDeleteService_NotFound(t *testing.T) {
	svc := NewService(&stubRepo{serviceErr: catalogRepo.ErrServiceNotFound}, nopLogger{})

	err := svc.DeleteService(context.Background(), 99)
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestListBarbers(t *testing.T) {
	repo := &stubRepo{barbers: []*domain.Barber{
		{ID: 3, Name: "Pak Harto", Rating: 5.0},
		{ID: 1, Name: "Budi \"The Blade\"", Rating: 4.9},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListBarbers(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Barbers, 2)
	// Порядок репозитория (rating DESC) сохраняется
	assert.Equal(t, int64(3), resp.Barbers[0].ID)
}
