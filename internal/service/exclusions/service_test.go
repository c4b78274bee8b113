package exclusions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/catalog"
	exclusionRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/exclusion"
	"github.com/m04kA/Barbershop-BookingService/internal/service/exclusions/models"
)

type stubExclusionRepo struct {
	created   *domain.Exclusion
	createErr error
	deleteErr error
	list      []*domain.Exclusion
	listErr   error
}

func (s *stubExclusionRepo) Create(_ context.Context, excl *domain.Exclusion) (*domain.Exclusion, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *excl
	created.ID = 1
	created.CreatedAt = time.Now()
	s.created = &created
	return &created, nil
}

func (s *stubExclusionRepo) Delete(_ context.Context, _ int64) error {
	return s.deleteErr
}

func (s *stubExclusionRepo) ListByBarber(_ context.Context, _ int64) ([]*domain.Exclusion, error) {
	return s.list, s.listErr
}

type stubCatalogRepo struct {
	err error
}

func (s *stubCatalogRepo) GetBarberByID(_ context.Context, id int64) (*domain.Barber, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Barber{ID: id}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestAdd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &stubExclusionRepo{}
		svc := NewService(repo, &stubCatalogRepo{}, nopLogger{})

		resp, err := svc.Add(context.Background(), &models.AddExclusionRequest{
			BarberID: 1,
			Date:     "2025-10-15",
			Reason:   "отпуск",
		})

		require.NoError(t, err)
		assert.Equal(t, "2025-10-15", resp.Date)
		assert.Equal(t, "отпуск", resp.Reason)
		require.NotNil(t, repo.created)
		assert.Equal(t, "2025-10-15", repo.created.ExcludedDate.Format(domain.DateFormat))
	})

	t.Run("invalid date", func(t *testing.T) {
		svc := NewService(&stubExclusionRepo{}, &stubCatalogRepo{}, nopLogger{})

		_, err := svc.Add(context.Background(), &models.AddExclusionRequest{BarberID: 1, Date: "15.10.2025"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("barber not found", func(t *testing.T) {
		svc := NewService(&stubExclusionRepo{}, &stubCatalogRepo{err: catalogRepo.ErrBarberNotFound}, nopLogger{})

		_, err := svc.Add(context.Background(), &models.AddExclusionRequest{BarberID: 99, Date: "2025-10-15"})
		require.ErrorIs(t, err, ErrBarberNotFound)
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := &stubExclusionRepo{createErr: exclusionRepo.ErrDuplicateExclusion}
		svc := NewService(repo, &stubCatalogRepo{}, nopLogger{})

		_, err := svc.Add(context.Background(), &models.AddExclusionRequest{BarberID: 1, Date: "2025-10-15"})
		require.ErrorIs(t, err, ErrDuplicateExclusion)
	})
}

func TestRemove_NotFound(t *testing.T) {
	repo := &stubExclusionRepo{deleteErr: exclusionRepo.ErrExclusionNotFound}
	svc := NewService(repo, &stubCatalogRepo{}, nopLogger{})

	err := svc.Remove(context.Background(), 42)
	require.ErrorIs(t, err, ErrExclusionNotFound)
}

func TestExcludedDates(t *testing.T) {
	d1, _ := time.Parse(domain.DateFormat, "2025-10-15")
	d2, _ := time.Parse(domain.DateFormat, "2025-10-20")

	repo := &stubExclusionRepo{list: []*domain.Exclusion{
		{ID: 1, BarberID: 1, ExcludedDate: d1},
		{ID: 2, BarberID: 1, ExcludedDate: d2},
	}}
	svc := NewService(repo, &stubCatalogRepo{}, nopLogger{})

	resp, err := svc.ExcludedDates(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-10-15", "2025-10-20"}, resp.Dates)
}
