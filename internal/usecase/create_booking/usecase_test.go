package create_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Barbershop-BookingService/pkg/ptr"
)

// ledgerRepo хранит бронирования в памяти и воспроизводит семантику
// уникального индекса (barber_id, booking_date, time_slot)
type ledgerRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[string]*domain.Booking
	err    error
	calls  int
}

func newLedgerRepo() *ledgerRepo {
	return &ledgerRepo{rows: make(map[string]*domain.Booking)}
}

func (r *ledgerRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	if r.err != nil {
		return nil, r.err
	}

	key := fmt.Sprintf("%d/%s/%s", booking.BarberID, booking.BookingDate.Format(domain.DateFormat), booking.TimeSlot)
	if _, taken := r.rows[key]; taken {
		return nil, bookingRepo.ErrSlotTaken
	}

	r.nextID++
	created := *booking
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	r.rows[key] = &created
	return &created, nil
}

type stubExclusionRepo struct {
	excluded bool
	err      error
	calls    int
}

func (s *stubExclusionRepo) Exists(_ context.Context, _ int64, _ string) (bool, error) {
	s.calls++
	return s.excluded, s.err
}

type stubCatalogRepo struct {
	barber  *domain.Barber
	service *domain.ServiceOffering

	barberErr  error
	serviceErr error
	calls      int
}

func (s *stubCatalogRepo) GetBarberByID(_ context.Context, _ int64) (*domain.Barber, error) {
	s.calls++
	return s.barber, s.barberErr
}

func (s *stubCatalogRepo) GetServiceByID(_ context.Context, _ int64) (*domain.ServiceOffering, error) {
	s.calls++
	return s.service, s.serviceErr
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCatalog() *stubCatalogRepo {
	return &stubCatalogRepo{
		barber:  &domain.Barber{ID: 1, Name: "Budi \"The Blade\""},
		service: &domain.ServiceOffering{ID: 2, Name: "Gentleman's Cut", Price: 60000},
	}
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, "2025-10-15")
	require.NoError(t, err)
	return &Request{
		BarberID:      1,
		ServiceID:     2,
		Date:          date,
		TimeSlot:      "14:00",
		CustomerName:  "Andi",
		CustomerPhone: "+62 812-3456",
	}
}

func newTestUseCase(b BookingRepository, e ExclusionRepository, c CatalogRepository) *UseCase {
	uc := NewUseCase(b, e, c, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	ledger := newLedgerRepo()
	uc := newTestUseCase(ledger, &stubExclusionRepo{}, testCatalog())

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "14:00", resp.TimeSlot)

	// Денормализованные данные из справочника
	assert.Equal(t, "Budi \"The Blade\"", resp.BarberName)
	assert.Equal(t, "Gentleman's Cut", resp.ServiceName)
	assert.Equal(t, int64(60000), resp.ServicePrice)

	// Ровно одна строка журнала
	assert.Len(t, ledger.rows, 1)
}

func TestExecute_SlotConflict(t *testing.T) {
	ledger := newLedgerRepo()
	uc := newTestUseCase(ledger, &stubExclusionRepo{}, testCatalog())

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	// Второй коммит на тот же ключ отклоняется, журнал не растёт
	_, err = uc.Execute(context.Background(), validRequest(t))
	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Len(t, ledger.rows, 1)

	// Другой слот того же дня свободен
	other := validRequest(t)
	other.TimeSlot = "15:00"
	_, err = uc.Execute(context.Background(), other)
	require.NoError(t, err)
	assert.Len(t, ledger.rows, 2)
}

func TestExecute_ConcurrentCommitsSameSlot(t *testing.T) {
	ledger := newLedgerRepo()
	uc := newTestUseCase(ledger, &stubExclusionRepo{}, testCatalog())

	const workers = 16

	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validRequest(t))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrSlotNotAvailable):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Из N конкурентных коммитов на один ключ проходит ровно один
	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
	assert.Len(t, ledger.rows, 1)
}

func TestExecute_DateExcluded(t *testing.T) {
	ledger := newLedgerRepo()
	uc := newTestUseCase(ledger, &stubExclusionRepo{excluded: true}, testCatalog())

	_, err := uc.Execute(context.Background(), validRequest(t))

	// Исключённая дата блокирует коммит независимо от состояния слотов
	require.ErrorIs(t, err, ErrDateExcluded)
	assert.Empty(t, ledger.rows)
}

func TestExecute_BarberNotFound(t *testing.T) {
	catalog := testCatalog()
	catalog.barberErr = catalogRepo.ErrBarberNotFound

	uc := newTestUseCase(newLedgerRepo(), &stubExclusionRepo{}, catalog)

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	catalog := testCatalog()
	catalog.serviceErr = catalogRepo.ErrServiceNotFound

	uc := newTestUseCase(newLedgerRepo(), &stubExclusionRepo{}, catalog)

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_DateInPast(t *testing.T) {
	ledger := newLedgerRepo()
	uc := newTestUseCase(ledger, &stubExclusionRepo{}, testCatalog())

	req := validRequest(t)
	req.Date = time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidDate)
	assert.Empty(t, ledger.rows)
}

func TestExecute_ValidationBeforeDatastore(t *testing.T) {
	ledger := newLedgerRepo()
	exclusions := &stubExclusionRepo{}
	catalog := testCatalog()
	uc := newTestUseCase(ledger, exclusions, catalog)

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero barber id", func(r *Request) { r.BarberID = 0 }},
		{"negative service id", func(r *Request) { r.ServiceID = -1 }},
		{"slot outside grid", func(r *Request) { r.TimeSlot = "09:30" }},
		{"empty customer name", func(r *Request) { r.CustomerName = "   " }},
		{"short phone", func(r *Request) { r.CustomerPhone = "123" }},
		{"phone with letters", func(r *Request) { r.CustomerPhone = "8123abc456" }},
		{"oversized notes", func(r *Request) {
			long := make([]byte, domain.MaxStyleNotesLength+1)
			for i := range long {
				long[i] = 'x'
			}
			r.StyleNotes = ptr.Ptr(string(long))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest(t)
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// Ни одно из хранилищ не трогалось при ошибках валидации
	assert.Equal(t, 0, ledger.calls)
	assert.Equal(t, 0, exclusions.calls)
	assert.Equal(t, 0, catalog.calls)
}

func TestExecute_StorageUnavailable(t *testing.T) {
	t.Run("on create", func(t *testing.T) {
		ledger := newLedgerRepo()
		ledger.err = errors.New("connection refused")

		uc := newTestUseCase(ledger, &stubExclusionRepo{}, testCatalog())

		_, err := uc.Execute(context.Background(), validRequest(t))
		require.ErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("on exclusion check", func(t *testing.T) {
		ledger := newLedgerRepo()
		uc := newTestUseCase(ledger, &stubExclusionRepo{err: errors.New("timeout")}, testCatalog())

		_, err := uc.Execute(context.Background(), validRequest(t))
		require.ErrorIs(t, err, ErrStorageUnavailable)
		assert.Empty(t, ledger.rows)
	})

	t.Run("on barber lookup", func(t *testing.T) {
		catalog := testCatalog()
		catalog.barberErr = errors.New("io failure")

		uc := newTestUseCase(newLedgerRepo(), &stubExclusionRepo{}, catalog)

		_, err := uc.Execute(context.Background(), validRequest(t))
		require.ErrorIs(t, err, ErrStorageUnavailable)
	})
}
