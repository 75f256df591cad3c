package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) GetByCustomerID(_ context.Context, customerID int64) ([]*bookingRepo.BookingDetails, error) {
	var out []*bookingRepo.BookingDetails
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, &bookingRepo.BookingDetails{Booking: *b})
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListAll(_ context.Context, _ uint64) ([]*bookingRepo.BookingDetails, error) {
	var out []*bookingRepo.BookingDetails
	for _, b := range f.bookings {
		out = append(out, &bookingRepo.BookingDetails{Booking: *b})
	}
	return out, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

type fakeCarRepo struct {
	availability map[int64]bool
}

func (f *fakeCarRepo) SetAvailability(_ context.Context, id int64, available bool) error {
	f.availability[id] = available
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	adminIdentity = domain.Identity{UserID: 1, Role: domain.RoleAdmin}
	ownerIdentity = domain.Identity{UserID: 10, Role: domain.RoleCustomer}
	otherIdentity = domain.Identity{UserID: 11, Role: domain.RoleCustomer}
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func pendingBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		CustomerID:    ownerIdentity.UserID,
		CarID:         5,
		PickupDate:    date(2026, time.September, 10),
		ReturnDate:    date(2026, time.September, 13),
		TotalCost:     135.00,
		PaymentMethod: domain.PaymentMethodPending,
		PaymentStatus: domain.PaymentStatusPending,
	}
}

func newBookingsService(repo *fakeBookingRepo, cars *fakeCarRepo) *Service {
	return NewService(repo, cars, fakeTxManager{}, nopLogger{})
}

func TestService_GetByID_Owner(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings[1] = pendingBooking(1)
	svc := newBookingsService(repo, &fakeCarRepo{availability: map[int64]bool{}})

	resp, err := svc.GetByID(context.Background(), ownerIdentity, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, "2026-09-10", resp.PickupDate)
}

func TestService_GetByID_OtherCustomerDenied(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings[1] = pendingBooking(1)
	svc := newBookingsService(repo, &fakeCarRepo{availability: map[int64]bool{}})

	_, err := svc.GetByID(context.Background(), otherIdentity, 1)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetByID_AdminAllowed(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings[1] = pendingBooking(1)
	svc := newBookingsService(repo, &fakeCarRepo{availability: map[int64]bool{}})

	_, err := svc.GetByID(context.Background(), adminIdentity, 1)
	assert.NoError(t, err)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := newBookingsService(newFakeBookingRepo(), &fakeCarRepo{availability: map[int64]bool{}})

	_, err := svc.GetByID(context.Background(), ownerIdentity, 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_ListAll_RequiresAdmin(t *testing.T) {
	svc := newBookingsService(newFakeBookingRepo(), &fakeCarRepo{availability: map[int64]bool{}})

	_, err := svc.ListAll(context.Background(), ownerIdentity)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Cancel_ReleasesCarAndDeletes(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings[1] = pendingBooking(1)
	cars := &fakeCarRepo{availability: map[int64]bool{5: false}}
	svc := newBookingsService(repo, cars)

	require.NoError(t, svc.Cancel(context.Background(), ownerIdentity, 1))

	assert.NotContains(t, repo.bookings, int64(1))
	assert.True(t, cars.availability[5])
}

func TestService_Cancel_ConfirmedBookingAllowed(t *testing.T) {
	repo := newFakeBookingRepo()
	b := pendingBooking(1)
	b.PaymentMethod = domain.PaymentMethodCard
	b.PaymentStatus = domain.PaymentStatusCompleted
	repo.bookings[1] = b
	cars := &fakeCarRepo{availability: map[int64]bool{5: false}}
	svc := newBookingsService(repo, cars)

	require.NoError(t, svc.Cancel(context.Background(), adminIdentity, 1))
	assert.True(t, cars.availability[5])
}

func TestService_Cancel_FailedPaymentRejected(t *testing.T) {
	repo := newFakeBookingRepo()
	b := pendingBooking(1)
	b.PaymentStatus = domain.PaymentStatusFailed
	repo.bookings[1] = b
	svc := newBookingsService(repo, &fakeCarRepo{availability: map[int64]bool{}})

	err := svc.Cancel(context.Background(), ownerIdentity, 1)
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Contains(t, repo.bookings, int64(1))
}

func TestService_Cancel_OtherCustomerDenied(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings[1] = pendingBooking(1)
	svc := newBookingsService(repo, &fakeCarRepo{availability: map[int64]bool{}})

	err := svc.Cancel(context.Background(), otherIdentity, 1)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Contains(t, repo.bookings, int64(1))
}

func TestService_GetUserBookings(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings[1] = pendingBooking(1)
	b2 := pendingBooking(2)
	b2.CustomerID = otherIdentity.UserID
	repo.bookings[2] = b2
	svc := newBookingsService(repo, &fakeCarRepo{availability: map[int64]bool{}})

	resp, err := svc.GetUserBookings(context.Background(), ownerIdentity.UserID)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}
