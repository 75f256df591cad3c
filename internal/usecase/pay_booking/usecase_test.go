package pay_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) UpdatePayment(_ context.Context, id int64, method domain.PaymentMethod, status domain.PaymentStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.PaymentMethod = method
	b.PaymentStatus = status
	return nil
}

type fakeCarRepo struct {
	available map[int64]bool
}

func (f *fakeCarRepo) MarkUnavailable(_ context.Context, id int64) error {
	if !f.available[id] {
		return carRepo.ErrCarNotAvailable
	}
	f.available[id] = false
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func pendingBooking(id, customerID int64) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		CustomerID:    customerID,
		CarID:         5,
		PickupDate:    day(2026, time.September, 10),
		ReturnDate:    day(2026, time.September, 13),
		TotalCost:     135.00,
		PaymentMethod: domain.PaymentMethodPending,
		PaymentStatus: domain.PaymentStatusPending,
	}
}

func newTestSetup() (*fakeBookingRepo, *fakeCarRepo, *UseCase) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: pendingBooking(1, 10),
	}}
	cars := &fakeCarRepo{available: map[int64]bool{5: true}}
	uc := NewUseCase(bookings, cars, fakeTxManager{}, nopLogger{})
	return bookings, cars, uc
}

func cashRequest() *Request {
	return &Request{BookingID: 1, CustomerID: 10, Method: "Cash"}
}

func TestUseCase_Execute_Cash(t *testing.T) {
	bookings, cars, uc := newTestSetup()

	resp, err := uc.Execute(context.Background(), cashRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.PaymentMethodCash), resp.PaymentMethod)
	assert.Equal(t, string(domain.PaymentStatusCompleted), resp.PaymentStatus)
	assert.False(t, cars.available[5])
	assert.Equal(t, domain.PaymentStatusCompleted, bookings.bookings[1].PaymentStatus)
}

func TestUseCase_Execute_Card(t *testing.T) {
	_, _, uc := newTestSetup()

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:  1,
		CustomerID: 10,
		Method:     "Card",
		Card: &CardDetails{
			Number:     "4111111111111111",
			HolderName: "ALICE SMITH",
			Expiry:     "12/27",
			CVV:        "123",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.PaymentMethodCard), resp.PaymentMethod)
}

func TestUseCase_Execute_CardFieldsRequired(t *testing.T) {
	_, _, uc := newTestSetup()

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  1,
		CustomerID: 10,
		Method:     "Card",
		Card:       &CardDetails{Number: "4111111111111111"},
	})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "cardHolderName")
	assert.Contains(t, ve.Fields, "cardExpiry")
	assert.Contains(t, ve.Fields, "cardCVV")
}

func TestUseCase_Execute_InvalidMethod(t *testing.T) {
	_, _, uc := newTestSetup()

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, CustomerID: 10, Method: "Bitcoin"})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "paymentMethod")
}

func TestUseCase_Execute_NotOwner(t *testing.T) {
	_, cars, uc := newTestSetup()

	req := cashRequest()
	req.CustomerID = 11
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.True(t, cars.available[5])
}

func TestUseCase_Execute_AlreadyCompleted(t *testing.T) {
	bookings, _, uc := newTestSetup()
	bookings.bookings[1].PaymentStatus = domain.PaymentStatusCompleted

	_, err := uc.Execute(context.Background(), cashRequest())
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestUseCase_Execute_CarTakenRecordsFailedPayment(t *testing.T) {
	bookings, cars, uc := newTestSetup()
	cars.available[5] = false

	_, err := uc.Execute(context.Background(), cashRequest())
	assert.ErrorIs(t, err, ErrCarTaken)

	// бронирование сохраняется, платеж фиксируется как неудачный
	b := bookings.bookings[1]
	assert.Equal(t, domain.PaymentStatusFailed, b.PaymentStatus)
	assert.Equal(t, domain.PaymentMethodCash, b.PaymentMethod)
}

func TestUseCase_Execute_ConcurrentPaymentsOneWinner(t *testing.T) {
	bookings, cars, uc := newTestSetup()
	bookings.bookings[2] = pendingBooking(2, 11)

	_, err := uc.Execute(context.Background(), cashRequest())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 2, CustomerID: 11, Method: "Cash"})
	assert.ErrorIs(t, err, ErrCarTaken)

	assert.Equal(t, domain.PaymentStatusCompleted, bookings.bookings[1].PaymentStatus)
	assert.Equal(t, domain.PaymentStatusFailed, bookings.bookings[2].PaymentStatus)
	assert.False(t, cars.available[5])
}

func TestUseCase_Execute_BookingNotFound(t *testing.T) {
	_, _, uc := newTestSetup()

	_, err := uc.Execute(context.Background(), &Request{BookingID: 99, CustomerID: 10, Method: "Cash"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
