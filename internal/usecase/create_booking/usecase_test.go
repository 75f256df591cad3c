package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
)

type fakeBookingRepo struct {
	created []*domain.Booking
	nextID  int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.created = append(f.created, b)
	return b, nil
}

type fakeCarRepo struct {
	cars map[int64]*domain.Car
}

func (f *fakeCarRepo) GetByID(_ context.Context, id int64) (*domain.Car, error) {
	if car, ok := f.cars[id]; ok {
		return car, nil
	}
	return nil, carRepo.ErrCarNotFound
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	customer = domain.Identity{UserID: 10, Role: domain.RoleCustomer}
	admin    = domain.Identity{UserID: 1, Role: domain.RoleAdmin}
)

func newTestUseCase(bookings *fakeBookingRepo, cars *fakeCarRepo) *UseCase {
	uc := NewUseCase(bookings, cars, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func availableCar() *fakeCarRepo {
	return &fakeCarRepo{cars: map[int64]*domain.Car{
		5: {ID: 5, Name: "Toyota Corolla", Model: "Corolla", DailyRate: 45.00, Available: true},
	}}
}

func validRequest() *Request {
	return &Request{
		CustomerID: customer.UserID,
		CarID:      5,
		PickupDate: day(2026, time.September, 10),
		ReturnDate: day(2026, time.September, 13),
	}
}

func TestUseCase_Execute(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, availableCar())

	resp, err := uc.Execute(context.Background(), customer, validRequest())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Days)
	assert.InDelta(t, 135.00, resp.TotalCost, 0.001)
	assert.Equal(t, string(domain.PaymentMethodPending), resp.PaymentMethod)
	assert.Equal(t, string(domain.PaymentStatusPending), resp.PaymentStatus)
	assert.Equal(t, "Toyota Corolla", resp.CarName)

	// доступность автомобиля при создании не меняется
	require.Len(t, bookings.created, 1)
	assert.Equal(t, domain.PaymentStatusPending, bookings.created[0].PaymentStatus)
}

func TestUseCase_Execute_AdminRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, availableCar())

	req := validRequest()
	req.CustomerID = admin.UserID
	_, err := uc.Execute(context.Background(), admin, req)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUseCase_Execute_CarNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCarRepo{cars: map[int64]*domain.Car{}})

	_, err := uc.Execute(context.Background(), customer, validRequest())
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestUseCase_Execute_CarNotAvailable(t *testing.T) {
	cars := availableCar()
	cars.cars[5].Available = false
	uc := newTestUseCase(&fakeBookingRepo{}, cars)

	_, err := uc.Execute(context.Background(), customer, validRequest())
	assert.ErrorIs(t, err, ErrCarNotAvailable)
}

func TestUseCase_Execute_PickupInPast(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, availableCar())

	req := validRequest()
	req.PickupDate = day(2026, time.August, 30)
	_, err := uc.Execute(context.Background(), customer, req)
	assert.ErrorIs(t, err, ErrPickupInPast)
}

func TestUseCase_Execute_SecondPendingBookingAllowed(t *testing.T) {
	// до оплаты автомобиль остается доступным, параллельные
	// ожидающие оплаты бронирования допустимы
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, availableCar())

	_, err := uc.Execute(context.Background(), customer, validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.CustomerID = 11
	_, err = uc.Execute(context.Background(), domain.Identity{UserID: 11, Role: domain.RoleCustomer}, other)
	require.NoError(t, err)

	assert.Len(t, bookings.created, 2)
}
