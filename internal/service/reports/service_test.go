package reports

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/infra/report"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/user"
)

type fakeBookingRepo struct {
	details []*bookingRepo.BookingDetails
}

func (f *fakeBookingRepo) ListAll(_ context.Context, limit uint64) ([]*bookingRepo.BookingDetails, error) {
	if limit > 0 && uint64(len(f.details)) > limit {
		return f.details[:limit], nil
	}
	return f.details, nil
}

func (f *fakeBookingRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.details)), nil
}

type fakeCarRepo struct {
	cars []*domain.Car
}

func (f *fakeCarRepo) List(_ context.Context, _ domain.CarFilter) ([]*domain.Car, error) {
	return f.cars, nil
}

func (f *fakeCarRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.cars)), nil
}

func (f *fakeCarRepo) CountAvailable(_ context.Context) (int64, error) {
	var n int64
	for _, c := range f.cars {
		if c.Available {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	stats []*userRepo.CustomerStats
}

func (f *fakeUserRepo) CountCustomers(_ context.Context) (int64, error) {
	return int64(len(f.stats)), nil
}

func (f *fakeUserRepo) ListCustomerStats(_ context.Context) ([]*userRepo.CustomerStats, error) {
	return f.stats, nil
}

type recordingRenderer struct {
	bookings  []report.BookingRow
	cars      []report.CarRow
	customers []report.CustomerRow
}

func (r *recordingRenderer) RenderBookings(w io.Writer, rows []report.BookingRow, _ time.Time) error {
	r.bookings = rows
	_, err := w.Write([]byte("%PDF"))
	return err
}

func (r *recordingRenderer) RenderCars(w io.Writer, rows []report.CarRow, _ time.Time) error {
	r.cars = rows
	_, err := w.Write([]byte("%PDF"))
	return err
}

func (r *recordingRenderer) RenderCustomers(w io.Writer, rows []report.CustomerRow, _ time.Time) error {
	r.customers = rows
	_, err := w.Write([]byte("%PDF"))
	return err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	adminIdentity    = domain.Identity{UserID: 1, Role: domain.RoleAdmin}
	customerIdentity = domain.Identity{UserID: 2, Role: domain.RoleCustomer}
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func details(id int64) *bookingRepo.BookingDetails {
	return &bookingRepo.BookingDetails{
		Booking: domain.Booking{
			ID:            id,
			CustomerID:    10,
			CarID:         5,
			PickupDate:    day(2026, time.September, 10),
			ReturnDate:    day(2026, time.September, 13),
			TotalCost:     135.00,
			PaymentStatus: domain.PaymentStatusPending,
		},
		CustomerUsername: "alice",
		CarName:          "Toyota Corolla",
		CarModel:         "Corolla",
	}
}

func newTestService() (*fakeBookingRepo, *recordingRenderer, *Service) {
	bookings := &fakeBookingRepo{details: []*bookingRepo.BookingDetails{
		details(7), details(6), details(5), details(4), details(3), details(2), details(1),
	}}
	cars := &fakeCarRepo{cars: []*domain.Car{
		{ID: 1, Name: "A", Model: "MA", Available: true},
		{ID: 2, Name: "B", Model: "MB", Available: false},
	}}
	users := &fakeUserRepo{stats: []*userRepo.CustomerStats{
		{UserID: 10, Username: "alice", FullName: "Alice Smith", TotalBookings: 7, TotalSpent: 945.00},
	}}
	renderer := &recordingRenderer{}
	return bookings, renderer, NewService(bookings, cars, users, renderer, nopLogger{})
}

func TestService_Dashboard(t *testing.T) {
	_, _, svc := newTestService()

	resp, err := svc.Dashboard(context.Background(), adminIdentity)
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.TotalCars)
	assert.Equal(t, int64(1), resp.AvailableCars)
	assert.Equal(t, int64(7), resp.TotalBookings)
	assert.Equal(t, int64(1), resp.TotalCustomers)

	// дашборд показывает только последние бронирования
	require.Len(t, resp.RecentBookings, 5)
	assert.Equal(t, int64(7), resp.RecentBookings[0].ID)
}

func TestService_Dashboard_RequiresAdmin(t *testing.T) {
	_, _, svc := newTestService()

	_, err := svc.Dashboard(context.Background(), customerIdentity)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Export_Bookings(t *testing.T) {
	_, renderer, svc := newTestService()

	var buf bytes.Buffer
	filename, err := svc.Export(context.Background(), adminIdentity, KindBookings, &buf)
	require.NoError(t, err)

	assert.Contains(t, filename, "bookings_report_")
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	require.Len(t, renderer.bookings, 7)
	assert.Equal(t, 3, renderer.bookings[0].Days)
}

func TestService_Export_Cars(t *testing.T) {
	_, renderer, svc := newTestService()

	var buf bytes.Buffer
	_, err := svc.Export(context.Background(), adminIdentity, KindCars, &buf)
	require.NoError(t, err)
	require.Len(t, renderer.cars, 2)
	assert.Equal(t, "None", renderer.cars[0].ImageSource)
}

func TestService_Export_Customers(t *testing.T) {
	_, renderer, svc := newTestService()

	var buf bytes.Buffer
	_, err := svc.Export(context.Background(), adminIdentity, KindCustomers, &buf)
	require.NoError(t, err)
	require.Len(t, renderer.customers, 1)
	assert.Equal(t, "alice", renderer.customers[0].Username)
}

func TestService_Export_UnknownKind(t *testing.T) {
	_, _, svc := newTestService()

	var buf bytes.Buffer
	_, err := svc.Export(context.Background(), adminIdentity, Kind("payments"), &buf)
	assert.ErrorIs(t, err, ErrUnknownReport)
}

func TestService_Export_RequiresAdmin(t *testing.T) {
	_, _, svc := newTestService()

	var buf bytes.Buffer
	_, err := svc.Export(context.Background(), customerIdentity, KindBookings, &buf)
	assert.ErrorIs(t, err, ErrForbidden)
}
