package list_cars

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/cars/models"
)

type fakeCarService struct {
	gotReq *models.ListCarsRequest
}

func (f *fakeCarService) List(_ context.Context, req *models.ListCarsRequest) (*models.CarListResponse, error) {
	f.gotReq = req
	return &models.CarListResponse{Cars: []models.CarResponse{}, Total: 0}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, defaultAvailability domain.AvailabilityFilter, url string) (*fakeCarService, *httptest.ResponseRecorder) {
	t.Helper()

	svc := &fakeCarService{}
	h := NewHandler(svc, defaultAvailability, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return svc, rec
}

func TestHandler_PublicDefaultsToAvailable(t *testing.T) {
	svc, rec := doRequest(t, domain.AvailabilityAvailable, "/api/v1/cars")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotReq)
	assert.Equal(t, domain.AvailabilityAvailable, svc.gotReq.Availability)
}

func TestHandler_AdminDefaultsToAll(t *testing.T) {
	svc, rec := doRequest(t, domain.AvailabilityAll, "/api/v1/admin/cars")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.AvailabilityAll, svc.gotReq.Availability)
}

func TestHandler_ExplicitAvailabilityOverridesDefault(t *testing.T) {
	svc, rec := doRequest(t, domain.AvailabilityAvailable, "/api/v1/cars?availability=booked")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.AvailabilityBooked, svc.gotReq.Availability)
}

func TestHandler_AvailabilityAll(t *testing.T) {
	svc, _ := doRequest(t, domain.AvailabilityAvailable, "/api/v1/cars?availability=all")
	assert.Equal(t, domain.AvailabilityAll, svc.gotReq.Availability)
}

func TestHandler_SeatsFilter(t *testing.T) {
	svc, rec := doRequest(t, domain.AvailabilityAvailable, "/api/v1/cars?seats=4&search=toyota")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotReq.Seats)
	assert.Equal(t, 4, *svc.gotReq.Seats)
	assert.Equal(t, "toyota", svc.gotReq.SearchTerm)
}

func TestHandler_SeatsAboveEightStaysExact(t *testing.T) {
	svc, _ := doRequest(t, domain.AvailabilityAvailable, "/api/v1/cars?seats=12")

	require.NotNil(t, svc.gotReq.Seats)
	assert.Equal(t, 12, *svc.gotReq.Seats)
}

func TestHandler_SeatsEightIsSentinel(t *testing.T) {
	svc, _ := doRequest(t, domain.AvailabilityAvailable, "/api/v1/cars?seats=8")

	require.NotNil(t, svc.gotReq.Seats)
	assert.Equal(t, domain.SeatsEightPlus, *svc.gotReq.Seats)
}

func TestHandler_InvalidSeats(t *testing.T) {
	_, rec := doRequest(t, domain.AvailabilityAvailable, "/api/v1/cars?seats=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_InvalidAvailability(t *testing.T) {
	_, rec := doRequest(t, domain.AvailabilityAvailable, "/api/v1/cars?availability=parked")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
