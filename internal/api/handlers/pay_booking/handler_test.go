package pay_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	payBooking "github.com/m04kA/SMC-RentalService/internal/usecase/pay_booking"
)

type fakeUseCase struct {
	gotReq *payBooking.Request
	resp   *payBooking.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *payBooking.Request) (*payBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string, identity *domain.Identity) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}/pay", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/7/pay", bytes.NewBufferString(body))
	if identity != nil {
		req = req.WithContext(middleware.WithIdentity(req.Context(), *identity))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Pay(t *testing.T) {
	uc := &fakeUseCase{resp: &payBooking.Response{
		ID:            7,
		CustomerID:    10,
		PaymentMethod: "Cash",
		PaymentStatus: "Completed",
	}}
	identity := &domain.Identity{UserID: 10, Role: domain.RoleCustomer}

	rec := doRequest(t, uc, `{"paymentMethod":"Cash"}`, identity)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(7), uc.gotReq.BookingID)
	assert.Equal(t, int64(10), uc.gotReq.CustomerID)
	assert.Nil(t, uc.gotReq.Card)

	var resp payBooking.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Completed", resp.PaymentStatus)
}

func TestHandler_Pay_CardDetailsForwarded(t *testing.T) {
	uc := &fakeUseCase{resp: &payBooking.Response{ID: 7, PaymentMethod: "Card", PaymentStatus: "Completed"}}
	identity := &domain.Identity{UserID: 10, Role: domain.RoleCustomer}

	body := `{"paymentMethod":"Card","cardNumber":"4111111111111111","cardHolderName":"ALICE","cardExpiry":"12/27","cardCVV":"123"}`
	rec := doRequest(t, uc, body, identity)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq.Card)
	assert.Equal(t, "ALICE", uc.gotReq.Card.HolderName)
}

func TestHandler_Pay_Unauthorized(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"paymentMethod":"Cash"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Pay_CarTakenConflict(t *testing.T) {
	uc := &fakeUseCase{err: payBooking.ErrCarTaken}
	identity := &domain.Identity{UserID: 10, Role: domain.RoleCustomer}

	rec := doRequest(t, uc, `{"paymentMethod":"Cash"}`, identity)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_Pay_ValidationFields(t *testing.T) {
	ve := domain.NewValidationError()
	ve.Add("cardNumber", "card number is required")
	uc := &fakeUseCase{err: ve}
	identity := &domain.Identity{UserID: 10, Role: domain.RoleCustomer}

	rec := doRequest(t, uc, `{"paymentMethod":"Card"}`, identity)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "cardNumber")
}

func TestHandler_Pay_InvalidBody(t *testing.T) {
	identity := &domain.Identity{UserID: 10, Role: domain.RoleCustomer}
	rec := doRequest(t, &fakeUseCase{}, `{not json`, identity)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
