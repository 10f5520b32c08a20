package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/astrotravel/spaceport/internal/domain"
	"github.com/astrotravel/spaceport/internal/middleware"
	"github.com/astrotravel/spaceport/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) ListBookings(ctx context.Context, userID string, status *domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) GetBooking(ctx context.Context, userID, id string) (*domain.Booking, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, userID string, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ChangeStatus(ctx context.Context, userID, id string, target domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, userID, id, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testContext(t *testing.T, method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = http.NoBody
	}
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, testLogger())

	c, w := testContext(t, "POST", "/api/bookings", createBookingRequest{
		TripID:        "trip-1",
		TripPackageID: "pkg-1",
		Passengers:    2,
	})
	c.Set(middleware.UserIDKey, "user-1")

	created := &domain.Booking{
		ID:         "b-1",
		UserID:     "user-1",
		TripID:     "trip-1",
		Status:     domain.BookingStatusPending,
		TotalPrice: 500000,
		Passengers: 2,
	}
	mockService.On("CreateBooking", c.Request.Context(), "user-1", booking.CreateBookingInput{
		TripID:        "trip-1",
		TripPackageID: "pkg-1",
		Passengers:    2,
	}).Return(created, nil).Once()

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got domain.Booking
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "b-1", got.ID)
	assert.Equal(t, domain.BookingStatusPending, got.Status)
	assert.Equal(t, int64(500000), got.TotalPrice)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_noIdentity(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, testLogger())

	c, w := testContext(t, "POST", "/api/bookings", createBookingRequest{
		TripID:        "trip-1",
		TripPackageID: "pkg-1",
		Passengers:    2,
	})

	handler.create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "CreateBooking")
}

func TestBookingHandler_create_invalidBody(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, testLogger())

	c, w := testContext(t, "POST", "/api/bookings", map[string]any{
		"tripId":     "trip-1",
		"passengers": 0,
	})
	c.Set(middleware.UserIDKey, "user-1")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateBooking")
}

func TestBookingHandler_create_insufficientSeats(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, testLogger())

	c, w := testContext(t, "POST", "/api/bookings", createBookingRequest{
		TripID:        "trip-1",
		TripPackageID: "pkg-1",
		Passengers:    60,
	})
	c.Set(middleware.UserIDKey, "user-1")

	mockService.On("CreateBooking", c.Request.Context(), "user-1", mock.Anything).
		Return(nil, domain.ErrInsufficientSeats).Once()

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBookingHandler_get_notFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, testLogger())

	c, w := testContext(t, "GET", "/api/bookings/b-other", nil)
	c.Set(middleware.UserIDKey, "user-1")
	c.Params = gin.Params{{Key: "id", Value: "b-other"}}

	mockService.On("GetBooking", c.Request.Context(), "user-1", "b-other").
		Return(nil, domain.ErrNotFound).Once()

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_list_withStatusFilter(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, testLogger())

	c, w := testContext(t, "GET", "/api/bookings?status=CONFIRMED", nil)
	c.Set(middleware.UserIDKey, "user-1")

	status := domain.BookingStatusConfirmed
	bookings := []domain.Booking{{ID: "b-1", UserID: "user-1", Status: status}}
	mockService.On("ListBookings", c.Request.Context(), "user-1", &status).Return(bookings, nil).Once()

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []domain.Booking
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_list_invalidStatus(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, testLogger())

	c, w := testContext(t, "GET", "/api/bookings?status=BOGUS", nil)
	c.Set(middleware.UserIDKey, "user-1")

	handler.list(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ListBookings")
}

func TestBookingHandler_changeStatus_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, testLogger())

	c, w := testContext(t, "PATCH", "/api/bookings/b-1", changeStatusRequest{Status: "CANCELLED"})
	c.Set(middleware.UserIDKey, "user-1")
	c.Params = gin.Params{{Key: "id", Value: "b-1"}}

	cancelled := &domain.Booking{ID: "b-1", UserID: "user-1", Status: domain.BookingStatusCancelled}
	mockService.On("ChangeStatus", c.Request.Context(), "user-1", "b-1", domain.BookingStatusCancelled).
		Return(cancelled, nil).Once()

	handler.changeStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got domain.Booking
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
}

func TestBookingHandler_changeStatus_invalidTarget(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, testLogger())

	c, w := testContext(t, "PATCH", "/api/bookings/b-1", changeStatusRequest{Status: "EXPIRED"})
	c.Set(middleware.UserIDKey, "user-1")
	c.Params = gin.Params{{Key: "id", Value: "b-1"}}

	handler.changeStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ChangeStatus")
}

func TestBookingHandler_changeStatus_illegalTransition(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, testLogger())

	c, w := testContext(t, "PATCH", "/api/bookings/b-1", changeStatusRequest{Status: "CONFIRMED"})
	c.Set(middleware.UserIDKey, "user-1")
	c.Params = gin.Params{{Key: "id", Value: "b-1"}}

	mockService.On("ChangeStatus", c.Request.Context(), "user-1", "b-1", domain.BookingStatusConfirmed).
		Return(nil, domain.ErrInvalidTransition).Once()

	handler.changeStatus(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
