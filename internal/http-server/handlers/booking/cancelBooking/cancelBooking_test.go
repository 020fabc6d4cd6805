package cancelBooking

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"roomBooker/internal/http-server/handlers/booking/cancelBooking/mocks"
	"roomBooker/internal/lib/logger/handlers/slogdiscard"
	"roomBooker/internal/models"
	"roomBooker/internal/service"
)

const validBody = `{"key":"New Cairo_Main Stage_2024-10-27","hourLabel":"10:00","username":"alice"}`

func TestCancelBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	slot := models.Slot{Key: "New Cairo_Main Stage_2024-10-27", HourLabel: "10:00"}

	expectCall := func(err error) func(m *mocks.BookingCanceller) {
		return func(m *mocks.BookingCanceller) {
			m.On("CancelBooking", mock.Anything, slot, "alice").Return(err)
		}
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.BookingCanceller)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			requestBody:    validBody,
			mockSetup:      expectCall(nil),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"booking cancelled"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `nope`,
			mockSetup:      func(m *mocks.BookingCanceller) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing username",
			requestBody:    `{"key":"k","hourLabel":"10:00"}`,
			mockSetup:      func(m *mocks.BookingCanceller) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Username is a required field"}`,
		},
		{
			name:           "Booking not found",
			requestBody:    validBody,
			mockSetup:      expectCall(fmt.Errorf("op: %w", service.ErrNotFound)),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:           "Not the owner",
			requestBody:    validBody,
			mockSetup:      expectCall(fmt.Errorf("op: %w", service.ErrAuth)),
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"only the user who booked this slot can cancel it"}`,
		},
		{
			name:           "Internal server error",
			requestBody:    validBody,
			mockSetup:      expectCall(errors.New("disk full")),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to cancel booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCanceller := mocks.NewBookingCanceller(t)
			tc.mockSetup(mockCanceller)

			handler := New(logger, mockCanceller)

			req, err := http.NewRequest(http.MethodDelete, "/api/bookings", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
