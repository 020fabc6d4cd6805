package updateBooking

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

	"roomBooker/internal/http-server/handlers/booking/updateBooking/mocks"
	"roomBooker/internal/lib/logger/handlers/slogdiscard"
	"roomBooker/internal/models"
	"roomBooker/internal/service"
)

const validBody = `{
	"oldKey": "New Cairo_Main Stage_2024-10-27",
	"oldHourLabel": "10:00",
	"newKey": "Zayed_The Lounge Room_2024-10-28",
	"newRoomName": "The Lounge Room",
	"newHourLabel": "14:00",
	"newDetails": {"presenter": "alice", "persons": 8},
	"username": "alice"
}`

func TestUpdateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	from := models.Slot{Key: "New Cairo_Main Stage_2024-10-27", HourLabel: "10:00"}
	to := models.Slot{Key: "Zayed_The Lounge Room_2024-10-28", HourLabel: "14:00"}

	expectCall := func(err error) func(m *mocks.BookingUpdater) {
		return func(m *mocks.BookingUpdater) {
			m.On("UpdateBooking", mock.Anything, from, to, "The Lounge Room",
				models.Details{"presenter": "alice", "persons": float64(8)}, "alice",
			).Return(err)
		}
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.BookingUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:           "Success",
			requestBody:    validBody,
			mockSetup:      expectCall(nil),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"booking updated successfully"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{`,
			mockSetup:      func(m *mocks.BookingUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing username",
			requestBody:    `{"oldKey":"a","oldHourLabel":"b","newKey":"c","newRoomName":"d","newHourLabel":"e","newDetails":{}}`,
			mockSetup:      func(m *mocks.BookingUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Username")
			},
		},
		{
			name:           "Original booking not found",
			requestBody:    validBody,
			mockSetup:      expectCall(fmt.Errorf("op: %w", service.ErrNotFound)),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"original booking not found"}`,
		},
		{
			name:           "Not the owner",
			requestBody:    validBody,
			mockSetup:      expectCall(fmt.Errorf("op: %w", service.ErrAuth)),
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"you can only edit your own bookings"}`,
		},
		{
			name:           "Capacity violated",
			requestBody:    validBody,
			mockSetup:      expectCall(fmt.Errorf("op: %w", &service.CapacityError{Min: 4, Max: 10})),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"number of persons must be between 4 and 10 for this room"}`,
		},
		{
			name:           "New slot occupied",
			requestBody:    validBody,
			mockSetup:      expectCall(fmt.Errorf("op: %w", service.ErrConflict)),
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"the new time slot is already booked"}`,
		},
		{
			name:           "Internal server error",
			requestBody:    validBody,
			mockSetup:      expectCall(errors.New("disk full")),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewBookingUpdater(t)
			tc.mockSetup(mockUpdater)

			handler := New(logger, mockUpdater)

			req, err := http.NewRequest(http.MethodPut, "/api/bookings", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
