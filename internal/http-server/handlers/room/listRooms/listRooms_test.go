package listRooms

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomBooker/internal/catalog"
	"roomBooker/internal/http-server/handlers/room/listRooms/mocks"
	"roomBooker/internal/lib/logger/handlers/slogdiscard"
)

func TestListRoomsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		location       string
		mockSetup      func(m *mocks.RoomLister)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "Known location",
			location: "Zayed",
			mockSetup: func(m *mocks.RoomLister) {
				m.On("RoomsFor", "Zayed").Return([]string{"Main Stage West", "The Lounge Room"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `["Main Stage West","The Lounge Room"]`,
		},
		{
			name:     "Unknown location",
			location: "Giza",
			mockSetup: func(m *mocks.RoomLister) {
				m.On("RoomsFor", "Giza").Return(nil, catalog.ErrLocationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"location not found"}`,
		},
		{
			name:     "Missing location",
			location: "",
			mockSetup: func(m *mocks.RoomLister) {
				m.On("RoomsFor", "").Return(nil, catalog.ErrLocationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"location not found"}`,
		},
		{
			name:     "Unexpected error",
			location: "Zayed",
			mockSetup: func(m *mocks.RoomLister) {
				m.On("RoomsFor", "Zayed").Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to list rooms"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewRoomLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest(http.MethodGet, "/api/rooms?location="+url.QueryEscape(tc.location), nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestListRoomsWithCatalog(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger(), catalog.Default())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/rooms?location=New+Cairo", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `["Main Stage","The Premiere Room","The Briefing Room","The Vision Hall"]`, rr.Body.String())
}
