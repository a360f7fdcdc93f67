package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/rumbus/shuttle/internal/pkg/models"
	"github.com/rumbus/shuttle/services/stops/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, *mocks.MockStopUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStopUC := mocks.NewMockStopUC(ctrl)
	e := echo.New()
	NewStopHandler(mockStopUC).RegisterRoutes(e.Group("/stops"))
	return e, mockStopUC
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListStops_Success(t *testing.T) {
	e, mockStopUC := newTestServer(t)

	mockStopUC.EXPECT().ListStops(gomock.Any()).Return([]*models.Stop{
		{Lat: 18.2145115, Lon: -67.1398197, Name: "Ingeniería Civil"},
	}, nil)

	rec := doRequest(e, http.MethodGet, "/stops", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	data, ok := response["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 1)
	assert.Equal(t, "Ingeniería Civil", data[0].(map[string]interface{})["name"])
}

func TestListStops_StorageUnavailable(t *testing.T) {
	e, mockStopUC := newTestServer(t)

	mockStopUC.EXPECT().ListStops(gomock.Any()).
		Return(nil, errors.Join(models.ErrStorageUnavailable, errors.New("dial tcp: refused")))

	rec := doRequest(e, http.MethodGet, "/stops", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "dial tcp")
}

func TestGetStop(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		mockSetup  func(uc *mocks.MockStopUC)
		wantStatus int
	}{
		{
			name: "found",
			path: "/stops/18.2145115/-67.1398197",
			mockSetup: func(uc *mocks.MockStopUC) {
				uc.EXPECT().GetStop(gomock.Any(), 18.2145115, -67.1398197).
					Return(&models.Stop{Lat: 18.2145115, Lon: -67.1398197, Name: "Ingeniería Civil"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "non numeric lat",
			path:       "/stops/north/-67.1398197",
			mockSetup:  func(uc *mocks.MockStopUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "NaN lon",
			path:       "/stops/18.2/NaN",
			mockSetup:  func(uc *mocks.MockStopUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing",
			path: "/stops/1/2",
			mockSetup: func(uc *mocks.MockStopUC) {
				uc.EXPECT().GetStop(gomock.Any(), 1.0, 2.0).Return(nil, models.ErrStopNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, mockStopUC := newTestServer(t)
			tt.mockSetup(mockStopUC)

			rec := doRequest(e, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCreateStop(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(uc *mocks.MockStopUC)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"name":"Biblioteca","lat":18.2110,"lon":-67.1410}`,
			mockSetup: func(uc *mocks.MockStopUC) {
				uc.EXPECT().CreateStop(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, req *models.CreateStopRequest) (*models.Stop, error) {
						assert.Equal(t, "Biblioteca", req.Name)
						assert.Equal(t, 18.2110, *req.Lat)
						return &models.Stop{Lat: *req.Lat, Lon: *req.Lon, Name: req.Name}, nil
					})
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"message":"Stop was successfully created","stop_name":"Biblioteca"}`,
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			mockSetup:  func(uc *mocks.MockStopUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing field",
			body: `{"name":"Biblioteca","lat":18.2110}`,
			mockSetup: func(uc *mocks.MockStopUC) {
				uc.EXPECT().CreateStop(gomock.Any(), gomock.Any()).
					Return(nil, models.ErrInvalidStop)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate coordinates",
			body: `{"name":"Biblioteca","lat":18.2110,"lon":-67.1410}`,
			mockSetup: func(uc *mocks.MockStopUC) {
				uc.EXPECT().CreateStop(gomock.Any(), gomock.Any()).
					Return(nil, models.ErrStopConflict)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, mockStopUC := newTestServer(t)
			tt.mockSetup(mockStopUC)

			rec := doRequest(e, http.MethodPost, "/stops", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestUpdateStop(t *testing.T) {
	e, mockStopUC := newTestServer(t)

	mockStopUC.EXPECT().
		UpdateStop(gomock.Any(), 18.2110, -67.1410, &models.UpdateStopRequest{Name: "Biblioteca General"}).
		Return(nil)
	rec := doRequest(e, http.MethodPut, "/stops/18.2110/-67.1410", `{"name":"Biblioteca General"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	mockStopUC.EXPECT().UpdateStop(gomock.Any(), 1.0, 2.0, gomock.Any()).Return(models.ErrStopNotFound)
	rec = doRequest(e, http.MethodPut, "/stops/1/2", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteStop(t *testing.T) {
	e, mockStopUC := newTestServer(t)

	mockStopUC.EXPECT().DeleteStop(gomock.Any(), 18.2110, -67.1410).Return(nil)
	rec := doRequest(e, http.MethodDelete, "/stops/18.2110/-67.1410", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	mockStopUC.EXPECT().DeleteStop(gomock.Any(), 1.0, 2.0).Return(models.ErrStopNotFound)
	rec = doRequest(e, http.MethodDelete, "/stops/1/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(e, http.MethodDelete, "/stops/1/east", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
