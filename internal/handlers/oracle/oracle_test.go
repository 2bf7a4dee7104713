package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/dto"
	"github.com/alphapoints/platform/internal/service/capservice"
	oracleservice "github.com/alphapoints/platform/internal/service/oracleservice"
	"github.com/alphapoints/platform/pkg/auth"
)

func NewMock(t *testing.T) (*OracleHandler, *MockService, *MockCapResolver) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	caps := NewMockCapResolver(ctrl)
	handler := New(service, caps)
	defer ctrl.Finish()
	return handler, service, caps
}

func capRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	return r.WithContext(context.WithValue(r.Context(), auth.CapabilityIDKey, "cap-1"))
}

func TestCreateHandler(t *testing.T) {
	handler, service, caps := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Oracle created",
			body: `{"rate":"100","decimals":2,"staleness_threshold":300}`,
			prepareMock: func() {
				caps.EXPECT().ResolveOracle(gomock.Any(), "cap-1").Return(capservice.OracleCap{}, nil)
				service.EXPECT().
					CreateOracle(gomock.Any(), capservice.OracleCap{}, "100", uint8(2), uint64(300)).
					Return(&domain.Oracle{ID: 1, Rate: "100", Decimals: 2, StalenessThreshold: 300}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Missing capability",
			body: `{"rate":"100","decimals":2,"staleness_threshold":300}`,
			prepareMock: func() {
				caps.EXPECT().ResolveOracle(gomock.Any(), "cap-1").Return(capservice.OracleCap{}, capservice.ErrUnauthorized)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name: "Zero rate rejected",
			body: `{"rate":"0","decimals":2,"staleness_threshold":300}`,
			prepareMock: func() {
				caps.EXPECT().ResolveOracle(gomock.Any(), "cap-1").Return(capservice.OracleCap{}, nil)
				service.EXPECT().
					CreateOracle(gomock.Any(), capservice.OracleCap{}, "0", uint8(2), uint64(300)).
					Return(nil, oracleservice.ErrInvalidRate)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Second create rejected",
			body: `{"rate":"100","decimals":2,"staleness_threshold":300}`,
			prepareMock: func() {
				caps.EXPECT().ResolveOracle(gomock.Any(), "cap-1").Return(capservice.OracleCap{}, nil)
				service.EXPECT().
					CreateOracle(gomock.Any(), capservice.OracleCap{}, "100", uint8(2), uint64(300)).
					Return(nil, oracleservice.ErrOracleExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "oracle already created",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Create(w, capRequest(http.MethodPost, "/oracle", tt.body))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestUpdateRateHandler(t *testing.T) {
	handler, service, caps := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Rate updated",
			body: `{"rate":"200","current_time":1700000000}`,
			prepareMock: func() {
				caps.EXPECT().ResolveOracle(gomock.Any(), "cap-1").Return(capservice.OracleCap{}, nil)
				service.EXPECT().
					UpdateRate(gomock.Any(), capservice.OracleCap{}, "200", uint64(1700000000)).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Oracle not found",
			body: `{"rate":"200","current_time":1700000000}`,
			prepareMock: func() {
				caps.EXPECT().ResolveOracle(gomock.Any(), "cap-1").Return(capservice.OracleCap{}, nil)
				service.EXPECT().
					UpdateRate(gomock.Any(), capservice.OracleCap{}, "200", uint64(1700000000)).
					Return(oracleservice.ErrOracleNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Invalid rate",
			body: `{"rate":"0","current_time":1700000000}`,
			prepareMock: func() {
				caps.EXPECT().ResolveOracle(gomock.Any(), "cap-1").Return(capservice.OracleCap{}, nil)
				service.EXPECT().
					UpdateRate(gomock.Any(), capservice.OracleCap{}, "0", uint64(1700000000)).
					Return(oracleservice.ErrInvalidRate)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Invalid request body",
			body: `{"rate":invalid}`,
			prepareMock: func() {
				caps.EXPECT().ResolveOracle(gomock.Any(), "cap-1").Return(capservice.OracleCap{}, nil)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.UpdateRate(w, capRequest(http.MethodPut, "/oracle/rate", tt.body))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUpdateThresholdHandler(t *testing.T) {
	handler, service, caps := NewMock(t)

	caps.EXPECT().ResolveOracle(gomock.Any(), "cap-1").Return(capservice.OracleCap{}, nil)
	service.EXPECT().
		UpdateStalenessThreshold(gomock.Any(), capservice.OracleCap{}, uint64(600)).
		Return(nil)

	w := httptest.NewRecorder()
	handler.UpdateThreshold(w, capRequest(http.MethodPut, "/oracle/threshold", `{"threshold":600}`))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		target        string
		prepareMock   func()
		expectedCode  int
		expectedStale bool
	}{
		{
			name:   "Fresh oracle",
			target: "/oracle?t=100",
			prepareMock: func() {
				service.EXPECT().GetOracle(gomock.Any()).
					Return(&domain.Oracle{ID: 1, Rate: "100", Decimals: 2, LastUpdateTime: 90, StalenessThreshold: 300}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedStale: false,
		},
		{
			name:   "Stale oracle",
			target: "/oracle?t=500",
			prepareMock: func() {
				service.EXPECT().GetOracle(gomock.Any()).
					Return(&domain.Oracle{ID: 1, Rate: "100", Decimals: 2, LastUpdateTime: 90, StalenessThreshold: 300}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedStale: true,
		},
		{
			name:         "Missing time",
			target:       "/oracle",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Oracle not found",
			target: "/oracle?t=100",
			prepareMock: func() {
				service.EXPECT().GetOracle(gomock.Any()).Return(nil, oracleservice.ErrOracleNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			handler.Get(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.OracleResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedStale, body.Stale)
			}
		})
	}
}

func TestConvertHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name           string
		target         string
		prepareMock    func()
		expectedCode   int
		expectedAmount uint64
	}{
		{
			name:   "Points to asset",
			target: "/oracle/convert?direction=points_to_asset&amount=42&t=100",
			prepareMock: func() {
				service.EXPECT().ConvertPointsToAsset(gomock.Any(), uint64(42), uint64(100)).Return(uint64(84), nil)
			},
			expectedCode:   http.StatusOK,
			expectedAmount: 84,
		},
		{
			name:   "Asset to points",
			target: "/oracle/convert?direction=asset_to_points&amount=84&t=100",
			prepareMock: func() {
				service.EXPECT().ConvertAssetToPoints(gomock.Any(), uint64(84), uint64(100)).Return(uint64(42), nil)
			},
			expectedCode:   http.StatusOK,
			expectedAmount: 42,
		},
		{
			name:         "Unknown direction",
			target:       "/oracle/convert?direction=sideways&amount=42&t=100",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Stale feed refused",
			target: "/oracle/convert?direction=points_to_asset&amount=42&t=100",
			prepareMock: func() {
				service.EXPECT().ConvertPointsToAsset(gomock.Any(), uint64(42), uint64(100)).
					Return(uint64(0), oracleservice.ErrOracleStale)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Internal server error",
			target: "/oracle/convert?direction=points_to_asset&amount=42&t=100",
			prepareMock: func() {
				service.EXPECT().ConvertPointsToAsset(gomock.Any(), uint64(42), uint64(100)).
					Return(uint64(0), errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			handler.Convert(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ConvertResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedAmount, body.Amount)
			}
		})
	}
}
