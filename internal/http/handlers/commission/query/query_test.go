package query

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatiq-tech/commission-dashboard/internal/models"
	commissionservice "github.com/zatiq-tech/commission-dashboard/internal/services/commission"
)

// MockService реализует интерфейс query.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Fetch(ctx context.Context, filters models.DashboardFilters) (*models.Envelope, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Envelope), args.Error(1)
}

func TestQueryHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		target         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "отсутствуют обязательные параметры",
			target:         "/api/commission?from=2024-01-01",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"from and to parameters are required"}`,
		},
		{
			name:           "некорректная дата",
			target:         "/api/commission?from=01-06-2024&to=2024-01-31",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"from and to must be dates in format 2006-01-02"}`,
		},
		{
			name:           "конец периода раньше начала",
			target:         "/api/commission?from=2024-02-01&to=2024-01-01",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"from must not be after to"}`,
		},
		{
			name:   "пустой список без промокода это успех",
			target: "/api/commission?from=2024-01-01&to=2024-01-31",
			setupMock: func(m *MockService) {
				m.On("Fetch", mock.Anything, models.DashboardFilters{From: "2024-01-01", To: "2024-01-31"}).
					Return(&models.Envelope{CurrentPage: 1, LastPage: 1, Data: []models.SubscriptionRecord{}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "промокод не найден",
			target: "/api/commission?from=2024-01-01&to=2024-01-31&promo_id=999",
			setupMock: func(m *MockService) {
				m.On("Fetch", mock.Anything, mock.MatchedBy(func(f models.DashboardFilters) bool {
					return f.PromoID != nil && *f.PromoID == "999"
				})).Return(nil, commissionservice.ErrPromoNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"PROMO_NOT_FOUND"}`,
		},
		{
			name:   "нечисловой промокод передаётся upstream как есть",
			target: "/api/commission?from=2024-01-01&to=2024-01-31&promo_id=SUMMER20",
			setupMock: func(m *MockService) {
				m.On("Fetch", mock.Anything, mock.MatchedBy(func(f models.DashboardFilters) bool {
					return f.PromoID != nil && *f.PromoID == "SUMMER20"
				})).Return(&models.Envelope{CurrentPage: 1, LastPage: 1, Data: []models.SubscriptionRecord{{SubscriptionID: "sub-1"}}, Total: 1}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "ошибка upstream",
			target: "/api/commission?from=2024-01-01&to=2024-01-31",
			setupMock: func(m *MockService) {
				m.On("Fetch", mock.Anything, mock.Anything).
					Return(nil, errors.New("upstream down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to fetch commission data"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockService)
			tt.setupMock(mockSvc)

			handler := New(logger, mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

// Конверт upstream отдаётся клиенту без изменений.
func TestQueryHandler_ПрозрачныйКонверт(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mockSvc := new(MockService)

	envelope := &models.Envelope{
		CurrentPage: 1,
		LastPage:    1,
		PerPage:     2,
		Total:       2,
		From:        1,
		To:          2,
		Data: []models.SubscriptionRecord{
			{SubscriptionID: "sub-1", ShopID: "shop-A", ShopName: "Shop A", CommissionAmount: "10.50", Status: "completed", SubscriptionType: "first_time"},
			{SubscriptionID: "sub-2", ShopID: "shop-B", ShopName: "Shop B", CommissionAmount: "5.25", Status: "pending", SubscriptionType: "renewed"},
		},
	}
	mockSvc.On("Fetch", mock.Anything, mock.Anything).Return(envelope, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/commission?from=2024-01-01&to=2024-01-31", nil)
	w := httptest.NewRecorder()
	New(logger, mockSvc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, envelope.Data, got.Data)
	assert.Equal(t, envelope.Total, got.Total)
}
