package login

import (
	"bytes"
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
	"github.com/zatiq-tech/commission-dashboard/internal/storage/userstore"
)

// MockService реализует интерфейс login.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, username, password string) (*models.PublicUser, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.PublicUser), args.String(1), args.Error(2)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	publicUser := &models.PublicUser{
		ID:       1,
		Username: "admin",
		Role:     "admin",
		Name:     "Admin User",
		Email:    "admin@zatiq.tech",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешный вход",
			requestBody: Request{Username: "admin", Password: "admin123"},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "admin", "admin123").
					Return(publicUser, "signed-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"user":{"id":1,"username":"admin","role":"admin","name":"Admin User","email":"admin@zatiq.tech"},"token":"signed-token","message":"Login successful"}`,
		},
		{
			name:        "неверные учетные данные",
			requestBody: Request{Username: "admin", Password: "wrong"},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "admin", "wrong").
					Return(nil, "", userstore.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success":false,"message":"Invalid username or password"}`,
		},
		{
			name:           "отсутствуют обязательные поля",
			requestBody:    Request{Username: "admin"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Username and password are required"}`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Username and password are required"}`,
		},
		{
			name:        "ошибка сервиса",
			requestBody: Request{Username: "admin", Password: "admin123"},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "admin", "admin123").
					Return(nil, "", errors.New("users file unreadable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockService)
			tt.setupMock(mockSvc)

			handler := New(logger, mockSvc)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}

// Пароль не должен попадать в ответ ни при каком сценарии.
func TestLoginHandler_ОтветНеСодержитПоляPassword(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mockSvc := new(MockService)
	mockSvc.On("Login", mock.Anything, "admin", "admin123").
		Return(&models.PublicUser{ID: 1, Username: "admin", Role: "admin"}, "token", nil)

	body, err := json.Marshal(Request{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	New(logger, mockSvc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	user, ok := decoded["user"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, user, "password")
}
