package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatiq-tech/commission-dashboard/internal/http/middlewarectx"
	"github.com/zatiq-tech/commission-dashboard/internal/models"
)

// MockService реализует интерфейс session.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Check(ctx context.Context, token string) (*models.PublicUser, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublicUser), args.Error(1)
}

func (m *MockService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func requestWithToken(method, target, token string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.Token, token))
	}
	return req
}

func TestProbe_АктивнаяСессия(t *testing.T) {
	mockSvc := new(MockService)
	mockSvc.On("Check", mock.Anything, "token-1").
		Return(&models.PublicUser{ID: 1, Username: "admin", Role: "admin"}, nil)

	w := httptest.NewRecorder()
	New(testLogger(), mockSvc).Probe(w, requestWithToken(http.MethodGet, "/api/auth/session", "token-1"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"user":{"id":1,"username":"admin","role":"admin","name":"","email":""}}`, w.Body.String())
}

func TestProbe_СессияУдалена(t *testing.T) {
	mockSvc := new(MockService)
	mockSvc.On("Check", mock.Anything, "token-1").Return(nil, errors.New("session not found"))

	w := httptest.NewRecorder()
	New(testLogger(), mockSvc).Probe(w, requestWithToken(http.MethodGet, "/api/auth/session", "token-1"))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"session expired"}`, w.Body.String())
}

func TestProbe_БезТокенаВКонтексте(t *testing.T) {
	w := httptest.NewRecorder()
	New(testLogger(), new(MockService)).Probe(w, requestWithToken(http.MethodGet, "/api/auth/session", ""))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
}

func TestLogout_Успех(t *testing.T) {
	mockSvc := new(MockService)
	mockSvc.On("Logout", mock.Anything, "token-1").Return(nil)

	w := httptest.NewRecorder()
	New(testLogger(), mockSvc).Logout(w, requestWithToken(http.MethodPost, "/api/auth/logout", "token-1"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Logged out"}`, w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestLogout_ОшибкаСервиса(t *testing.T) {
	mockSvc := new(MockService)
	mockSvc.On("Logout", mock.Anything, "token-1").Return(errors.New("redis down"))

	w := httptest.NewRecorder()
	New(testLogger(), mockSvc).Logout(w, requestWithToken(http.MethodPost, "/api/auth/logout", "token-1"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, w.Body.String())
}
