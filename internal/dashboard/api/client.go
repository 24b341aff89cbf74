// Package api реализует HTTP-клиент эндпоинтов аутентификации дашборда.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/zatiq-tech/commission-dashboard/internal/models"
)

// ErrInvalidCredentials возвращается при ответе 401 на вход.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Client клиент эндпоинтов /api/auth сервера дашборда.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт новый клиент аутентификации.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Login выполняет вход и возвращает пользователя без пароля и токен сессии.
func (c *Client) Login(ctx context.Context, username, password string) (*models.PublicUser, string, error) {
	const op = "api.Login"

	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, "", ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("%s: unexpected status: %d", op, resp.StatusCode)
	}

	var result struct {
		Success bool              `json:"success"`
		User    models.PublicUser `json:"user"`
		Token   string            `json:"token"`
		Message string            `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if !result.Success {
		return nil, "", fmt.Errorf("%s: %s", op, result.Message)
	}
	return &result.User, result.Token, nil
}

// Check проверяет, что токен валиден и сессия на сервере жива.
func (c *Client) Check(ctx context.Context, token string) (*models.PublicUser, error) {
	const op = "api.Check"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/session", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: session rejected with status %d", op, resp.StatusCode)
	}

	var result struct {
		Success bool               `json:"success"`
		User    *models.PublicUser `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !result.Success || result.User == nil {
		return nil, fmt.Errorf("%s: session rejected", op)
	}
	return result.User, nil
}

// Logout удаляет сессию токена на сервере.
func (c *Client) Logout(ctx context.Context, token string) error {
	const op = "api.Logout"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/logout", nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status: %d", op, resp.StatusCode)
	}
	return nil
}
