// Package session реализует клиентское состояние аутентификации дашборда.
//
// Gate — явный конечный автомат с тремя состояниями: loading (проверяется
// сохранённая сессия), unauthenticated (нужен экран входа) и authenticated
// (дашборд доступен, пользователь известен). Gate создаётся явно и передаётся
// зависимостью всем, кому нужен текущий пользователь.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/zatiq-tech/commission-dashboard/internal/models"
)

// State состояние автомата аутентификации.
type State int

const (
	// StateLoading — начальное состояние, сохранённая сессия ещё проверяется.
	StateLoading State = iota
	// StateUnauthenticated — сессии нет, нужен вход.
	StateUnauthenticated
	// StateAuthenticated — сессия активна, пользователь известен.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// AuthAPI описывает серверные операции, нужные автомату.
type AuthAPI interface {
	// Login выполняет вход и возвращает пользователя без пароля и токен.
	Login(ctx context.Context, username, password string) (*models.PublicUser, string, error)
	// Check проверяет токен и существование сессии на сервере.
	Check(ctx context.Context, token string) (*models.PublicUser, error)
	// Logout удаляет сессию токена.
	Logout(ctx context.Context, token string) error
}

// TokenStore описывает локальное хранение токена между запусками.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Gate хранит текущее состояние аутентификации клиента.
type Gate struct {
	api    AuthAPI
	tokens TokenStore

	state State
	user  *models.PublicUser
	token string
}

// NewGate создаёт автомат в состоянии loading.
func NewGate(api AuthAPI, tokens TokenStore) *Gate {
	return &Gate{
		api:    api,
		tokens: tokens,
		state:  StateLoading,
	}
}

// State возвращает текущее состояние автомата.
func (g *Gate) State() State {
	return g.state
}

// User возвращает пользователя активной сессии или nil.
func (g *Gate) User() *models.PublicUser {
	return g.user
}

// Token возвращает токен активной сессии или пустую строку.
func (g *Gate) Token() string {
	return g.token
}

// Restore проверяет сохранённую сессию и переводит автомат из loading
// в authenticated либо unauthenticated. Любая ошибка проверки означает
// отсутствие сессии, а не отказ.
func (g *Gate) Restore(ctx context.Context) State {
	token, err := g.tokens.Load()
	if err != nil || token == "" {
		g.state = StateUnauthenticated
		return g.state
	}

	user, err := g.api.Check(ctx, token)
	if err != nil {
		_ = g.tokens.Clear()
		g.state = StateUnauthenticated
		return g.state
	}

	g.user = user
	g.token = token
	g.state = StateAuthenticated
	return g.state
}

// Login выполняет вход и при успехе переводит автомат в authenticated,
// сохраняя токен для следующих запусков.
func (g *Gate) Login(ctx context.Context, username, password string) error {
	user, token, err := g.api.Login(ctx, username, password)
	if err != nil {
		g.state = StateUnauthenticated
		return err
	}
	if err := g.tokens.Save(token); err != nil {
		return errors.Join(err, g.api.Logout(ctx, token))
	}
	g.user = user
	g.token = token
	g.state = StateAuthenticated
	return nil
}

// Logout удаляет сессию на сервере и локальный токен,
// переводит автомат в unauthenticated.
func (g *Gate) Logout(ctx context.Context) error {
	var err error
	if g.token != "" {
		err = g.api.Logout(ctx, g.token)
	}
	if cerr := g.tokens.Clear(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	g.user = nil
	g.token = ""
	g.state = StateUnauthenticated
	return err
}
