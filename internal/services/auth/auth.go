// Package services содержит логику бизнес-уровня для аутентификации операторов.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zatiq-tech/commission-dashboard/internal/lib/jwt"
	"github.com/zatiq-tech/commission-dashboard/internal/models"
	"github.com/zatiq-tech/commission-dashboard/internal/session"
	"github.com/zatiq-tech/commission-dashboard/internal/storage/userstore"
)

// ErrSessionNotFound возвращается, когда токен корректен,
// но сессия уже удалена или истекла.
var ErrSessionNotFound = errors.New("session not found")

// UserRepository описывает контракт поиска пользователя по учётным данным.
type UserRepository interface {
	// FindByCredentials возвращает пользователя с точным совпадением
	// username и password или userstore.ErrInvalidCredentials.
	FindByCredentials(ctx context.Context, username, password string) (*models.User, error)
}

// SessionStore описывает контракт хранилища сессий.
type SessionStore interface {
	Create(ctx context.Context, user models.PublicUser, ttl time.Duration) (*session.Session, error)
	Get(ctx context.Context, id string) (*session.Session, bool, error)
	Delete(ctx context.Context, id string) error
}

// TokenMaker расширяет jwt.Maker сроком жизни токена,
// чтобы TTL сессии совпадал с TTL токена.
type TokenMaker interface {
	jwt.Maker
	TokenTTL() time.Duration
}

// AuthService отвечает за вход, проверку сессии и выход.
type AuthService struct {
	users    UserRepository
	sessions SessionStore
	jwtMaker TokenMaker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, sessions SessionStore, jwtMaker TokenMaker) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		jwtMaker: jwtMaker,
	}
}

// Login проверяет учётные данные, создаёт сессию и генерирует JWT.
// Возвращает пользователя без пароля и подписанный токен.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.PublicUser, string, error) {
	user, err := s.users.FindByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, userstore.ErrInvalidCredentials) {
			return nil, "", userstore.ErrInvalidCredentials
		}
		return nil, "", err
	}

	public := user.Public()
	sess, err := s.sessions.Create(ctx, public, s.jwtMaker.TokenTTL())
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwtMaker.GenerateToken(public.Username, public.Role, sess.ID)
	if err != nil {
		return nil, "", err
	}
	return &public, token, nil
}

// Check разбирает токен и убеждается, что сессия всё ещё существует.
// Возвращает пользователя из сессионной записи.
func (s *AuthService) Check(ctx context.Context, token string) (*models.PublicUser, error) {
	const op = "services.auth.Check"
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sess, found, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil, ErrSessionNotFound
	}
	return &sess.User, nil
}

// Logout разбирает токен и удаляет сессию. Невалидный токен не ошибка:
// выходить из несуществующей сессии можно идемпотентно.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.SessionID)
}
