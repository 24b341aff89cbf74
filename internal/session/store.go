// Package session реализует хранение сессий операторов в redis.
//
// Сессия создаётся при входе, живёт столько же, сколько JWT, и удаляется
// при выходе. Проверка «сохранённой сессии» при старте клиента — это
// чтение записи по идентификатору из токена.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/zatiq-tech/commission-dashboard/internal/config"
	"github.com/zatiq-tech/commission-dashboard/internal/models"
)

// Session запись о входе оператора, хранится в redis в JSON-виде.
type Session struct {
	ID        string            `json:"id"`         // Идентификатор сессии (uuid)
	User      models.PublicUser `json:"user"`       // Пользователь без секретных полей
	CreatedAt time.Time         `json:"created_at"` // Момент входа
}

// Store хранилище сессий поверх redis.
type Store struct {
	db *redis.Client
}

// InitStore подключается к redis и возвращает хранилище сессий.
func InitStore(ctx context.Context, cfg config.RedisConnection) (*Store, error) {
	const op = "session.InitStore"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{db: db}, nil
}

// Create сохраняет новую сессию с заданным временем жизни и возвращает её.
func (s *Store) Create(ctx context.Context, user models.PublicUser, ttl time.Duration) (*Session, error) {
	const op = "session.Create"
	sess := &Session{
		ID:        uuid.NewString(),
		User:      user,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.db.Set(ctx, key(sess.ID), data, ttl).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sess, nil
}

// Get возвращает сессию по идентификатору. Вторым значением сообщает,
// найдена ли запись: отсутствие сессии не является ошибкой.
func (s *Store) Get(ctx context.Context, id string) (*Session, bool, error) {
	const op = "session.Get"
	val, err := s.db.Get(ctx, key(id)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return &sess, true, nil
}

// Delete удаляет сессию по идентификатору.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.db.Del(ctx, key(id)).Err()
}

// Close закрывает подключение к redis.
func (s *Store) Close() error {
	return s.db.Close()
}

func key(id string) string {
	return "session:" + id
}
