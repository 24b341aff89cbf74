// Package userstore реализует доступ к плоскому файловому хранилищу пользователей.
//
// Хранилище — JSON-файл со списком учётных записей. Файл перечитывается
// при каждой попытке входа, кеширования нет: файл считается доверенным
// локальным ресурсом, пароли хранятся открытым текстом и сравниваются
// на точное совпадение.
package userstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/zatiq-tech/commission-dashboard/internal/models"
)

// ErrInvalidCredentials возвращается, когда пара username/password
// не совпала ни с одной записью хранилища.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Store читает пользователей из JSON-файла по заданному пути.
type Store struct {
	path string
}

// New создаёт новое файловое хранилище пользователей.
func New(path string) *Store {
	return &Store{path: path}
}

// FindByCredentials ищет пользователя с точным совпадением username и password.
// Файл перечитывается на каждый вызов. Возвращает ErrInvalidCredentials,
// если совпадения нет.
func (s *Store) FindByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	const op = "userstore.FindByCredentials"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	users, err := s.readAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, u := range users {
		if u.Username == username && u.Password == password {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
}

func (s *Store) readAll() ([]models.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}
