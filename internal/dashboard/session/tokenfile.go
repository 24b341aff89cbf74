package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// FileTokenStore хранит токен сессии в локальном файле между запусками клиента.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore создаёт хранилище токена по заданному пути.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Load читает токен из файла. Отсутствие файла не ошибка: возвращается пустая строка.
func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save записывает токен в файл, создавая каталог при необходимости.
func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear удаляет файл с токеном. Отсутствие файла не ошибка.
func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
