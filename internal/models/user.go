// Package models содержит доменную модель пользователя системы.
// Хранилище пользователей — плоский JSON-файл, пароли хранятся открытым
// текстом и сравниваются на точное совпадение; структура используется
// в бизнес‑логике и при чтении файла.
package models

// User представляет запись пользователя в файловом хранилище.
type User struct {
	ID       int    `json:"id"`       // Уникальный идентификатор пользователя
	Username string `json:"username"` // Имя пользователя (уникальное)
	Password string `json:"password"` // Пароль открытым текстом
	Role     string `json:"role"`     // Роль пользователя, admin или user
	Name     string `json:"name"`     // Отображаемое имя
	Email    string `json:"email"`    // Электронная почта
}

// PublicUser представляет пользователя без секретных полей.
// Именно эта структура возвращается клиентам и хранится в сессии.
type PublicUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// Public возвращает копию пользователя без пароля.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Name:     u.Name,
		Email:    u.Email,
	}
}
