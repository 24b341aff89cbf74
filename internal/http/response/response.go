// Package response содержит вспомогательные типы и функции для формирования
// JSON‑ответов HTTP‑обработчиков. Приложение использует два формата ответов:
// эндпоинты аутентификации отвечают {success, user, message}, эндпоинты
// комиссий — конвертом upstream либо {error}.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"

	"github.com/zatiq-tech/commission-dashboard/internal/models"
)

// AuthResponse описывает структуру JSON‑ответа эндпоинтов аутентификации.
// Поле User заполняется только при успехе.
type AuthResponse struct {
	Success bool               `json:"success"`
	User    *models.PublicUser `json:"user,omitempty"`
	Message string             `json:"message,omitempty"`
}

// ErrorResponse — структура ошибки эндпоинтов комиссий.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Error string `json:"error" example:"PROMO_NOT_FOUND"`
}

// OKWithUser возвращает успешный AuthResponse с пользователем и сообщением.
func OKWithUser(user *models.PublicUser, msg string) AuthResponse {
	return AuthResponse{
		Success: true,
		User:    user,
		Message: msg,
	}
}

// Fail возвращает AuthResponse с признаком неуспеха и сообщением.
func Fail(msg string) AuthResponse {
	return AuthResponse{
		Success: false,
		Message: msg,
	}
}

// Err возвращает ErrorResponse с переданным текстом ошибки.
func Err(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{Error: strings.Join(errsMsgs, ", ")}
}
