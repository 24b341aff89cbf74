// Package login реализует HTTP-обработчик для запросов аутентификации операторов.
//
// В нём определяется структура Request для входных данных, выполняется декодирование JSON,
// проверка и валидация полей, а также делегирование операции входа сервису аутентификации.
// При успешной аутентификации возвращается JSON с пользователем без пароля и JWT;
// в случае ошибок формируются соответствующие HTTP-ответы.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/zatiq-tech/commission-dashboard/internal/http/response"
	"github.com/zatiq-tech/commission-dashboard/internal/lib/sl"
	"github.com/zatiq-tech/commission-dashboard/internal/models"
	"github.com/zatiq-tech/commission-dashboard/internal/storage/userstore"
)

// Request — структура входных данных для авторизации.
type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult данные успешного входа, отдаваемые обработчиком.
type LoginResult struct {
	Success bool              `json:"success"`
	User    models.PublicUser `json:"user"`
	Token   string            `json:"token"`
	Message string            `json:"message"`
}

// Service описывает интерфейс бизнес-логики аутентификации.
//
// Включает метод Login для входа пользователя по username и password.
type Service interface {
	Login(ctx context.Context, username, password string) (*models.PublicUser, string, error)
}

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис аутентификации
	validate *validator.Validate // Валидатор для проверки входных данных
}

// New создает новый экземпляр Handler с указанными логгером и сервисом аутентификации.
//
// Инициализирует валидатор для проверки структур.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Авторизация оператора
// @Description Аутентифицирует оператора по имени и паролю из файлового хранилища. Возвращает пользователя без пароля и JWT.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные оператора"
// @Success 200 {object} LoginResult "Успешная авторизация"
// @Failure 400 {object} response.AuthResponse "Отсутствуют обязательные поля"
// @Failure 401 {object} response.AuthResponse "Неверные учетные данные"
// @Failure 500 {object} response.AuthResponse "Внутренняя ошибка сервера"
// @Router /api/auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Fail("Username and password are required"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Fail("Username and password are required"))
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, userstore.ErrInvalidCredentials) {
			log.Info("invalid credentials", slog.String("username", req.Username))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Fail("Invalid username or password"))
			return
		}
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("Internal server error"))
		return
	}

	log.Info("login success", slog.String("username", req.Username))
	render.JSON(w, r, LoginResult{
		Success: true,
		User:    *user,
		Token:   token,
		Message: "Login successful",
	})
}
