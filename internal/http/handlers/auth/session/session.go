// Package session реализует HTTP-обработчики проверки сохранённой сессии и выхода.
//
// Probe отвечает текущим пользователем, если токен валиден и сессия жива:
// именно этим эндпоинтом клиент при старте решает, показывать экран входа
// или дашборд. Logout удаляет сессию на сервере.
package session

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/zatiq-tech/commission-dashboard/internal/http/middlewarectx"
	"github.com/zatiq-tech/commission-dashboard/internal/http/response"
	"github.com/zatiq-tech/commission-dashboard/internal/lib/sl"
	"github.com/zatiq-tech/commission-dashboard/internal/models"
)

// Service описывает интерфейс проверки сессии и выхода.
type Service interface {
	Check(ctx context.Context, token string) (*models.PublicUser, error)
	Logout(ctx context.Context, token string) error
}

// Handler обрабатывает запросы проверки сессии и выхода.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// Probe godoc
// @Summary Проверка сохранённой сессии
// @Description Возвращает пользователя текущей сессии, если токен валиден и сессия не удалена.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.AuthResponse "Сессия активна"
// @Failure 401 {object} response.ErrorResponse "Сессия не найдена"
// @Router /api/auth/session [get]
func (h *Handler) Probe(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.session.probe"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token, ok := r.Context().Value(middlewarectx.Token).(string)
	if !ok || token == "" {
		log.Error("token not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Err("unauthorized"))
		return
	}

	user, err := h.service.Check(r.Context(), token)
	if err != nil {
		log.Info("session check failed", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Err("session expired"))
		return
	}

	render.JSON(w, r, response.OKWithUser(user, ""))
}

// Logout godoc
// @Summary Выход оператора
// @Description Удаляет сессию текущего токена.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.AuthResponse "Сессия удалена"
// @Failure 500 {object} response.AuthResponse "Внутренняя ошибка сервера"
// @Router /api/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.session.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token, _ := r.Context().Value(middlewarectx.Token).(string)
	if err := h.service.Logout(r.Context(), token); err != nil {
		log.Error("logout failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("Internal server error"))
		return
	}

	log.Info("logout success")
	render.JSON(w, r, response.AuthResponse{Success: true, Message: "Logged out"})
}
