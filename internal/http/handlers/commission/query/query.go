// Package query реализует HTTP-обработчик выборки записей о комиссиях.
//
// Handler принимает параметры периода и необязательный промокод из query-строки,
// валидирует их, вызывает бизнес-логику выборки и возвращает конверт upstream
// без изменений. Пустой ответ с промокодом транслируется в 404 PROMO_NOT_FOUND.
package query

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/zatiq-tech/commission-dashboard/internal/http/response"
	"github.com/zatiq-tech/commission-dashboard/internal/lib/sl"
	"github.com/zatiq-tech/commission-dashboard/internal/models"
	commissionservice "github.com/zatiq-tech/commission-dashboard/internal/services/commission"
)

// Service описывает интерфейс бизнес-логики выборки комиссий.
type Service interface {
	Fetch(ctx context.Context, filters models.DashboardFilters) (*models.Envelope, error)
}

// Handler управляет HTTP-запросами на выборку комиссий.
//
// Использует логгер для журналирования, сервис для бизнес-логики и валидатор
// для проверки параметров запроса.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики выборки
	validate *validator.Validate // Валидатор параметров запроса
}

// New создаёт новый Handler с переданным логгером и сервисом выборки.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Выборка записей о комиссиях
// @Description Возвращает записи о комиссиях за период, при необходимости суженные до одного промокода. Все страницы upstream объединяются в один ответ.
// @Tags Commission
// @Produce  json
// @Security BearerAuth
// @Param from query string true "Начало периода, 2006-01-02"
// @Param to query string true "Конец периода, 2006-01-02"
// @Param promo_id query string false "Идентификатор промокода"
// @Success 200 {object} models.Envelope "Записи о комиссиях"
// @Failure 400 {object} response.ErrorResponse "Отсутствуют или некорректны параметры"
// @Failure 404 {object} response.ErrorResponse "Промокод не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка upstream"
// @Router /api/commission [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.commission.query"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req := models.DummyFilters{
		From:    r.URL.Query().Get("from"),
		To:      r.URL.Query().Get("to"),
		PromoID: r.URL.Query().Get("promo_id"),
	}

	if req.From == "" || req.To == "" {
		log.Error("missing required query parameters")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Err("from and to parameters are required"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	fromDate, errFrom := time.Parse("2006-01-02", req.From)
	toDate, errTo := time.Parse("2006-01-02", req.To)
	if errFrom != nil || errTo != nil {
		log.Error("invalid date in query",
			slog.String("from", req.From), slog.String("to", req.To))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Err("from and to must be dates in format 2006-01-02"))
		return
	}
	if toDate.Before(fromDate) {
		log.Error("reversed period in query",
			slog.String("from", req.From), slog.String("to", req.To))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Err("from must not be after to"))
		return
	}

	filters := models.DashboardFilters{
		From: req.From,
		To:   req.To,
	}
	if req.PromoID != "" {
		filters.PromoID = &req.PromoID
	}

	envelope, err := h.service.Fetch(r.Context(), filters)
	if err != nil {
		if errors.Is(err, commissionservice.ErrPromoNotFound) {
			log.Info("promo not found", slog.String("promo_id", req.PromoID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Err("PROMO_NOT_FOUND"))
			return
		}
		log.Error("failed to fetch commission data", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Err("Failed to fetch commission data"))
		return
	}

	log.Info("success to fetch commission data", slog.Int("count", len(envelope.Data)))
	render.JSON(w, r, envelope)
}
