// Package services содержит бизнес-логику получения записей о комиссиях.
//
// Сервис собирает все страницы ответа admin API в один конверт до отдачи
// клиенту, поэтому пагинация на стороне дашборда покрывает весь период,
// а не только первую страницу upstream.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zatiq-tech/commission-dashboard/internal/models"
)

// ErrPromoNotFound возвращается, когда задан promo_id, а upstream вернул
// пустой список: пустой ответ с промокодом трактуется как «промокод не найден»,
// пустой ответ без промокода — как «нет данных за период».
var ErrPromoNotFound = errors.New("promo not found")

// defaultMaxPages ограничивает обход страниц upstream,
// если в конфиге лимит не задан.
const defaultMaxPages = 50

// UpstreamClient описывает контракт клиента admin API.
type UpstreamClient interface {
	// FetchPage возвращает одну страницу записей за период.
	FetchPage(ctx context.Context, filters models.DashboardFilters, page int) (*models.Envelope, error)
}

// CommissionService реализует бизнес-логику выборки комиссий.
type CommissionService struct {
	client   UpstreamClient
	maxPages int
	log      *slog.Logger
}

// NewCommissionService создает новый экземпляр CommissionService.
func NewCommissionService(client UpstreamClient, maxPages int, log *slog.Logger) *CommissionService {
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	return &CommissionService{
		client:   client,
		maxPages: maxPages,
		log:      log,
	}
}

// Fetch возвращает записи о комиссиях за период, объединяя все страницы
// ответа upstream в один конверт. Состояние между вызовами не хранится,
// каждый вызов идёт в admin API заново.
func (s *CommissionService) Fetch(ctx context.Context, filters models.DashboardFilters) (*models.Envelope, error) {
	const op = "services.commission.Fetch"

	first, err := s.client.FetchPage(ctx, filters, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	merged := *first
	lastPage := first.LastPage
	if lastPage > s.maxPages {
		s.log.Warn("upstream reports too many pages, truncating",
			slog.Int("last_page", lastPage), slog.Int("max_pages", s.maxPages))
		lastPage = s.maxPages
	}

	for page := 2; page <= lastPage; page++ {
		next, err := s.client.FetchPage(ctx, filters, page)
		if err != nil {
			return nil, fmt.Errorf("%s: page %d: %w", op, page, err)
		}
		merged.Data = append(merged.Data, next.Data...)
	}

	// Объединённый конверт всегда представляет собой одну логическую страницу.
	merged.CurrentPage = 1
	merged.LastPage = 1
	merged.PerPage = len(merged.Data)
	merged.From = 0
	merged.To = len(merged.Data)
	merged.NextPageURL = nil
	merged.PrevPageURL = nil
	merged.Links = nil
	if len(merged.Data) > 0 {
		merged.From = 1
	}

	if filters.PromoID != nil && *filters.PromoID != "" && len(merged.Data) == 0 {
		s.log.Info("empty upstream response for promo filter",
			slog.String("promo_id", *filters.PromoID))
		return nil, ErrPromoNotFound
	}

	s.log.Info("fetched commission records",
		slog.Int("count", len(merged.Data)), slog.Int("upstream_pages", lastPage))
	return &merged, nil
}
