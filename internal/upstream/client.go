// Package upstream реализует HTTP-клиент admin API, из которого дашборд
// получает записи о комиссиях по подпискам.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/zatiq-tech/commission-dashboard/internal/models"
)

var upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "commission_upstream_requests_total",
	Help: "Количество запросов к admin API в разрезе результата",
}, []string{"status"})

// StatusError описывает неуспешный HTTP-статус ответа admin API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected upstream status: %d", e.Code)
}

// Client клиент admin API для получения записей о комиссиях.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт новый клиент admin API.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchPage запрашивает одну страницу записей о комиссиях за период.
// Промокод добавляется в запрос только если он задан. Каждый вызов идёт
// в admin API напрямую, без кеширования.
func (c *Client) FetchPage(ctx context.Context, filters models.DashboardFilters, page int) (*models.Envelope, error) {
	const op = "upstream.FetchPage"

	params := url.Values{}
	params.Set("from", filters.From)
	params.Set("to", filters.To)
	if filters.PromoID != nil && *filters.PromoID != "" {
		params.Set("promo_id", *filters.PromoID)
	}
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}

	reqURL := c.baseURL + "/commission/special?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues("network_error").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	upstreamRequests.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%s: %w", op, &StatusError{Code: resp.StatusCode})
	}

	var envelope models.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &envelope, nil
}
