// Package fetcher реализует клиентскую загрузку записей о комиссиях из API дашборда.
//
// Fetcher переводит ответы сервера в типизированные ошибки и защищает
// состояние клиента от перекрывающихся запросов: каждый запрос получает
// монотонно растущий порядковый номер, и к видимому состоянию применяется
// только ответ последнего выданного запроса, устаревшие отбрасываются.
package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/zatiq-tech/commission-dashboard/internal/models"
)

// ErrPromoNotFound возвращается, когда сервер ответил 404 с маркером PROMO_NOT_FOUND.
var ErrPromoNotFound = errors.New("promo not found")

// ErrStale возвращается, когда ответ пришёл после того,
// как был выдан более новый запрос, и поэтому не был применён.
var ErrStale = errors.New("stale response discarded")

// HTTPError описывает неуспешный HTTP-статус ответа сервера дашборда.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.Status)
}

// Fetcher загружает записи о комиссиях и хранит последний применённый результат.
type Fetcher struct {
	baseURL    string
	token      string
	httpClient *http.Client

	mu      sync.Mutex
	issued  uint64           // Номер последнего выданного запроса
	applied uint64           // Номер запроса, чей результат применён
	latest  *models.Envelope // Последний применённый конверт
}

// New создаёт новый Fetcher для заданного адреса API и токена сессии.
func New(baseURL, token string) *Fetcher {
	return &Fetcher{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch загружает записи за период. Если к моменту завершения был выдан
// более новый запрос, результат отбрасывается и возвращается ErrStale.
func (f *Fetcher) Fetch(ctx context.Context, filters models.DashboardFilters) (*models.Envelope, error) {
	const op = "fetcher.Fetch"

	f.mu.Lock()
	f.issued++
	seq := f.issued
	f.mu.Unlock()

	envelope, err := f.do(ctx, filters)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.issued {
		return nil, fmt.Errorf("%s: %w", op, ErrStale)
	}
	f.applied = seq
	f.latest = envelope
	return envelope, nil
}

// Latest возвращает последний применённый конверт или nil,
// если ни один запрос ещё не завершился успешно.
func (f *Fetcher) Latest() *models.Envelope {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest
}

func (f *Fetcher) do(ctx context.Context, filters models.DashboardFilters) (*models.Envelope, error) {
	const op = "fetcher.do"

	params := url.Values{}
	params.Set("from", filters.From)
	params.Set("to", filters.To)
	if filters.PromoID != nil && *filters.PromoID != "" {
		params.Set("promo_id", *filters.PromoID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/api/commission?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+f.token)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error == "PROMO_NOT_FOUND" {
			promoID := ""
			if filters.PromoID != nil {
				promoID = *filters.PromoID
			}
			return nil, fmt.Errorf("promo id %q: %w", promoID, ErrPromoNotFound)
		}
		return nil, &HTTPError{Status: resp.StatusCode}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{Status: resp.StatusCode}
	}

	var envelope models.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &envelope, nil
}
