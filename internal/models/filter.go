// Package models содержит структуры фильтра дашборда.
// Здесь определены как структуры для внутреннего использования в бизнес‑логике,
// так и для приёма параметров из HTTP‑запросов.
package models

// DashboardFilters представляет параметры выборки, которые передаются в слой
// бизнес-логики. Обе даты обязательны, PromoID — nil, если фильтра по промокоду нет.
type DashboardFilters struct {
	From    string  // Начало периода (включительно), формат 2006-01-02
	To      string  // Конец периода (включительно), формат 2006-01-02
	PromoID *string // Идентификатор промокода (nil, если фильтра нет)
}

// DummyFilters используется для приёма параметров фильтра из query-строки
// до их валидации и преобразования в DashboardFilters. Даты приходят строками.
// Даты проверяются на формат 2006-01-02 отдельно, после валидации структуры.
type DummyFilters struct {
	From    string `json:"from" validate:"required"` // Начало периода
	To      string `json:"to" validate:"required"`   // Конец периода
	PromoID string `json:"promo_id,omitempty"`       // Промокод (опционально), передаётся upstream как есть
}
