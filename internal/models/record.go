// Package models содержит доменные структуры, описывающие записи о комиссиях,
// а также вспомогательные типы для работы с данными из внешних источников (например, JSON-запросы).
package models

// SubscriptionRecord представляет одну запись о комиссии по подписке,
// полученную из admin API. Денежные поля приходят строками с десятичной
// точкой и парсятся в float только при агрегации и отображении.
type SubscriptionRecord struct {
	SubscriptionID     string  `json:"subscription_id"`       // Уникальный идентификатор подписки в ответе
	ShopID             string  `json:"shop_id"`               // Идентификатор магазина
	ShopName           string  `json:"shop_name"`             // Название магазина
	PlanID             string  `json:"plan_id"`               // Идентификатор тарифного плана
	PromoCodeID        *string `json:"promo_code_id"`         // Идентификатор промокода (может отсутствовать)
	RenewalPromoCodeID *string `json:"renewal_promo_code_id"` // Промокод продления (может отсутствовать)
	Amount             string  `json:"amount"`                // Сумма транзакции, десятичная строка
	CommissionAmount   string  `json:"commission_amount"`     // Сумма комиссии, десятичная строка
	Status             string  `json:"status"`                // Статус: completed, pending, failed и пр.
	CreatedAt          string  `json:"created_at"`            // Дата создания в ISO-формате
	SubscriptionType   string  `json:"subscription_type"`     // Тип: first_time либо renewed и др.
}

// SubscriptionTypeFirstTime значение subscription_type для первичных подписок.
// Все остальные значения считаются повторными (recurring).
const SubscriptionTypeFirstTime = "first_time"

// PageLink элемент списка ссылок пагинации в ответе admin API.
type PageLink struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// Envelope пагинированная обёртка admin API вокруг списка записей.
// Поля повторяют формат ответа upstream без изменений.
type Envelope struct {
	CurrentPage  int                  `json:"current_page"`
	Data         []SubscriptionRecord `json:"data"`
	FirstPageURL string               `json:"first_page_url"`
	From         int                  `json:"from"`
	LastPage     int                  `json:"last_page"`
	LastPageURL  string               `json:"last_page_url"`
	Links        []PageLink           `json:"links"`
	NextPageURL  *string              `json:"next_page_url"`
	Path         string               `json:"path"`
	PerPage      int                  `json:"per_page"`
	PrevPageURL  *string              `json:"prev_page_url"`
	To           int                  `json:"to"`
	Total        int                  `json:"total"`
}
