// Package metrics содержит агрегацию записей о комиссиях для сводных карточек дашборда.
//
// Записи разбиваются на две вкладки: первичные подписки (subscription_type ==
// first_time) и повторные (все остальные значения). Разбиение исчерпывающее:
// запись с незнакомым типом попадает во вкладку повторных, а не теряется.
package metrics

import (
	"strconv"
	"strings"

	"github.com/zatiq-tech/commission-dashboard/internal/models"
)

// Summary сводные показатели по одной выборке записей.
type Summary struct {
	FirstTime []models.SubscriptionRecord // Первичные подписки
	Recurring []models.SubscriptionRecord // Повторные подписки (всё, что не first_time)

	TotalCommission       float64 // Сумма комиссий по всем записям
	TotalTransactions     int     // Количество записей
	CompletedTransactions int     // Записи со статусом completed (без учёта регистра)
	UniqueShops           int     // Количество различных shop_id
	InvalidAmounts        int     // Записи с нечитаемой суммой комиссии, в сумме учтены нулём
}

// Summarize считает сводные показатели по списку записей одной выборки.
func Summarize(records []models.SubscriptionRecord) Summary {
	s := Summary{
		TotalTransactions: len(records),
	}

	shops := make(map[string]struct{})
	for _, r := range records {
		if r.SubscriptionType == models.SubscriptionTypeFirstTime {
			s.FirstTime = append(s.FirstTime, r)
		} else {
			s.Recurring = append(s.Recurring, r)
		}

		amount, err := strconv.ParseFloat(r.CommissionAmount, 64)
		if err != nil {
			s.InvalidAmounts++
		} else {
			s.TotalCommission += amount
		}

		if r.Status != "" && strings.EqualFold(r.Status, "completed") {
			s.CompletedTransactions++
		}

		shops[r.ShopID] = struct{}{}
	}
	s.UniqueShops = len(shops)
	return s
}

// CompletionRate возвращает долю завершённых транзакций в процентах,
// округлённую до целого. При отсутствии транзакций возвращает 0.
func (s Summary) CompletionRate() int {
	if s.TotalTransactions == 0 {
		return 0
	}
	rate := float64(s.CompletedTransactions) / float64(s.TotalTransactions) * 100
	return int(rate + 0.5)
}

// HasData сообщает, есть ли в выборке хоть одна запись.
// Именно этим признаком дашборд выбирает между данными и заглушкой
// «нет данных», а не разбором отформатированных значений.
func (s Summary) HasData() bool {
	return s.TotalTransactions > 0
}
