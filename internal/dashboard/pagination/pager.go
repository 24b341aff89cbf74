// Package pagination реализует постраничный вывод списка записей с фиксированным
// размером страницы и набором номеров страниц для навигации.
//
// Номера страниц строятся окном вокруг текущей: первая и последняя страницы
// показываются всегда, между окном и краями вставляется маркер Ellipsis.
package pagination

import (
	"github.com/zatiq-tech/commission-dashboard/internal/models"
)

// Ellipsis — маркер пропуска в списке номеров страниц.
const Ellipsis = -1

// DefaultPageSize размер страницы таблицы дашборда.
const DefaultPageSize = 20

// Pager хранит список записей и текущую страницу.
type Pager struct {
	data     []models.SubscriptionRecord
	pageSize int
	current  int
}

// New создаёт Pager на первой странице. Неположительный размер страницы
// заменяется на DefaultPageSize.
func New(data []models.SubscriptionRecord, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{
		data:     data,
		pageSize: pageSize,
		current:  1,
	}
}

// TotalPages возвращает количество страниц, минимум 1.
func (p *Pager) TotalPages() int {
	if len(p.data) == 0 {
		return 1
	}
	return (len(p.data) + p.pageSize - 1) / p.pageSize
}

// Current возвращает номер текущей страницы.
func (p *Pager) Current() int {
	return p.current
}

// Page возвращает срез записей текущей страницы.
func (p *Pager) Page() []models.SubscriptionRecord {
	start := (p.current - 1) * p.pageSize
	if start >= len(p.data) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.data) {
		end = len(p.data)
	}
	return p.data[start:end]
}

// SetPage переходит на страницу n, прижимая её к диапазону [1, TotalPages].
func (p *Pager) SetPage(n int) {
	p.current = clamp(n, 1, p.TotalPages())
}

// Next переходит на следующую страницу. Возвращает false,
// если пейджер уже на последней странице и перехода не было.
func (p *Pager) Next() bool {
	if p.current >= p.TotalPages() {
		return false
	}
	p.current++
	return true
}

// Prev переходит на предыдущую страницу. Возвращает false,
// если пейджер уже на первой странице и перехода не было.
func (p *Pager) Prev() bool {
	if p.current <= 1 {
		return false
	}
	p.current--
	return true
}

// SetData заменяет список записей, например при переключении вкладки.
// Текущая страница прижимается к новому диапазону, чтобы более короткий
// список не оставил пейджер на пустой странице.
func (p *Pager) SetData(data []models.SubscriptionRecord) {
	p.data = data
	p.current = clamp(p.current, 1, p.TotalPages())
}

// PageNumbers возвращает номера страниц для навигации с окном window
// вокруг текущей страницы. Если все страницы помещаются в окно, возвращаются
// все номера; иначе всегда присутствуют первая и последняя страницы,
// соседи текущей, а пропуски обозначены значением Ellipsis.
func (p *Pager) PageNumbers(window int) []int {
	total := p.TotalPages()
	if window <= 0 {
		window = 5
	}
	if total <= window {
		nums := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			nums = append(nums, i)
		}
		return nums
	}

	// Окно соседей вокруг текущей страницы, прижатое к краям.
	half := (window - 1) / 2
	lo := clamp(p.current-half, 1, total)
	hi := clamp(lo+window-1, 1, total)
	lo = clamp(hi-window+1, 1, total)

	nums := make([]int, 0, window+4)
	if lo > 1 {
		nums = append(nums, 1)
		if lo > 2 {
			nums = append(nums, Ellipsis)
		}
	}
	for i := lo; i <= hi; i++ {
		nums = append(nums, i)
	}
	if hi < total {
		if hi < total-1 {
			nums = append(nums, Ellipsis)
		}
		nums = append(nums, total)
	}
	return nums
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
