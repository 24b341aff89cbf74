package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatiq-tech/commission-dashboard/internal/models"
)

func makeRecords(n int) []models.SubscriptionRecord {
	records := make([]models.SubscriptionRecord, n)
	for i := range records {
		records[i].SubscriptionID = fmt.Sprintf("sub-%d", i)
	}
	return records
}

func TestPager_РазбиениеНаСтраницы(t *testing.T) {
	p := New(makeRecords(45), 20)

	require.Equal(t, 3, p.TotalPages())
	require.Equal(t, 1, p.Current())

	page := p.Page()
	require.Len(t, page, 20)
	assert.Equal(t, "sub-0", page[0].SubscriptionID)
	assert.Equal(t, "sub-19", page[19].SubscriptionID)

	p.SetPage(3)
	page = p.Page()
	require.Len(t, page, 5)
	assert.Equal(t, "sub-40", page[0].SubscriptionID)
	assert.Equal(t, "sub-44", page[4].SubscriptionID)
}

func TestPager_ПрижатиеНомераСтраницы(t *testing.T) {
	p := New(makeRecords(45), 20)

	p.SetPage(0)
	assert.Equal(t, 1, p.Current())

	p.SetPage(-5)
	assert.Equal(t, 1, p.Current())

	p.SetPage(4)
	assert.Equal(t, 3, p.Current())
}

func TestPager_NextPrevНаКраях(t *testing.T) {
	p := New(makeRecords(45), 20)

	assert.False(t, p.Prev())
	assert.Equal(t, 1, p.Current())

	assert.True(t, p.Next())
	assert.True(t, p.Next())
	assert.Equal(t, 3, p.Current())

	assert.False(t, p.Next())
	assert.Equal(t, 3, p.Current())

	assert.True(t, p.Prev())
	assert.Equal(t, 2, p.Current())
}

func TestPager_ПустойСписок(t *testing.T) {
	p := New(nil, 20)

	assert.Equal(t, 1, p.TotalPages())
	assert.Equal(t, 1, p.Current())
	assert.Empty(t, p.Page())

	assert.False(t, p.Next())
	assert.False(t, p.Prev())
}

func TestPager_НеположительныйРазмерСтраницы(t *testing.T) {
	p := New(makeRecords(45), 0)

	assert.Equal(t, 3, p.TotalPages())
	assert.Len(t, p.Page(), DefaultPageSize)
}

func TestPager_SetDataПрижимаетТекущуюСтраницу(t *testing.T) {
	p := New(makeRecords(100), 20)
	p.SetPage(5)
	require.Equal(t, 5, p.Current())

	// Переключение на более короткую вкладку не оставляет пейджер на пустой странице
	p.SetData(makeRecords(30))
	assert.Equal(t, 2, p.TotalPages())
	assert.Equal(t, 2, p.Current())
	assert.Len(t, p.Page(), 10)

	p.SetData(nil)
	assert.Equal(t, 1, p.Current())
	assert.Empty(t, p.Page())
}

func TestPager_PageNumbers(t *testing.T) {
	cases := []struct {
		name     string
		records  int
		pageSize int
		current  int
		window   int
		expected []int
	}{
		{
			name:     "Все страницы помещаются в окно",
			records:  60,
			pageSize: 20,
			current:  2,
			window:   5,
			expected: []int{1, 2, 3},
		},
		{
			name:     "Окно в начале списка",
			records:  200,
			pageSize: 20,
			current:  1,
			window:   5,
			expected: []int{1, 2, 3, 4, 5, Ellipsis, 10},
		},
		{
			name:     "Окно в середине списка",
			records:  200,
			pageSize: 20,
			current:  5,
			window:   3,
			expected: []int{1, Ellipsis, 4, 5, 6, Ellipsis, 10},
		},
		{
			name:     "Окно в конце списка",
			records:  200,
			pageSize: 20,
			current:  10,
			window:   5,
			expected: []int{1, Ellipsis, 6, 7, 8, 9, 10},
		},
		{
			name:     "Сосед края без маркера пропуска",
			records:  200,
			pageSize: 20,
			current:  2,
			window:   3,
			expected: []int{1, 2, 3, Ellipsis, 10},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := New(makeRecords(tc.records), tc.pageSize)
			p.SetPage(tc.current)
			assert.Equal(t, tc.expected, p.PageNumbers(tc.window))
		})
	}
}
