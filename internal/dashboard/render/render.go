// Package render отвечает за вывод дашборда в терминал: карточки сводных
// показателей, таблицу записей активной вкладки и строку навигации пейджера.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/zatiq-tech/commission-dashboard/internal/dashboard/metrics"
	"github.com/zatiq-tech/commission-dashboard/internal/dashboard/pagination"
	"github.com/zatiq-tech/commission-dashboard/internal/models"
)

// FormatCurrency форматирует сумму как валюту BDT с разделителями тысяч.
func FormatCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	whole := int64(amount)
	frac := int64((amount-float64(whole))*100 + 0.5)
	if frac >= 100 {
		whole++
		frac -= 100
	}

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%sBDT %s.%02d", sign, b.String(), frac)
}

// FormatAmount форматирует десятичную строку upstream как валюту.
// Нечитаемое значение возвращается как есть.
func FormatAmount(amount string) string {
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return amount
	}
	return FormatCurrency(value)
}

// FormatDate приводит ISO-дату upstream к короткому виду, например Jan 2, 2006.
// Нечитаемая дата возвращается как есть.
func FormatDate(dateString string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, dateString); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return dateString
}

// WriteSummary выводит карточки сводных показателей.
func WriteSummary(w io.Writer, s metrics.Summary) {
	fmt.Fprintf(w, "Total Commission:    %s\n", FormatCurrency(s.TotalCommission))
	fmt.Fprintf(w, "Total Transactions:  %d\n", s.TotalTransactions)
	fmt.Fprintf(w, "Completed:           %d (%d%% completion rate)\n", s.CompletedTransactions, s.CompletionRate())
	fmt.Fprintf(w, "Unique Shops:        %d\n", s.UniqueShops)
	if s.InvalidAmounts > 0 {
		fmt.Fprintf(w, "Unparsable amounts:  %d (counted as zero)\n", s.InvalidAmounts)
	}
}

// WriteTable выводит таблицу записей одной страницы.
func WriteTable(w io.Writer, records []models.SubscriptionRecord) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SHOP\tSUBSCRIPTION ID\tAMOUNT\tCOMMISSION\tSTATUS\tTYPE\tDATE")
	for _, r := range records {
		status := r.Status
		if status == "" {
			status = "Unknown"
		}
		fmt.Fprintf(tw, "%s (%s)\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ShopName, r.ShopID,
			r.SubscriptionID,
			FormatAmount(r.Amount),
			FormatAmount(r.CommissionAmount),
			status,
			strings.ReplaceAll(r.SubscriptionType, "_", " "),
			FormatDate(r.CreatedAt),
		)
	}
	tw.Flush()
}

// WritePagination выводит строку навигации: номера страниц с пропусками
// и положение текущей страницы.
func WritePagination(w io.Writer, p *pagination.Pager, window int) {
	if p.TotalPages() <= 1 {
		return
	}
	parts := make([]string, 0, window+4)
	for _, n := range p.PageNumbers(window) {
		switch {
		case n == pagination.Ellipsis:
			parts = append(parts, "...")
		case n == p.Current():
			parts = append(parts, fmt.Sprintf("[%d]", n))
		default:
			parts = append(parts, strconv.Itoa(n))
		}
	}
	fmt.Fprintf(w, "Page %d of %d:  %s\n", p.Current(), p.TotalPages(), strings.Join(parts, " "))
}
