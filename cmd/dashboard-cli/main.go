// Дашборд комиссий для терминала: вход оператора, выборка записей за период,
// сводные показатели и таблица с вкладками first-time / recurring.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/zatiq-tech/commission-dashboard/internal/dashboard/api"
	"github.com/zatiq-tech/commission-dashboard/internal/dashboard/fetcher"
	"github.com/zatiq-tech/commission-dashboard/internal/dashboard/metrics"
	"github.com/zatiq-tech/commission-dashboard/internal/dashboard/pagination"
	"github.com/zatiq-tech/commission-dashboard/internal/dashboard/render"
	dashsession "github.com/zatiq-tech/commission-dashboard/internal/dashboard/session"
	"github.com/zatiq-tech/commission-dashboard/internal/lib/sl"
	"github.com/zatiq-tech/commission-dashboard/internal/models"
)

const dateLayout = "2006-01-02"

// tab активная вкладка таблицы.
type tab string

const (
	tabFirstTime tab = "first-time"
	tabRecurring tab = "recurring"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "адрес сервера дашборда")
	tokenPath := flag.String("token-file", defaultTokenPath(), "файл с сохранённым токеном сессии")
	from := flag.String("from", time.Now().AddDate(0, -1, 0).Format(dateLayout), "начало периода, 2006-01-02")
	to := flag.String("to", time.Now().Format(dateLayout), "конец периода, 2006-01-02")
	promo := flag.String("promo", "", "идентификатор промокода (опционально)")
	window := flag.Int("page-window", 5, "сколько номеров страниц показывать в навигации")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gate := dashsession.NewGate(api.NewClient(*serverURL), dashsession.NewFileTokenStore(*tokenPath))
	in := bufio.NewScanner(os.Stdin)

	// loading → authenticated | unauthenticated
	if gate.Restore(ctx) != dashsession.StateAuthenticated {
		if err := loginLoop(ctx, gate, in); err != nil {
			logger.Error("login aborted", sl.Err(err))
			os.Exit(1)
		}
	}
	fmt.Printf("Signed in as %s (%s)\n\n", gate.User().Name, gate.User().Role)

	filters := models.DashboardFilters{From: *from, To: *to}
	if *promo != "" {
		filters.PromoID = promo
	}

	f := fetcher.New(*serverURL, gate.Token())
	summary := metrics.Summary{}
	pager := pagination.New(nil, pagination.DefaultPageSize)
	active := tabFirstTime

	apply := func() {
		envelope, err := f.Fetch(ctx, filters)
		if err != nil {
			reportFetchError(err, filters)
			return
		}
		summary = metrics.Summarize(envelope.Data)
		pager.SetData(tabRecords(summary, active))
		redraw(summary, pager, active, *window)
	}

	apply()

	fmt.Println(`Commands: apply, from <date>, to <date>, promo <id>, tab <first-time|recurring>, n, p, page <n>, retry, logout, quit`)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(in.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "":
		case "from":
			if _, err := time.Parse(dateLayout, arg); err != nil {
				fmt.Println("expected date in format 2006-01-02")
				continue
			}
			filters.From = arg
		case "to":
			if _, err := time.Parse(dateLayout, arg); err != nil {
				fmt.Println("expected date in format 2006-01-02")
				continue
			}
			filters.To = arg
		case "promo":
			if arg == "" {
				filters.PromoID = nil
			} else {
				filters.PromoID = &arg
			}
		case "apply", "retry", "refresh":
			apply()
		case "tab":
			switch tab(arg) {
			case tabFirstTime, tabRecurring:
				active = tab(arg)
				pager.SetData(tabRecords(summary, active))
				redraw(summary, pager, active, *window)
			default:
				fmt.Println("expected: tab first-time | tab recurring")
			}
		case "n", "next":
			if pager.Next() {
				redraw(summary, pager, active, *window)
			}
		case "p", "prev":
			if pager.Prev() {
				redraw(summary, pager, active, *window)
			}
		case "page":
			var n int
			if _, err := fmt.Sscanf(arg, "%d", &n); err != nil {
				fmt.Println("expected: page <number>")
				continue
			}
			pager.SetPage(n)
			redraw(summary, pager, active, *window)
		case "logout":
			if err := gate.Logout(ctx); err != nil {
				logger.Warn("logout finished with error", sl.Err(err))
			}
			fmt.Println("Logged out")
			return
		case "quit", "exit", "q":
			return
		case "help":
			fmt.Println(`Commands: apply, from <date>, to <date>, promo <id>, tab <first-time|recurring>, n, p, page <n>, retry, logout, quit`)
		default:
			fmt.Printf("unknown command: %s\n", cmd)
		}
	}
}

// loginLoop запрашивает учётные данные до успешного входа.
func loginLoop(ctx context.Context, gate *dashsession.Gate, in *bufio.Scanner) error {
	for {
		fmt.Print("Username: ")
		if !in.Scan() {
			return errors.New("input closed")
		}
		username := strings.TrimSpace(in.Text())

		fmt.Print("Password: ")
		if !in.Scan() {
			return errors.New("input closed")
		}
		password := in.Text()

		err := gate.Login(ctx, username, password)
		if err == nil {
			return nil
		}
		if errors.Is(err, api.ErrInvalidCredentials) {
			fmt.Println("Invalid username or password. Please try again.")
			continue
		}
		return err
	}
}

// tabRecords возвращает записи активной вкладки.
func tabRecords(s metrics.Summary, active tab) []models.SubscriptionRecord {
	if active == tabRecurring {
		return s.Recurring
	}
	return s.FirstTime
}

func redraw(s metrics.Summary, pager *pagination.Pager, active tab, window int) {
	fmt.Println()
	if !s.HasData() {
		fmt.Println("No data found. Try adjusting your filters.")
		return
	}
	render.WriteSummary(os.Stdout, s)
	fmt.Printf("\n[%s] First Time: %d  Recurring: %d\n\n", active, len(s.FirstTime), len(s.Recurring))
	render.WriteTable(os.Stdout, pager.Page())
	render.WritePagination(os.Stdout, pager, window)
}

func reportFetchError(err error, filters models.DashboardFilters) {
	var httpErr *fetcher.HTTPError
	switch {
	case errors.Is(err, fetcher.ErrPromoNotFound):
		promoID := ""
		if filters.PromoID != nil {
			promoID = *filters.PromoID
		}
		fmt.Printf("Promo ID %q could not be found. Please check and try again.\n", promoID)
	case errors.Is(err, fetcher.ErrStale):
		// Результат устарел, его уже заменил более новый запрос.
	case errors.As(err, &httpErr):
		fmt.Printf("Failed to connect to the server (%v). Please check your connection and try again.\n", httpErr)
	default:
		fmt.Println("Failed to fetch commission data. Please try again with `retry`.")
	}
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "commission-dashboard", "token")
}
