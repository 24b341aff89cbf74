package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatiq-tech/commission-dashboard/internal/models"
)

func strPtr(s string) *string { return &s }

func TestFetchPage_Success(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/commission/special", r.URL.Path)
		gotQuery = r.URL.Query()

		envelope := models.Envelope{
			CurrentPage: 1,
			LastPage:    2,
			PerPage:     2,
			Total:       3,
			Data: []models.SubscriptionRecord{
				{SubscriptionID: "sub-1", ShopID: "shop-1", CommissionAmount: "10.50"},
				{SubscriptionID: "sub-2", ShopID: "shop-2", CommissionAmount: "5.25"},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(envelope))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	filters := models.DashboardFilters{From: "2024-01-01", To: "2024-01-31", PromoID: strPtr("14")}

	envelope, err := client.FetchPage(context.Background(), filters, 1)
	require.NoError(t, err)

	assert.Len(t, envelope.Data, 2)
	assert.Equal(t, 2, envelope.LastPage)
	assert.Equal(t, []string{"2024-01-01"}, gotQuery["from"])
	assert.Equal(t, []string{"2024-01-31"}, gotQuery["to"])
	assert.Equal(t, []string{"14"}, gotQuery["promo_id"])
	assert.NotContains(t, gotQuery, "page", "первая страница запрашивается без параметра page")
}

func TestFetchPage_ПромокодНеПередаётсяБезФильтра(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("promo_id"))
		require.NoError(t, json.NewEncoder(w).Encode(models.Envelope{CurrentPage: 1, LastPage: 1}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchPage(context.Background(), models.DashboardFilters{From: "2024-01-01", To: "2024-01-31"}, 1)
	require.NoError(t, err)
}

func TestFetchPage_НомерСтраницыВЗапросе(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		require.NoError(t, json.NewEncoder(w).Encode(models.Envelope{CurrentPage: 3, LastPage: 3}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchPage(context.Background(), models.DashboardFilters{From: "2024-01-01", To: "2024-01-31"}, 3)
	require.NoError(t, err)
}

func TestFetchPage_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchPage(context.Background(), models.DashboardFilters{From: "2024-01-01", To: "2024-01-31"}, 1)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.Code)
}

func TestFetchPage_НекорректныйJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not a json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchPage(context.Background(), models.DashboardFilters{From: "2024-01-01", To: "2024-01-31"}, 1)
	require.Error(t, err)
}
