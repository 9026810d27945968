package wallet_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	wallethttp "github.com/ermolnik/kopilka/internal/http/wallet"
	"github.com/ermolnik/kopilka/internal/wallet"
)

func newRouter(repo wallet.Repository) http.Handler {
	h := wallethttp.NewHandler(wallet.NewService(repo))

	r := chi.NewRouter()
	r.Route("/wallets", h.Routes)

	return r
}

func TestCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := wallet.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateWallet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w *wallet.Wallet) error {
			w.ID = 1
			return nil
		})

	router := newRouter(repo)

	body := `{
		"relevanceTime": 1700000000000,
		"dateCreated": 1690000000000,
		"currency": {"id": 1, "title": "Euro", "symbol": "€", "charCode": "EUR"},
		"accounts": [
			{"id": "acc1", "title": "Daily", "type": "BUDGET", "limit": 30000,
			 "currency": {"id": 1, "title": "Euro", "symbol": "€", "charCode": "EUR"},
			 "incomeCategoryIds": ["c1"], "spentCategoryIds": ["c2"],
			 "order": 0, "relevanceTime": 1700000000000, "dateCreated": 1690000000000}
		]
	}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/wallets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got struct {
		ID       int64 `json:"id"`
		Currency struct {
			CharCode string `json:"charCode"`
		} `json:"currency"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "EUR", got.Currency.CharCode)
}

func TestGetHydratesEmptyAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := wallet.NewMockRepository(ctrl)
	repo.EXPECT().
		GetWallet(gomock.Any(), int64(4)).
		Return(&wallet.Wallet{
			ID:       4,
			Currency: wallet.Currency{ID: 1, Title: "Euro", Symbol: "€", CharCode: "EUR"},
			Accounts: make([]wallet.Account, 0),
		}, nil)

	router := newRouter(repo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/wallets/4", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// accounts are not persisted; reads always yield an empty list, not null
	assert.Contains(t, rec.Body.String(), `"accounts":[]`)
}

func TestDeleteMissingIDIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := wallet.NewMockRepository(ctrl)
	repo.EXPECT().
		DeleteWallet(gomock.Any(), int64(999)).
		Return(false, nil)

	router := newRouter(repo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/wallets/999", nil)
	router.ServeHTTP(rec, req)

	// deleting an absent wallet is a no-op success, not a 404
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Deleted bool `json:"deleted"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Deleted)
}
