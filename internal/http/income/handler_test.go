package income_test

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

	incomehttp "github.com/ermolnik/kopilka/internal/http/income"
	"github.com/ermolnik/kopilka/internal/income"
)

func newRouter(repo income.Repository) http.Handler {
	h := incomehttp.NewHandler(income.NewService(repo))

	r := chi.NewRouter()
	r.Route("/incomes", h.Routes)

	return r
}

func TestCreateThenGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var stored *income.Income

	repo := income.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateIncome(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *income.Income) error {
			inc.ID = 1
			stored = inc
			return nil
		})
	repo.EXPECT().
		GetIncome(gomock.Any(), int64(1)).
		DoAndReturn(func(_ context.Context, _ int64) (*income.Income, error) {
			return stored, nil
		})

	router := newRouter(repo)

	body := `{
		"category": {"id": "c1", "title": "Salary", "isSystem": false, "isVisible": true, "order": 0},
		"accountId": "a1",
		"value": 100000,
		"valueInMainCurrency": 100000,
		"note": null,
		"date": 1700000000000
	}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/incomes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID int64 `json:"id"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/incomes/1", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Category struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"category"`
		AccountID string `json:"accountId"`
		Value     int64  `json:"value"`
		Note      string `json:"note"`
		Date      int64  `json:"date"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "c1", got.Category.ID)
	assert.Equal(t, "Salary", got.Category.Title)
	assert.Equal(t, "a1", got.AccountID)
	assert.Equal(t, int64(100000), got.Value)
	assert.Equal(t, int64(1700000000000), got.Date)
	// a null note is normalized to an empty string
	assert.Equal(t, "", got.Note)
}

func TestGetInvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRouter(income.NewMockRepository(ctrl))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/incomes/abc", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := income.NewMockRepository(ctrl)
	repo.EXPECT().
		GetIncome(gomock.Any(), int64(42)).
		Return(nil, income.ErrNotFound)

	router := newRouter(repo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/incomes/42", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateMissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := income.NewMockRepository(ctrl)
	repo.EXPECT().
		UpdateIncome(gomock.Any(), int64(99), gomock.Any()).
		Return(false, nil)

	router := newRouter(repo)

	body := `{"category": {"id": "c1", "title": "Salary"}, "accountId": "a1", "value": 1, "valueInMainCurrency": 1, "date": 1}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/incomes/99", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Updated bool `json:"updated"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Updated)
}

func TestDeleteMissingIDIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := income.NewMockRepository(ctrl)
	repo.EXPECT().
		DeleteIncome(gomock.Any(), int64(999)).
		Return(false, nil)

	router := newRouter(repo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/incomes/999", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Deleted bool `json:"deleted"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Deleted)
}
