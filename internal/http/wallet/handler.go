package wallet

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ermolnik/kopilka/internal/wallet"
)

type Handler struct {
	svc *wallet.Service
}

func NewHandler(svc *wallet.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type currencyRequest struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Symbol   string `json:"symbol"`
	CharCode string `json:"charCode"`
}

type accountRequest struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Type              wallet.AccountType `json:"type"`
	Limit             *int64             `json:"limit"`
	Currency          currencyRequest    `json:"currency"`
	IncomeCategoryIDs []string           `json:"incomeCategoryIds"`
	SpentCategoryIDs  []string           `json:"spentCategoryIds"`
	Order             int                `json:"order"`
	RelevanceTime     int64              `json:"relevanceTime"`
	DateCreated       int64              `json:"dateCreated"`
}

type walletRequest struct {
	RelevanceTime int64            `json:"relevanceTime"`
	DateCreated   int64            `json:"dateCreated"`
	Currency      currencyRequest  `json:"currency"`
	Accounts      []accountRequest `json:"accounts"`
}

func (req walletRequest) toParams() wallet.CreateParams {
	params := wallet.CreateParams{
		RelevanceTime: req.RelevanceTime,
		DateCreated:   req.DateCreated,
		Currency:      toCurrency(req.Currency),
	}

	for _, a := range req.Accounts {
		acc := wallet.Account{
			ID:                a.ID,
			Title:             a.Title,
			Type:              a.Type,
			Currency:          toCurrency(a.Currency),
			IncomeCategoryIDs: a.IncomeCategoryIDs,
			SpentCategoryIDs:  a.SpentCategoryIDs,
			Order:             a.Order,
			RelevanceTime:     a.RelevanceTime,
			DateCreated:       a.DateCreated,
		}
		if a.Limit != nil {
			acc.Limit = *a.Limit
		}

		params.Accounts = append(params.Accounts, acc)
	}

	return params
}

func toCurrency(c currencyRequest) wallet.Currency {
	return wallet.Currency{
		ID:       c.ID,
		Title:    c.Title,
		Symbol:   c.Symbol,
		CharCode: c.CharCode,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req walletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	wlt, err := h.svc.Create(r.Context(), req.toParams())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(wlt)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ws, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(ws)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	wlt, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, wallet.ErrNotFound) {
			http.Error(w, "wallet not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(wlt)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req walletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.toParams())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(updateResponse{Updated: updated}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(deleteResponse{Deleted: deleted}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
