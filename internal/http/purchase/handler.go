package purchase

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ermolnik/kopilka/internal/purchase"
)

type Handler struct {
	svc *purchase.Service
}

func NewHandler(svc *purchase.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type categoryRequest struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Emoji     *string `json:"emoji"`
	IsSystem  bool    `json:"isSystem"`
	IsVisible bool    `json:"isVisible"`
	Limit     *int64  `json:"limit"`
	Order     int     `json:"order"`
}

type tagRequest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type purchaseRequest struct {
	Category            categoryRequest `json:"category"`
	AccountID           string          `json:"accountId"`
	Value               int64           `json:"value"`
	ValueInMainCurrency int64           `json:"valueInMainCurrency"`
	Note                *string         `json:"note"`
	Date                int64           `json:"date"`
	Tags                []tagRequest    `json:"tags"`
}

// toParams normalizes the nullable wire fields: absent note and emoji become
// empty strings, an absent category limit becomes 0. The limit is always
// carried so the column is always written.
func (req purchaseRequest) toParams() purchase.CreateParams {
	params := purchase.CreateParams{
		Category: purchase.Category{
			ID:        req.Category.ID,
			Title:     req.Category.Title,
			IsSystem:  req.Category.IsSystem,
			IsVisible: req.Category.IsVisible,
			Order:     req.Category.Order,
		},
		AccountID:           req.AccountID,
		Value:               req.Value,
		ValueInMainCurrency: req.ValueInMainCurrency,
		Date:                req.Date,
	}

	if req.Category.Emoji != nil {
		params.Category.Emoji = *req.Category.Emoji
	}

	if req.Category.Limit != nil {
		params.Category.Limit = *req.Category.Limit
	}

	if req.Note != nil {
		params.Note = *req.Note
	}

	for _, t := range req.Tags {
		params.Tags = append(params.Tags, purchase.Tag{ID: t.ID, Title: t.Title})
	}

	return params
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), req.toParams())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ps, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(ps)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, purchase.ErrNotFound) {
			http.Error(w, "purchase not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req purchaseRequest
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
