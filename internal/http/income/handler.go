package income

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ermolnik/kopilka/internal/income"
)

type Handler struct {
	svc *income.Service
}

func NewHandler(svc *income.Service) *Handler {
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
	Order     int     `json:"order"`
}

type incomeRequest struct {
	Category            categoryRequest `json:"category"`
	AccountID           string          `json:"accountId"`
	Value               int64           `json:"value"`
	ValueInMainCurrency int64           `json:"valueInMainCurrency"`
	Note                *string         `json:"note"`
	Date                int64           `json:"date"`
}

// toParams normalizes the nullable wire fields: an absent note or emoji
// becomes an empty string.
func (req incomeRequest) toParams() income.CreateParams {
	params := income.CreateParams{
		Category: income.Category{
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

	if req.Note != nil {
		params.Note = *req.Note
	}

	return params
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req incomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inc, err := h.svc.Create(r.Context(), req.toParams())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(inc)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	incs, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(incs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inc, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, income.ErrNotFound) {
			http.Error(w, "income not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(inc)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req incomeRequest
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
