package income

import (
	"github.com/ermolnik/kopilka/internal/income"
)

type categoryResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Emoji     string `json:"emoji"`
	IsSystem  bool   `json:"isSystem"`
	IsVisible bool   `json:"isVisible"`
	Order     int    `json:"order"`
}

type incomeResponse struct {
	ID                  int64            `json:"id"`
	Category            categoryResponse `json:"category"`
	AccountID           string           `json:"accountId"`
	Value               int64            `json:"value"`
	ValueInMainCurrency int64            `json:"valueInMainCurrency"`
	Note                string           `json:"note"`
	Date                int64            `json:"date"`
}

type updateResponse struct {
	Updated bool `json:"updated"`
}

type deleteResponse struct {
	Deleted bool `json:"deleted"`
}

func toResponse(inc *income.Income) incomeResponse {
	return incomeResponse{
		ID: inc.ID,
		Category: categoryResponse{
			ID:        inc.Category.ID,
			Title:     inc.Category.Title,
			Emoji:     inc.Category.Emoji,
			IsSystem:  inc.Category.IsSystem,
			IsVisible: inc.Category.IsVisible,
			Order:     inc.Category.Order,
		},
		AccountID:           inc.AccountID,
		Value:               inc.Value,
		ValueInMainCurrency: inc.ValueInMainCurrency,
		Note:                inc.Note,
		Date:                inc.Date,
	}
}

func toResponseList(incs []*income.Income) []incomeResponse {
	resp := make([]incomeResponse, len(incs))
	for i, inc := range incs {
		resp[i] = toResponse(inc)
	}

	return resp
}
