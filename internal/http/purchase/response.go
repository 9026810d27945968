package purchase

import (
	"github.com/ermolnik/kopilka/internal/purchase"
)

type categoryResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Emoji     string `json:"emoji"`
	IsSystem  bool   `json:"isSystem"`
	IsVisible bool   `json:"isVisible"`
	Limit     int64  `json:"limit"`
	Order     int    `json:"order"`
}

type tagResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type purchaseResponse struct {
	ID                  int64            `json:"id"`
	Category            categoryResponse `json:"category"`
	AccountID           string           `json:"accountId"`
	Value               int64            `json:"value"`
	ValueInMainCurrency int64            `json:"valueInMainCurrency"`
	Note                string           `json:"note"`
	Date                int64            `json:"date"`
	Tags                []tagResponse    `json:"tags"`
}

type updateResponse struct {
	Updated bool `json:"updated"`
}

type deleteResponse struct {
	Deleted bool `json:"deleted"`
}

func toResponse(p *purchase.Purchase) purchaseResponse {
	resp := purchaseResponse{
		ID: p.ID,
		Category: categoryResponse{
			ID:        p.Category.ID,
			Title:     p.Category.Title,
			Emoji:     p.Category.Emoji,
			IsSystem:  p.Category.IsSystem,
			IsVisible: p.Category.IsVisible,
			Limit:     p.Category.Limit,
			Order:     p.Category.Order,
		},
		AccountID:           p.AccountID,
		Value:               p.Value,
		ValueInMainCurrency: p.ValueInMainCurrency,
		Note:                p.Note,
		Date:                p.Date,
		Tags:                make([]tagResponse, 0, len(p.Tags)),
	}

	for _, t := range p.Tags {
		resp.Tags = append(resp.Tags, tagResponse{ID: t.ID, Title: t.Title})
	}

	return resp
}

func toResponseList(ps []*purchase.Purchase) []purchaseResponse {
	resp := make([]purchaseResponse, len(ps))
	for i, p := range ps {
		resp[i] = toResponse(p)
	}

	return resp
}
