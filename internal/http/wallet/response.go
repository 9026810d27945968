package wallet

import (
	"github.com/ermolnik/kopilka/internal/wallet"
)

type currencyResponse struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Symbol   string `json:"symbol"`
	CharCode string `json:"charCode"`
}

type accountResponse struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Type              wallet.AccountType `json:"type"`
	Limit             int64              `json:"limit"`
	Currency          currencyResponse   `json:"currency"`
	IncomeCategoryIDs []string           `json:"incomeCategoryIds"`
	SpentCategoryIDs  []string           `json:"spentCategoryIds"`
	Order             int                `json:"order"`
	RelevanceTime     int64              `json:"relevanceTime"`
	DateCreated       int64              `json:"dateCreated"`
}

type walletResponse struct {
	ID            int64             `json:"id"`
	RelevanceTime int64             `json:"relevanceTime"`
	DateCreated   int64             `json:"dateCreated"`
	Currency      currencyResponse  `json:"currency"`
	Accounts      []accountResponse `json:"accounts"`
}

type updateResponse struct {
	Updated bool `json:"updated"`
}

type deleteResponse struct {
	Deleted bool `json:"deleted"`
}

func toResponse(w *wallet.Wallet) walletResponse {
	resp := walletResponse{
		ID:            w.ID,
		RelevanceTime: w.RelevanceTime,
		DateCreated:   w.DateCreated,
		Currency:      toCurrencyResponse(w.Currency),
		Accounts:      make([]accountResponse, 0, len(w.Accounts)),
	}

	for _, a := range w.Accounts {
		resp.Accounts = append(resp.Accounts, accountResponse{
			ID:                a.ID,
			Title:             a.Title,
			Type:              a.Type,
			Limit:             a.Limit,
			Currency:          toCurrencyResponse(a.Currency),
			IncomeCategoryIDs: a.IncomeCategoryIDs,
			SpentCategoryIDs:  a.SpentCategoryIDs,
			Order:             a.Order,
			RelevanceTime:     a.RelevanceTime,
			DateCreated:       a.DateCreated,
		})
	}

	return resp
}

func toCurrencyResponse(c wallet.Currency) currencyResponse {
	return currencyResponse{
		ID:       c.ID,
		Title:    c.Title,
		Symbol:   c.Symbol,
		CharCode: c.CharCode,
	}
}

func toResponseList(ws []*wallet.Wallet) []walletResponse {
	resp := make([]walletResponse, len(ws))
	for i, w := range ws {
		resp[i] = toResponse(w)
	}

	return resp
}
