package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ermolnik/kopilka/internal/http/income"
	"github.com/ermolnik/kopilka/internal/http/purchase"
	"github.com/ermolnik/kopilka/internal/http/wallet"
)

func New(
	incomesV1 *income.Handler,
	purchasesV1 *purchase.Handler,
	walletsV1 *wallet.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/incomes", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		incomesV1.Routes(r)
	})

	router.Route("/purchases", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		purchasesV1.Routes(r)
	})

	router.Route("/wallets", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		walletsV1.Routes(r)
	})

	return router
}
