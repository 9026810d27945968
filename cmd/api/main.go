package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/ermolnik/kopilka/internal/config"
	"github.com/ermolnik/kopilka/internal/database"
	kopilkaHttp "github.com/ermolnik/kopilka/internal/http"
	incomeHandler "github.com/ermolnik/kopilka/internal/http/income"
	purchaseHandler "github.com/ermolnik/kopilka/internal/http/purchase"
	walletHandler "github.com/ermolnik/kopilka/internal/http/wallet"
	"github.com/ermolnik/kopilka/internal/income"
	incomeStore "github.com/ermolnik/kopilka/internal/income/store"
	"github.com/ermolnik/kopilka/internal/purchase"
	purchaseStore "github.com/ermolnik/kopilka/internal/purchase/store"
	"github.com/ermolnik/kopilka/internal/wallet"
	walletStore "github.com/ermolnik/kopilka/internal/wallet/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}

	var (
		incomeService   = income.NewService(incomeStore.New(db))
		purchaseService = purchase.NewService(purchaseStore.New(db))
		walletService   = wallet.NewService(walletStore.New(db))
	)

	var (
		incomeH   = incomeHandler.NewHandler(incomeService)
		purchaseH = purchaseHandler.NewHandler(purchaseService)
		walletH   = walletHandler.NewHandler(walletService)
	)

	router := kopilkaHttp.New(incomeH, purchaseH, walletH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
