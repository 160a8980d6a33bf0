package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ledger/internal/cache"
	"ledger/internal/config"
	"ledger/internal/db"
	"ledger/internal/handlers"
	"ledger/internal/services"
	"ledger/internal/store"
	"ledger/internal/websocket"
)

func main() {
	cfg := config.Load()
	database, err := db.Connect(cfg.DatabaseURL, db.PoolOptions{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer database.Close()

	accounts := store.NewAccountStore(database)
	transactions := store.NewTransactionStore(database)
	txRunner := db.NewTxRunner(database, cfg.LockTimeout)

	var limits cache.LimitCache = cache.NewMemoryCache()
	if redisCache := cache.Connect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); redisCache != nil {
		limits = redisCache
	}

	hub := websocket.NewHub()
	engine := services.NewLedgerService(txRunner, accounts, transactions, limits, hub)
	pruner := services.NewPruner(transactions, cfg.PruneQuiescence)
	statements := services.NewStatementService(transactions, pruner)
	retrier := services.NewRetrier(cfg.RetryMaxAttempts, cfg.RetryBaseDelay)

	handler := handlers.New(cfg, engine, statements, retrier, hub)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("ledger API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Log and fall through on shutdown errors: the pruner and the deferred
	// database close must still run.
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	pruner.Close()
}
