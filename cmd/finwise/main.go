package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ozzie1403/finwise/internal/auth"
	"github.com/ozzie1403/finwise/internal/config"
	"github.com/ozzie1403/finwise/internal/core"
	"github.com/ozzie1403/finwise/internal/events"
	apphttp "github.com/ozzie1403/finwise/internal/http"
	applog "github.com/ozzie1403/finwise/internal/log"
	"github.com/ozzie1403/finwise/internal/store/memory"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", applog.FieldError, err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	logger := applog.New(applog.Config{
		Level:     level,
		Component: applog.ComponentApp,
		Handler:   slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}),
	})
	applog.SetDefault(logger)

	// All state is in-process and volatile: a restart resets every store.
	expenses := memory.NewExpenseStore()
	expenses.Seed(seedExpenses()...)
	budgets := memory.NewBudgetStore()
	users := memory.NewUserStore()
	gate := auth.NewGate(users, cfg.BcryptCost)

	var alerts apphttp.AlertPublisher
	if cfg.AMQPURL != "" {
		pub, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Budget alerts disabled, AMQP unavailable", applog.FieldError, err)
		} else {
			alerts = pub
			defer pub.Close()
		}
	}

	srv := apphttp.NewServer(":"+cfg.Port, cfg.CORSOrigin, expenses, budgets, gate, alerts)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting finwise server", applog.FieldPort, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

// seedExpenses returns the showcase records the reference deployment
// boots with.
func seedExpenses() []core.Expense {
	return []core.Expense{
		{Amount: 42.50, Category: core.Food, Description: "Grocery shopping", Date: core.NewDate(2025, time.June, 14)},
		{Amount: 35.00, Category: core.Transportation, Description: "Gas", Date: core.NewDate(2025, time.June, 13)},
		{Amount: 1200.00, Category: core.Housing, Description: "Monthly rent", Date: core.NewDate(2025, time.June, 1)},
		{Amount: 85.99, Category: core.Entertainment, Description: "Concert tickets", Date: core.NewDate(2025, time.June, 10)},
		{Amount: 120.00, Category: core.Healthcare, Description: "Dentist appointment", Date: core.NewDate(2025, time.June, 5)},
	}
}
