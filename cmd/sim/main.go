package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"MarketForge/internal/catalog"
	"MarketForge/internal/config"
	"MarketForge/internal/feed"
	"MarketForge/internal/market"
	"MarketForge/internal/portfolio"
	"MarketForge/internal/recorder"
	"MarketForge/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] MarketForge starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Load instrument catalog
	entries, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("[FATAL] load catalog: %v", err)
	}
	log.Printf("[INFO] catalog loaded: %d instruments", len(entries))

	// Init portfolio book
	book, err := portfolio.NewBook(cfg.Portfolio.StateFile, cfg.Portfolio.StartingCash)
	if err != nil {
		log.Fatalf("[FATAL] init portfolio: %v", err)
	}

	// Init market controller
	ctrl := market.New(entries, book)
	ctrl.SetNewsTuning(cfg.EquityNewsInterval(), cfg.CryptoNewsInterval(), cfg.News.FireProbability)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	tape := feed.NewTape(200)
	sched := scheduler.NewScheduler(ctx, ctrl, rec, tape)
	if err := sched.RegisterAll(scheduler.Intervals{
		EquityTick: cfg.Schedule.EquityTick,
		CryptoTick: cfg.Schedule.CryptoTick,
		MacroTick:  cfg.Schedule.MacroTick,
		NewsPoll:   cfg.Schedule.NewsPoll,
		Report:     cfg.Schedule.Report,
	}); err != nil {
		log.Fatalf("[FATAL] register tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, ticking both engines now")
		sched.RunTickNow()
	}

	log.Println("[INFO] MarketForge is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] MarketForge stopped")
}
