// Package scheduler drives the four simulation cadences plus a periodic
// report. Wall-clock timers are independent, but every callback funnels
// through the market controller, which serializes them against shared
// state.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"MarketForge/internal/feed"
	"MarketForge/internal/market"
	"MarketForge/internal/model"
	"MarketForge/internal/recorder"
	"MarketForge/internal/stats"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// Intervals configures the five schedules.
type Intervals struct {
	EquityTick string
	CryptoTick string
	MacroTick  string
	NewsPoll   string
	Report     string
}

// Scheduler manages all periodic simulation tasks.
type Scheduler struct {
	Cron       *cron.Cron
	Controller *market.Controller
	Recorder   recorder.Recorder
	Tape       *feed.Tape
	Ctx        context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, ctrl *market.Controller, rec recorder.Recorder, tape *feed.Tape) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(),
		Controller: ctrl,
		Recorder:   rec,
		Tape:       tape,
		Ctx:        ctx,
	}
}

// RegisterAll registers every periodic task with @every specs.
func (s *Scheduler) RegisterAll(iv Intervals) error {
	jobs := []struct {
		name     string
		interval string
		fn       func()
	}{
		{"equity tick", iv.EquityTick, s.equityTask},
		{"crypto tick", iv.CryptoTick, s.cryptoTask},
		{"macro update", iv.MacroTick, s.macroTask},
		{"news poll", iv.NewsPoll, s.newsTask},
		{"report", iv.Report, s.reportTask},
	}
	for _, j := range jobs {
		if _, err := s.Cron.AddFunc("@every "+j.interval, j.fn); err != nil {
			return fmt.Errorf("register %s: %w", j.name, err)
		}
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler; no further callbacks fire after it
// returns.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunTickNow executes one tick of each engine immediately (for manual
// trigger / RUN_ON_START).
func (s *Scheduler) RunTickNow() {
	s.equityTask()
	s.cryptoTask()
}

func (s *Scheduler) equityTask() {
	rep := s.Controller.TickEquities()
	s.recordTick(rep)
}

func (s *Scheduler) cryptoTask() {
	rep := s.Controller.TickCrypto()
	s.recordTick(rep)
}

func (s *Scheduler) recordTick(rep market.TickReport) {
	if err := s.Recorder.RecordTick(&recorder.TickSnapshot{
		Class:        rep.Class,
		AvgPct:       rep.AvgPct,
		Sentiment:    rep.Sentiment,
		Instruments:  len(rep.Prices),
		Liquidations: len(rep.Liquidations),
	}); err != nil {
		log.Printf("[ERROR] record tick: %v", err)
	}
	s.handleLiquidations(rep.Liquidations)
}

func (s *Scheduler) macroTask() {
	g := s.Controller.AdvanceMacro()
	if err := s.Recorder.RecordMacro(&g); err != nil {
		log.Printf("[ERROR] record macro: %v", err)
	}
}

func (s *Scheduler) newsTask() {
	rep := s.Controller.PollNews()
	if rep.Event == nil {
		return
	}

	msg := feed.FormatNewsAlert(rep.Event)
	log.Printf("[INFO] %s", msg)
	s.Tape.Push(msg)

	if err := s.Recorder.RecordNews(rep.Event); err != nil {
		log.Printf("[ERROR] record news: %v", err)
	}
	s.handleLiquidations(rep.Liquidations)
}

func (s *Scheduler) reportTask() {
	g := s.Controller.Gauges()
	s.Tape.Push(feed.FormatMacroReport(g))
	s.Tape.Push(feed.FormatPortfolioStatus(s.Controller.Cash(), s.Controller.Holdings()))
}

func (s *Scheduler) handleLiquidations(events []model.LiquidationEvent) {
	for i := range events {
		msg := feed.FormatLiquidationAlert(events[i])
		log.Printf("[INFO] %s", msg)
		s.Tape.Push(msg)
		if err := s.Recorder.RecordLiquidation(&events[i]); err != nil {
			log.Printf("[ERROR] record liquidation: %v", err)
		}
	}
}

// Buy executes a player buy through the controller and records the fill.
func (s *Scheduler) Buy(symbol string, qty float64, leverage int) error {
	price, err := s.Controller.Buy(symbol, qty, leverage)
	if err != nil {
		return err
	}
	s.recordTrade(symbol, "BUY", qty, price, leverage)
	return nil
}

// Sell executes a player sell and returns the proceeds credited.
func (s *Scheduler) Sell(symbol string, qty float64) (decimal.Decimal, error) {
	proceeds, price, err := s.Controller.Sell(symbol, qty)
	if err != nil {
		return decimal.Zero, err
	}
	s.recordTrade(symbol, "SELL", qty, price, 0)
	return proceeds, nil
}

func (s *Scheduler) recordTrade(symbol, side string, qty, price float64, leverage int) {
	if err := s.Recorder.RecordTrade(&recorder.TradeEvent{
		Symbol:    symbol,
		Side:      side,
		Quantity:  qty,
		Price:     price,
		Leverage:  leverage,
		CashAfter: s.Controller.Cash().InexactFloat64(),
	}); err != nil {
		log.Printf("[ERROR] record trade: %v", err)
	}
}

// HandleCommand processes a host UI command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/gauges":
		return feed.FormatMacroReport(s.Controller.Gauges())
	case "/portfolio":
		return feed.FormatPortfolioStatus(s.Controller.Cash(), s.Controller.Holdings())
	case "/market":
		return s.marketSummary()
	case "/feed":
		var b strings.Builder
		for _, e := range s.Tape.Latest(10) {
			b.WriteString(e.Text)
			b.WriteString("\n")
		}
		return strings.TrimRight(b.String(), "\n")
	default:
		return "commands:\n• /market\n• /gauges\n• /portfolio\n• /feed"
	}
}

func (s *Scheduler) marketSummary() string {
	var b strings.Builder
	for _, in := range s.Controller.Snapshot() {
		rsi, _ := stats.RSI(in.History, 14)
		b.WriteString(fmt.Sprintf("%s %.2f (%+.2f%% today, RSI %.0f)\n",
			in.Symbol, in.Price, in.SessionChangePct(), rsi))
	}
	return strings.TrimRight(b.String(), "\n")
}
