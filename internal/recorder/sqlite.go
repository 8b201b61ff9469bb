package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"MarketForge/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists simulation history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the sim writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tick_snapshots (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			class        TEXT,
			avg_pct      REAL,
			sentiment    REAL,
			instruments  INTEGER,
			liquidations INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ticks_ts ON tick_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS news_events (
			id         TEXT PRIMARY KEY,
			timestamp  INTEGER NOT NULL,
			class      TEXT,
			type       TEXT,
			severity   TEXT,
			headline   TEXT,
			symbol     TEXT,
			sector     TEXT,
			impact     REAL,
			suggestion TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_news_ts ON news_events(timestamp)`,

		`CREATE TABLE IF NOT EXISTS trades (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			symbol     TEXT,
			side       TEXT,
			quantity   REAL,
			price      REAL,
			leverage   INTEGER,
			cash_after REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_ts ON trades(timestamp)`,

		`CREATE TABLE IF NOT EXISTS liquidations (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			symbol      TEXT,
			quantity    REAL,
			price       REAL,
			margin_lost REAL,
			leverage    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_liq_ts ON liquidations(timestamp)`,

		`CREATE TABLE IF NOT EXISTS macro_snapshots (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			interest_rate    REAL,
			gdp_growth       REAL,
			inflation        REAL,
			phase            TEXT,
			equity_sentiment REAL,
			crypto_sentiment REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_macro_ts ON macro_snapshots(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordTick(snap *TickSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO tick_snapshots
		(timestamp, class, avg_pct, sentiment, instruments, liquidations)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), string(snap.Class), snap.AvgPct, snap.Sentiment,
		snap.Instruments, snap.Liquidations,
	)
	return err
}

func (r *SQLiteRecorder) RecordNews(ev *model.NewsEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO news_events
		(id, timestamp, class, type, severity, headline, symbol, sector, impact, suggestion)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		ev.ID, ev.Time.Unix(), string(ev.Class), string(ev.Type), string(ev.Severity),
		ev.Headline, ev.Symbol, ev.Sector, ev.Impact, string(ev.Suggestion),
	)
	return err
}

func (r *SQLiteRecorder) RecordTrade(evt *TradeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO trades
		(timestamp, symbol, side, quantity, price, leverage, cash_after)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Symbol, evt.Side, evt.Quantity, evt.Price,
		evt.Leverage, evt.CashAfter,
	)
	return err
}

func (r *SQLiteRecorder) RecordLiquidation(ev *model.LiquidationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO liquidations
		(timestamp, symbol, quantity, price, margin_lost, leverage)
		VALUES (?,?,?,?,?,?)`,
		ev.Time.Unix(), ev.Symbol, ev.Quantity, ev.Price, ev.MarginLost, ev.Leverage,
	)
	return err
}

func (r *SQLiteRecorder) RecordMacro(g *model.Gauges) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO macro_snapshots
		(timestamp, interest_rate, gdp_growth, inflation, phase, equity_sentiment, crypto_sentiment)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), g.Macro.InterestRate, g.Macro.GDPGrowth, g.Macro.Inflation,
		g.Phase, g.EquitySentiment, g.CryptoSentiment,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
