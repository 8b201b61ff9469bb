// Package feed renders simulation events as human-readable strings and
// keeps a bounded tape of recent ones for the host UI to poll.
package feed

import (
	"fmt"
	"strings"
	"time"

	"MarketForge/internal/model"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatNewsAlert formats a fired news event.
func FormatNewsAlert(ev *model.NewsEvent) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📰 [%s/%s] %s\n", ev.Type, ev.Severity, ev.Headline))
	b.WriteString(fmt.Sprintf("   impact %+.1f%%", ev.Impact*100))
	if ev.Symbol != "" {
		b.WriteString(fmt.Sprintf(" | %s", ev.Symbol))
	}
	if ev.Sector != "" {
		b.WriteString(fmt.Sprintf(" | %s sector", ev.Sector))
	}
	if ev.Suggestion != "" {
		b.WriteString(fmt.Sprintf(" | %s", ev.Suggestion))
	}
	return b.String()
}

// FormatLiquidationAlert formats a forced close.
func FormatLiquidationAlert(ev model.LiquidationEvent) string {
	return fmt.Sprintf("💥 LIQUIDATED %s x%d | %s units at %s | margin lost $%s",
		ev.Symbol, ev.Leverage,
		humanize.CommafWithDigits(ev.Quantity, 4),
		humanize.CommafWithDigits(ev.Price, 2),
		humanize.CommafWithDigits(ev.MarginLost, 2))
}

// FormatMacroReport formats the macro/sentiment gauges.
func FormatMacroReport(g model.Gauges) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🌐 Macro | %s\n", g.Phase))
	b.WriteString(fmt.Sprintf("   rate %.2f%% | gdp %+.2f%% | inflation %.2f%%\n",
		g.Macro.InterestRate, g.Macro.GDPGrowth, g.Macro.Inflation))
	b.WriteString(fmt.Sprintf("   fear-greed: equities %.0f | crypto %.0f",
		g.EquitySentiment, g.CryptoSentiment))
	return b.String()
}

// FormatPortfolioStatus formats cash and open positions.
func FormatPortfolioStatus(cash decimal.Decimal, holdings map[string]model.LeveragedPosition) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("💼 Portfolio | %s | cash $%s\n",
		time.Now().Format("2006-01-02 15:04"), humanize.Comma(cash.IntPart())))
	if len(holdings) == 0 {
		b.WriteString("   no open positions")
		return b.String()
	}
	for _, p := range holdings {
		b.WriteString(fmt.Sprintf("   %s x%d: %s @ %s",
			p.Symbol, p.Leverage,
			humanize.CommafWithDigits(p.Quantity, 4),
			humanize.CommafWithDigits(p.AverageCost, 2)))
		if p.LiquidationPrice > 0 {
			b.WriteString(fmt.Sprintf(" (liq %s)", humanize.CommafWithDigits(p.LiquidationPrice, 2)))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
