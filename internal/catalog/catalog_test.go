package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"MarketForge/internal/model"
)

func TestDefault_BothClassesPresent(t *testing.T) {
	entries := Default()

	var equities, cryptos int
	for _, e := range entries {
		if err := validate(&e); err != nil {
			t.Errorf("built-in entry %s failed validation: %v", e.Symbol, err)
		}
		switch e.Class {
		case model.ClassEquity:
			equities++
		case model.ClassCrypto:
			cryptos++
		}
	}
	if equities == 0 || cryptos == 0 {
		t.Fatalf("expected both classes in built-in catalog, got %d equities / %d cryptos", equities, cryptos)
	}
}

func TestLoad_EmptyPathReturnsBuiltin(t *testing.T) {
	entries, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if len(entries) != len(Default()) {
		t.Errorf("expected built-in set, got %d entries", len(entries))
	}
}

func TestLoad_YAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `
- symbol: TEST
  name: Test Corp
  class: EQUITY
  sector: Tech
  base_price: 42.5
  volatility: 1.3
  headlines:
    - "%s does something newsworthy"
- symbol: TCOIN
  name: Testcoin
  class: CRYPTO
  sector: Crypto
  base_price: 100
  volatility: 2.0
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Symbol != "TEST" || entries[0].BasePrice != 42.5 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Class != model.ClassCrypto {
		t.Errorf("expected crypto class, got %q", entries[1].Class)
	}
}

func TestLoad_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"missing symbol", "- name: X\n  class: EQUITY\n  base_price: 1\n  volatility: 1\n", "symbol is required"},
		{"unknown class", "- symbol: X\n  class: BOND\n  base_price: 1\n  volatility: 1\n", "unknown class"},
		{"zero base price", "- symbol: X\n  class: EQUITY\n  base_price: 0\n  volatility: 1\n", "base_price"},
		{"negative volatility", "- symbol: X\n  class: EQUITY\n  base_price: 1\n  volatility: -0.5\n", "volatility"},
		{"empty catalog", "[]\n", "is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatalf("write catalog file: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestInstruments_SeededFromBase(t *testing.T) {
	now := time.Now()
	ins := Instruments(Default(), now)
	if len(ins) != len(Default()) {
		t.Fatalf("expected %d instruments, got %d", len(Default()), len(ins))
	}
	for _, in := range ins {
		if in.Price != in.BasePrice || in.SessionOpen != in.BasePrice {
			t.Errorf("%s: expected price and session open at base %v, got %v / %v",
				in.Symbol, in.BasePrice, in.Price, in.SessionOpen)
		}
		if len(in.History) != 1 {
			t.Errorf("%s: expected one seeded history sample, got %d", in.Symbol, len(in.History))
		}
	}
}
