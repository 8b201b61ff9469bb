package engine

import (
	"math"
	"testing"

	"MarketForge/internal/model"
)

func TestAdvanceMacro_OverheatRaisesInflation(t *testing.T) {
	st := NewState(nil)
	st.Macro = model.MacroState{InterestRate: 2.5, GDPGrowth: 5.0, Inflation: 2.0}
	st.AdvanceMacro()
	if st.Macro.Inflation <= 2.0 {
		t.Errorf("inflation %.3f should rise while GDP overheats", st.Macro.Inflation)
	}
}

func TestAdvanceMacro_InflationDrawsRateResponse(t *testing.T) {
	st := NewState(nil)
	st.Macro = model.MacroState{InterestRate: 2.5, GDPGrowth: 2.0, Inflation: 4.0}
	st.AdvanceMacro()
	if st.Macro.InterestRate != 2.55 {
		t.Errorf("interest rate %.3f, want 2.55 after policy response", st.Macro.InterestRate)
	}
}

func TestAdvanceMacro_RateClamp(t *testing.T) {
	st := NewState(nil)
	st.Macro = model.MacroState{InterestRate: 9.99, GDPGrowth: 5.0, Inflation: 50.0}
	for i := 0; i < 500; i++ {
		st.AdvanceMacro()
		if st.Macro.InterestRate < 0 || st.Macro.InterestRate > 10 {
			t.Fatalf("step %d: interest rate %.3f outside [0,10]", i, st.Macro.InterestRate)
		}
	}
}

func TestAdvanceMacro_MeanReversion(t *testing.T) {
	st := NewState(nil)
	st.Macro = model.MacroState{InterestRate: 3.0, GDPGrowth: 2.9, Inflation: -1.0}
	for i := 0; i < 400; i++ {
		st.AdvanceMacro()
	}
	// Both scalars revert 98/2 toward 2.0; rates at 3.0 trigger no feedback.
	if math.Abs(st.Macro.GDPGrowth-2.0) > 0.2 {
		t.Errorf("gdp growth %.3f did not revert toward 2.0", st.Macro.GDPGrowth)
	}
	if math.Abs(st.Macro.Inflation-2.0) > 0.2 {
		t.Errorf("inflation %.3f did not revert toward 2.0", st.Macro.Inflation)
	}
}

func TestMacroPhase(t *testing.T) {
	tests := []struct {
		m    model.MacroState
		want string
	}{
		{model.MacroState{GDPGrowth: -0.5}, "recession"},
		{model.MacroState{GDPGrowth: 3.5}, "overheating"},
		{model.MacroState{GDPGrowth: 2.0, Inflation: 3.5}, "inflationary"},
		{model.MacroState{GDPGrowth: 2.0, Inflation: 2.0}, "expansion"},
	}
	for _, tt := range tests {
		if got := tt.m.Phase(); got != tt.want {
			t.Errorf("Phase(%+v) = %q, want %q", tt.m, got, tt.want)
		}
	}
}
