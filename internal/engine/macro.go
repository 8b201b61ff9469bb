package engine

// Macro regime update, run on a cadence far slower than price ticks.
// The feedback loop is deliberately simple: growth overheats into
// inflation, inflation draws a rate response, rates cool or stimulate
// growth, and growth/inflation mean-revert toward a 2.0 target.
const (
	macroTarget      = 2.0
	macroRevert      = 0.98
	overheatGDP      = 3.0
	inflationTrigger = 3.0
	tightRate        = 4.0
	easyRate         = 2.0
	rateFloor        = 0.0
	rateCap          = 10.0
)

// AdvanceMacro applies one regime step to the state's macro scalars.
func (s *State) AdvanceMacro() {
	m := &s.Macro

	if m.GDPGrowth > overheatGDP {
		m.Inflation += 0.1
	}
	if m.Inflation > inflationTrigger {
		m.InterestRate += 0.05
	}
	if m.InterestRate > tightRate {
		m.GDPGrowth -= 0.1
	}
	if m.InterestRate < easyRate {
		m.GDPGrowth += 0.1
	}

	m.GDPGrowth = m.GDPGrowth*macroRevert + macroTarget*(1-macroRevert)
	m.Inflation = m.Inflation*macroRevert + macroTarget*(1-macroRevert)

	if m.InterestRate < rateFloor {
		m.InterestRate = rateFloor
	} else if m.InterestRate > rateCap {
		m.InterestRate = rateCap
	}
}
