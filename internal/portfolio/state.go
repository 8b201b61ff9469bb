package portfolio

import (
	"encoding/json"
	"os"
	"time"

	"MarketForge/internal/model"

	"github.com/shopspring/decimal"
)

// State is the persisted portfolio: player cash plus open positions,
// keyed by symbol. Cash is decimal so repeated trades never accumulate
// float dust.
type State struct {
	Cash      decimal.Decimal                       `json:"cash"`
	Positions map[string]*model.LeveragedPosition   `json:"positions"`
	UpdatedAt time.Time                             `json:"updated_at"`
}

// LoadState reads portfolio state from a JSON file. A missing file yields a
// zero state for the caller to initialize.
func LoadState(filePath string) (*State, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{Positions: make(map[string]*model.LeveragedPosition)}, nil
		}
		return nil, err
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state.Positions == nil {
		state.Positions = make(map[string]*model.LeveragedPosition)
	}
	return &state, nil
}

// SaveState writes the portfolio state to a JSON file.
func SaveState(filePath string, state *State) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
