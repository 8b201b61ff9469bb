package feed

import (
	"fmt"
	"testing"
)

func TestTape_EvictsOldest(t *testing.T) {
	tape := NewTape(3)
	for i := 0; i < 5; i++ {
		tape.Push(fmt.Sprintf("line %d", i))
	}

	got := tape.Latest(10)
	if len(got) != 3 {
		t.Fatalf("tape kept %d entries, want 3", len(got))
	}
	if got[0].Text != "line 2" || got[2].Text != "line 4" {
		t.Errorf("unexpected tape window: %v .. %v", got[0].Text, got[2].Text)
	}
}

func TestTape_LatestSubset(t *testing.T) {
	tape := NewTape(10)
	tape.Push("a")
	tape.Push("b")

	got := tape.Latest(1)
	if len(got) != 1 || got[0].Text != "b" {
		t.Errorf("Latest(1) = %v, want just b", got)
	}
}
