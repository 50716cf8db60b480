package peer

import "testing"

func TestHigherPriorityEarlierTimestampWins(t *testing.T) {
	if !higherPriority(1, 9, 2, 1) {
		t.Fail()
	}
	if higherPriority(2, 1, 1, 9) {
		t.Fail()
	}
}

func TestHigherPriorityTieBreaksByLowerID(t *testing.T) {
	if !higherPriority(5, 1, 5, 2) {
		t.Fail()
	}
	if higherPriority(5, 2, 5, 1) {
		t.Fail()
	}
}

func TestHigherPriorityIsStrict(t *testing.T) {
	if higherPriority(5, 3, 5, 3) {
		t.Fail()
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		Idle:    "IDLE",
		Waiting: "WAITING",
		Held:    "HELD",
		State(7): "UNKNOWN(7)",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Fail()
		}
	}
}
