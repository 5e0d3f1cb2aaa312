package engine

import "testing"

func TestActionTierBadgesShowLastAndNext(t *testing.T) {
	actions := []Action{{ID: "A", Label: "Alpha", Points: 1}}
	entries := consecutiveDays("2024-01-01", 10, 1, "A")

	got := ActionTierBadges(actions, entries)
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2 (never the full ladder)", len(got))
	}
	last, next := got[0], got[1]
	if last.ID != "action-A-lvl10" || last.Name != "Expert Alpha" || !last.Unlocked {
		t.Fatalf("last=%+v, want unlocked Expert at 10", last)
	}
	if next.ID != "action-A-lvl20" || next.Name != "Maître Alpha" || next.Unlocked {
		t.Fatalf("next=%+v, want locked Maître at 20", next)
	}
	if last.Description != `Réaliser l'action "Alpha" 10 fois` {
		t.Fatalf("description=%q", last.Description)
	}
}

func TestTierProgressBounds(t *testing.T) {
	cases := []struct {
		count              int
		wantLast, wantNext int
	}{
		{0, 0, 1},
		{1, 1, 3},
		{4, 3, 5},
		{99, 75, 100},
		{100, 100, 0},
		{250, 100, 0},
	}
	for _, tc := range cases {
		last, next := TierProgress(tc.count)
		gotLast, gotNext := 0, 0
		if last != nil {
			gotLast = last.Count
		}
		if next != nil {
			gotNext = next.Count
		}
		if gotLast != tc.wantLast || gotNext != tc.wantNext {
			t.Fatalf("TierProgress(%d)=(%d,%d), want (%d,%d)", tc.count, gotLast, gotNext, tc.wantLast, tc.wantNext)
		}
	}
}

func TestActionTierBadgesUntouchedAction(t *testing.T) {
	got := ActionTierBadges([]Action{{ID: "Z", Label: "Zulu"}}, nil)
	if len(got) != 1 || got[0].ID != "action-Z-lvl1" || got[0].Unlocked {
		t.Fatalf("got %+v, want a single locked Débutant target", got)
	}
}
