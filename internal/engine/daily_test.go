package engine

import (
	"fmt"
	"testing"
)

// logDay appends one entry per action id on date, each worth points.
func logDay(entries []Entry, date string, points int, actionIDs ...string) []Entry {
	for _, id := range actionIDs {
		entries = append(entries, Entry{
			ID:       fmt.Sprintf("%s-%s-%d", date, id, len(entries)),
			Date:     date,
			ActionID: id,
			Points:   points,
		})
	}
	return entries
}

func consecutiveDays(start string, n int, points int, actionIDs ...string) []Entry {
	var entries []Entry
	for i := 0; i < n; i++ {
		entries = logDay(entries, AddDays(start, i), points, actionIDs...)
	}
	return entries
}

func TestStreakBonusSequence(t *testing.T) {
	daily := AggregateDaily(consecutiveDays("2024-01-01", 7, 5, "a"))
	want := []int{0, 0, 10, 0, 0, 10, 25}
	if len(daily) != len(want) {
		t.Fatalf("len(daily)=%d, want %d", len(daily), len(want))
	}
	for i, d := range daily {
		if d.BonusXP != want[i] {
			t.Fatalf("day %d bonus=%d, want %d", i+1, d.BonusXP, want[i])
		}
		if d.AnyStreak != i+1 {
			t.Fatalf("day %d streak=%d, want %d", i+1, d.AnyStreak, i+1)
		}
		if d.TotalXP != d.BaseXP+d.BonusXP {
			t.Fatalf("day %d total=%d, want base+bonus=%d", i+1, d.TotalXP, d.BaseXP+d.BonusXP)
		}
	}
}

func TestStreakBonusesStackOnDay21(t *testing.T) {
	daily := AggregateDaily(consecutiveDays("2024-01-01", 21, 1, "a"))
	if got := daily[13].BonusXP; got != 25 {
		t.Fatalf("day 14 bonus=%d, want 25", got)
	}
	if got := daily[20].BonusXP; got != 35 {
		t.Fatalf("day 21 bonus=%d, want 35", got)
	}
}

func TestStreakResetsOnGap(t *testing.T) {
	var entries []Entry
	entries = logDay(entries, "2024-01-01", 5, "a")
	entries = logDay(entries, "2024-01-03", 5, "a")
	daily := AggregateDaily(entries)
	if len(daily) != 2 {
		t.Fatalf("len(daily)=%d, want 2", len(daily))
	}
	for _, d := range daily {
		if d.AnyStreak != 1 {
			t.Fatalf("%s streak=%d, want 1", d.Date, d.AnyStreak)
		}
	}
}

func TestVolumeBonusAndSixPlusStreak(t *testing.T) {
	six := []string{"a", "b", "c", "d", "e", "f"}
	var entries []Entry
	entries = logDay(entries, "2024-05-01", 5, six...)
	entries = logDay(entries, "2024-05-02", 5, six...)
	entries = logDay(entries, "2024-05-03", 5, "a")
	entries = logDay(entries, "2024-05-04", 5, six...)
	entries = logDay(entries, "2024-05-06", 5, six...)

	daily := AggregateDaily(entries)
	wantSix := []int{1, 2, 0, 1, 1}
	for i, d := range daily {
		if d.SixPlusStreak != wantSix[i] {
			t.Fatalf("%s sixPlus=%d, want %d", d.Date, d.SixPlusStreak, wantSix[i])
		}
	}
	if d := daily[0]; d.BaseXP != 30 || d.BonusXP != 10 || d.TotalXP != 40 {
		t.Fatalf("day 1 = %+v, want base 30 bonus 10 total 40", d)
	}
	// Day 3 closes a 3-day streak but is below the volume threshold.
	if got := daily[2].BonusXP; got != 10 {
		t.Fatalf("day 3 bonus=%d, want 10", got)
	}
}

func TestAggregateDailyOrdersDates(t *testing.T) {
	var entries []Entry
	entries = logDay(entries, "2024-02-10", 3, "a")
	entries = logDay(entries, "2024-02-08", 4, "a", "b")
	entries = logDay(entries, "2024-02-09", 2, "a")

	daily := AggregateDaily(entries)
	var dates []string
	for _, d := range daily {
		dates = append(dates, d.Date)
	}
	want := []string{"2024-02-08", "2024-02-09", "2024-02-10"}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("dates=%v, want %v", dates, want)
		}
	}
	if daily[0].EntryCount != 2 || daily[0].BaseXP != 8 {
		t.Fatalf("first day = %+v, want 2 entries and 8 base XP", daily[0])
	}
}

func TestAggregationAdditivity(t *testing.T) {
	var entries []Entry
	entries = append(entries, consecutiveDays("2024-03-01", 9, 7, "a", "b")...)
	entries = append(entries, consecutiveDays("2024-03-15", 4, 3, "a", "b", "c", "d", "e", "f")...)

	daily := AggregateDaily(entries)
	prog := SummarizeProgression(daily, BuildLevelThresholds(DefaultMaxLevel), DefaultTitles())

	sumTotal, sumBase, sumBonus := 0, 0, 0
	for _, d := range daily {
		sumTotal += d.TotalXP
		sumBase += d.BaseXP
		sumBonus += d.BonusXP
	}
	if prog.TotalXP != sumTotal || sumTotal != sumBase+sumBonus {
		t.Fatalf("total=%d sum(total)=%d sum(base)+sum(bonus)=%d", prog.TotalXP, sumTotal, sumBase+sumBonus)
	}
}

func TestAggregateDailyEmpty(t *testing.T) {
	if got := AggregateDaily(nil); len(got) != 0 {
		t.Fatalf("AggregateDaily(nil) len=%d, want 0", len(got))
	}
}

func TestSummarizeProgression(t *testing.T) {
	daily := AggregateDaily(consecutiveDays("2024-01-01", 20, 10, "a"))
	prog := SummarizeProgression(daily, BuildLevelThresholds(DefaultMaxLevel), DefaultTitles())

	// 20 days * 10 base + 6 short-streak bonuses + 2 long-streak bonuses.
	wantXP := 200 + 6*10 + 2*25
	if prog.TotalXP != wantXP {
		t.Fatalf("TotalXP=%d, want %d", prog.TotalXP, wantXP)
	}
	// Level 6 starts at 307 XP and level 7 at 388.
	if prog.Level != 6 {
		t.Fatalf("Level=%d, want 6", prog.Level)
	}
	if prog.Title != "Explorateur Curieux" {
		t.Fatalf("Title=%q, want Explorateur Curieux", prog.Title)
	}
	if prog.XPInLevel != 3 || prog.XPForNext != 81 {
		t.Fatalf("progress=(%d,%d), want (3,81)", prog.XPInLevel, prog.XPForNext)
	}
	if len(prog.Chart) != ChartDays {
		t.Fatalf("chart len=%d, want %d", len(prog.Chart), ChartDays)
	}
	if first := prog.Chart[0]; first.Date != "01-07" || first.XP != daily[6].TotalXP {
		t.Fatalf("first chart point=%+v, want 01-07 with %d XP", first, daily[6].TotalXP)
	}
}
