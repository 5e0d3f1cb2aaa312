package engine

import "sort"

const (
	// VolumeEntries is the per-day entry count that earns the volume bonus.
	VolumeEntries = 6
	VolumeBonusXP = 10

	// Streak bonuses fire on every multiple of their period.
	ShortStreakPeriod  = 3
	ShortStreakBonusXP = 10
	LongStreakPeriod   = 7
	LongStreakBonusXP  = 25
)

// groupByDate buckets entries per date, preserving log order inside a day,
// and returns the distinct dates in ascending order.
func groupByDate(entries []Entry) (map[string][]Entry, []string) {
	byDate := make(map[string][]Entry)
	var dates []string
	for _, e := range entries {
		if _, ok := byDate[e.Date]; !ok {
			dates = append(dates, e.Date)
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	sort.Strings(dates)
	return byDate, dates
}

// AggregateDaily computes one DailyAggregate per distinct date in entries,
// in chronological order. Streak counters reset whenever a date is not
// exactly one day after the previous materialized date.
func AggregateDaily(entries []Entry) []DailyAggregate {
	byDate, dates := groupByDate(entries)
	out := make([]DailyAggregate, 0, len(dates))

	anyStreak := 0
	sixPlus := 0
	last := ""
	for _, d := range dates {
		items := byDate[d]
		if last == "" || AddDays(last, 1) != d {
			anyStreak = 0
			sixPlus = 0
		}
		last = d

		base := 0
		for _, it := range items {
			base += it.Points
		}
		count := len(items)

		bonus := 0
		if count >= VolumeEntries {
			bonus += VolumeBonusXP
			sixPlus++
		} else {
			sixPlus = 0
		}
		if count >= 1 {
			anyStreak++
			if anyStreak%ShortStreakPeriod == 0 {
				bonus += ShortStreakBonusXP
			}
			if anyStreak%LongStreakPeriod == 0 {
				bonus += LongStreakBonusXP
			}
		}

		out = append(out, DailyAggregate{
			Date:          d,
			EntryCount:    count,
			BaseXP:        base,
			BonusXP:       bonus,
			TotalXP:       base + bonus,
			AnyStreak:     anyStreak,
			SixPlusStreak: sixPlus,
		})
	}
	return out
}
