package engine

// ChartDays is how many trailing days the XP chart shows.
const ChartDays = 14

// SummarizeProgression folds the daily aggregates into total XP, level,
// title and in-level progress.
func SummarizeProgression(daily []DailyAggregate, thresholds Thresholds, titles Titles) Progression {
	total := 0
	for _, d := range daily {
		total += d.TotalXP
	}
	level := thresholds.LevelFromXP(total)
	inLevel, forNext, fraction := thresholds.Progress(total, level)

	return Progression{
		TotalXP:          total,
		Level:            level,
		Title:            titles.ForLevel(level),
		XPInLevel:        inLevel,
		XPForNext:        forNext,
		ProgressFraction: fraction,
		Chart:            RecentChart(daily, ChartDays),
	}
}

// RecentChart returns the last n aggregates as chart points.
func RecentChart(daily []DailyAggregate, n int) []ChartPoint {
	start := len(daily) - n
	if start < 0 {
		start = 0
	}
	out := make([]ChartPoint, 0, len(daily)-start)
	for _, d := range daily[start:] {
		out = append(out, ChartPoint{Date: MonthDay(d.Date), XP: d.TotalXP})
	}
	return out
}
