package engine

import (
	"math"
	"sort"
)

const (
	// FirstGapXP is the cumulative XP required to reach level 2.
	FirstGapXP = 50

	// GapGrowth is the per-level growth factor of the XP gap.
	GapGrowth = 1.1

	// DefaultMaxLevel matches the size of the table the dashboard has always used.
	DefaultMaxLevel = 200

	// MaxSupportedLevel keeps cumulative thresholds well inside int64.
	MaxSupportedLevel = 300
)

// Thresholds maps level -> cumulative XP required. Index 0 is unused and
// always 0; Thresholds[1] is 0.
type Thresholds []int

// BuildLevelThresholds generates the level table up to maxLevel.
// Values below 1 produce a single-level table; values above
// MaxSupportedLevel are clamped.
func BuildLevelThresholds(maxLevel int) Thresholds {
	if maxLevel < 1 {
		maxLevel = 1
	}
	if maxLevel > MaxSupportedLevel {
		maxLevel = MaxSupportedLevel
	}
	t := make(Thresholds, maxLevel+1)
	if maxLevel >= 2 {
		t[2] = FirstGapXP
	}
	for lvl := 3; lvl <= maxLevel; lvl++ {
		prevGap := float64(t[lvl-1] - t[lvl-2])
		inc := int(math.Round(prevGap * GapGrowth))
		if inc < 1 {
			inc = 1
		}
		t[lvl] = t[lvl-1] + inc
	}
	return t
}

// MaxLevel is the highest level present in the table.
func (t Thresholds) MaxLevel() int {
	if len(t) < 2 {
		return 1
	}
	return len(t) - 1
}

// Required returns the cumulative XP needed for level, clamped to the table.
func (t Thresholds) Required(level int) int {
	if level <= 1 || len(t) < 2 {
		return 0
	}
	if level > t.MaxLevel() {
		level = t.MaxLevel()
	}
	return t[level]
}

// LevelFromXP returns the greatest level whose threshold is <= xp.
func (t Thresholds) LevelFromXP(xp int) int {
	// Binary search over the non-decreasing table, ignoring index 0.
	n := t.MaxLevel()
	i := sort.Search(n-1, func(i int) bool { return t.Required(i+2) > xp })
	return i + 1
}

// Progress reports how far xp is into level: the XP earned since the level's
// threshold, the size of the gap to the next level, and their ratio clamped
// to [0, 1]. At the top of the table the gap is 0 and the ratio 1.
func (t Thresholds) Progress(xp, level int) (inLevel, forNext int, fraction float64) {
	next := level + 1
	if next > t.MaxLevel() {
		next = t.MaxLevel()
	}
	inLevel = xp - t.Required(level)
	forNext = t.Required(next) - t.Required(level)
	if forNext < 0 {
		forNext = 0
	}
	if forNext == 0 {
		return inLevel, 0, 1
	}
	fraction = float64(inLevel) / float64(forNext)
	if fraction > 1 {
		fraction = 1
	}
	if fraction < 0 {
		fraction = 0
	}
	return inLevel, forNext, fraction
}

// Titles is a sparse level -> title map.
type Titles map[int]string

// ForLevel returns the title of the greatest mapped level <= level, or the
// level 1 title when none qualifies.
func (t Titles) ForLevel(level int) string {
	keys := make([]int, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	title := t[1]
	for _, k := range keys {
		if k <= level {
			title = t[k]
		}
	}
	return title
}
