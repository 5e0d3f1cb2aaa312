package engine

import (
	"fmt"
	"strings"
)

// BadgeKind tags the closed set of automatic badge conditions.
type BadgeKind string

const (
	KindActionCount           BadgeKind = "action_count"
	KindTotalXP               BadgeKind = "total_xp"
	KindDaysWith6Plus         BadgeKind = "days_with_6plus"
	KindConsecutiveDays       BadgeKind = "consecutive_days"
	KindBeforeNoon            BadgeKind = "before_noon"
	KindWeeksWithAction       BadgeKind = "weeks_with_action"
	KindLongestStreak         BadgeKind = "longest_streak"
	KindWeeklyXP              BadgeKind = "weekly_xp"
	KindDistinctActionsPerDay BadgeKind = "distinct_actions_per_day"
	KindComboActions          BadgeKind = "combo_actions"
	KindMultiMonthsAction     BadgeKind = "multi_months_action"
	KindMonthlyTotalCount     BadgeKind = "monthly_total_count"
)

// Kinds lists every automatic badge kind in display order.
var Kinds = []BadgeKind{
	KindActionCount,
	KindTotalXP,
	KindDaysWith6Plus,
	KindConsecutiveDays,
	KindBeforeNoon,
	KindWeeksWithAction,
	KindLongestStreak,
	KindWeeklyXP,
	KindDistinctActionsPerDay,
	KindComboActions,
	KindMultiMonthsAction,
	KindMonthlyTotalCount,
}

func (k BadgeKind) IsValid() bool {
	_, ok := ruleEvaluators[k]
	return ok
}

// BadgeRule carries the kind tag and the parameters the kind reads.
// Unused parameters stay zero.
type BadgeRule struct {
	Kind     BadgeKind `json:"kind"`
	ActionID string    `json:"actionId,omitempty"`
	Actions  []string  `json:"actions,omitempty"`
	Count    int       `json:"count,omitempty"`
	XP       int       `json:"xp,omitempty"`
	Days     int       `json:"days,omitempty"`
	Weeks    int       `json:"weeks,omitempty"`
	Streak   int       `json:"streak,omitempty"`
	Months   int       `json:"months,omitempty"`
	Cond     string    `json:"cond,omitempty"`
}

// Defaults for parameters a rule may leave unset.
const (
	DefaultStreakDays      = 3
	DefaultWeeklyXP        = 50
	DefaultDistinctActions = 3
	DefaultRequiredDays    = 1
	DefaultMonths          = 2
	DefaultMonthlyCount    = 10
)

// WithDefaults fills zero parameters that have a documented default.
// Negative values are left alone and never satisfy a rule.
func (r BadgeRule) WithDefaults() BadgeRule {
	switch r.Kind {
	case KindLongestStreak:
		if r.Streak == 0 {
			r.Streak = r.Days
		}
		if r.Streak == 0 {
			r.Streak = DefaultStreakDays
		}
	case KindWeeklyXP:
		if r.XP == 0 {
			r.XP = DefaultWeeklyXP
		}
	case KindDistinctActionsPerDay:
		if r.Count == 0 {
			r.Count = DefaultDistinctActions
		}
		if r.Days == 0 {
			r.Days = DefaultRequiredDays
		}
	case KindComboActions:
		if r.Days == 0 {
			r.Days = DefaultRequiredDays
		}
	case KindMultiMonthsAction:
		if r.Months == 0 {
			r.Months = DefaultMonths
		}
	case KindMonthlyTotalCount:
		if r.Count == 0 {
			r.Count = DefaultMonthlyCount
		}
	}
	return r
}

// BadgeInput is the consistent snapshot every badge is evaluated against.
type BadgeInput struct {
	Entries     []Entry
	Daily       []DailyAggregate
	Progression Progression
	Actions     []Action
	Settings    Settings
}

// facts holds the per-pass indexes derived from a BadgeInput. It is built
// fresh for every evaluation and never shared.
type facts struct {
	in            BadgeInput
	byDate        map[string][]Entry
	dates         []string
	countByAction map[string]int
	labels        map[string]string
}

func newFacts(in BadgeInput) *facts {
	byDate, dates := groupByDate(in.Entries)
	f := &facts{
		in:            in,
		byDate:        byDate,
		dates:         dates,
		countByAction: make(map[string]int),
		labels:        make(map[string]string, len(in.Actions)),
	}
	for _, e := range in.Entries {
		f.countByAction[e.ActionID]++
	}
	for _, a := range in.Actions {
		f.labels[a.ID] = a.Label
	}
	return f
}

// label resolves an action id to its label, falling back to the raw id.
func (f *facts) label(actionID string) string {
	if l, ok := f.labels[actionID]; ok {
		return l
	}
	return actionID
}

func (f *facts) distinctActionsOn(date string) map[string]bool {
	set := make(map[string]bool)
	for _, e := range f.byDate[date] {
		set[e.ActionID] = true
	}
	return set
}

func (f *facts) isoWeeksWith(actionID string) int {
	set := make(map[string]bool)
	for _, e := range f.in.Entries {
		if e.ActionID == actionID {
			set[ISOWeekKey(e.Date)] = true
		}
	}
	return len(set)
}

func (f *facts) daysWith6Plus() int {
	n := 0
	for _, d := range f.in.Daily {
		if d.EntryCount >= VolumeEntries {
			n++
		}
	}
	return n
}

// longestStreak is the longest run of calendar-consecutive dates present in
// the log, computed from the entries rather than the aggregates.
func (f *facts) longestStreak() int {
	best, cur := 0, 0
	last := ""
	for _, d := range f.dates {
		if last != "" && AddDays(last, 1) == d {
			cur++
		} else {
			cur = 1
		}
		if cur > best {
			best = cur
		}
		last = d
	}
	return best
}

// bestCalendarWeekXP is the largest sum of raw entry points in one calendar week.
func (f *facts) bestCalendarWeekXP() int {
	sums := make(map[string]int)
	for _, e := range f.in.Entries {
		sums[CalendarWeekKey(e.Date)] += e.Points
	}
	best := 0
	for _, v := range sums {
		if v > best {
			best = v
		}
	}
	return best
}

type ruleEvaluator func(f *facts, r BadgeRule) Outcome

var ruleEvaluators = map[BadgeKind]ruleEvaluator{
	KindActionCount:           evalActionCount,
	KindTotalXP:               evalTotalXP,
	KindDaysWith6Plus:         evalDaysWith6Plus,
	KindConsecutiveDays:       evalConsecutiveDays,
	KindBeforeNoon:            evalBeforeNoon,
	KindWeeksWithAction:       evalWeeksWithAction,
	KindLongestStreak:         evalLongestStreak,
	KindWeeklyXP:              evalWeeklyXP,
	KindDistinctActionsPerDay: evalDistinctActionsPerDay,
	KindComboActions:          evalComboActions,
	KindMultiMonthsAction:     evalMultiMonthsAction,
	KindMonthlyTotalCount:     evalMonthlyTotalCount,
}

// reached reports value >= threshold for a positive threshold. Thresholds
// below 1 are never satisfied.
func reached(value, threshold int) bool {
	return threshold >= 1 && value >= threshold
}

func evalActionCount(f *facts, r BadgeRule) Outcome {
	return Outcome{
		OK:          reached(f.countByAction[r.ActionID], r.Count),
		Description: fmt.Sprintf("Réaliser \"%s\" %d fois", f.label(r.ActionID), r.Count),
	}
}

func evalTotalXP(f *facts, r BadgeRule) Outcome {
	return Outcome{
		OK:          reached(f.in.Progression.TotalXP, r.XP),
		Description: fmt.Sprintf("Atteindre %d XP au total", r.XP),
	}
}

func evalDaysWith6Plus(f *facts, r BadgeRule) Outcome {
	return Outcome{
		OK:          reached(f.daysWith6Plus(), r.Days),
		Description: fmt.Sprintf("Avoir %d+ jours avec %d+ actions", r.Days, VolumeEntries),
	}
}

func evalConsecutiveDays(f *facts, r BadgeRule) Outcome {
	best := 0
	for _, d := range f.in.Daily {
		if d.AnyStreak > best {
			best = d.AnyStreak
		}
	}
	return Outcome{
		OK:          reached(best, r.Days),
		Description: fmt.Sprintf("Avoir %d jours consécutifs avec ≥1 action", r.Days),
	}
}

func evalBeforeNoon(f *facts, _ BadgeRule) Outcome {
	ok := false
	for _, e := range f.in.Entries {
		if e.BeforeNoon {
			ok = true
			break
		}
	}
	return Outcome{OK: ok, Description: "Faire une action avant midi"}
}

func evalWeeksWithAction(f *facts, r BadgeRule) Outcome {
	return Outcome{
		OK:          reached(f.isoWeeksWith(r.ActionID), r.Weeks),
		Description: fmt.Sprintf("Faire l'action %s %d semaines", f.label(r.ActionID), r.Weeks),
	}
}

func evalLongestStreak(f *facts, r BadgeRule) Outcome {
	return Outcome{
		OK:          reached(f.longestStreak(), r.Streak),
		Description: fmt.Sprintf("Avoir une série de %d jours consécutifs", r.Streak),
	}
}

func evalWeeklyXP(f *facts, r BadgeRule) Outcome {
	return Outcome{
		OK:          reached(f.bestCalendarWeekXP(), r.XP),
		Description: fmt.Sprintf("Avoir >= %d XP sur une semaine", r.XP),
	}
}

func evalDistinctActionsPerDay(f *facts, r BadgeRule) Outcome {
	desc := fmt.Sprintf("Avoir %d actions distinctes dans %d journée(s)", r.Count, r.Days)
	if r.Count < 1 || r.Days < 1 {
		return Outcome{Description: desc}
	}
	matched := 0
	for _, d := range f.dates {
		if len(f.distinctActionsOn(d)) >= r.Count {
			matched++
		}
		if matched >= r.Days {
			return Outcome{OK: true, Description: desc}
		}
	}
	return Outcome{Description: desc}
}

func evalComboActions(f *facts, r BadgeRule) Outcome {
	if len(r.Actions) == 0 {
		return Outcome{Description: "Aucune action sélectionnée pour le combo"}
	}
	labels := make([]string, 0, len(r.Actions))
	for _, id := range r.Actions {
		labels = append(labels, f.label(id))
	}
	desc := fmt.Sprintf("Faire %s le même jour, %d fois", strings.Join(labels, " + "), r.Days)
	if r.Days < 1 {
		return Outcome{Description: desc}
	}

	matched := 0
	for _, d := range f.dates {
		present := f.distinctActionsOn(d)
		all := true
		for _, id := range r.Actions {
			if !present[id] {
				all = false
				break
			}
		}
		if all {
			matched++
		}
		if matched >= r.Days {
			return Outcome{OK: true, Description: desc}
		}
	}
	return Outcome{Description: desc}
}

func evalMultiMonthsAction(f *facts, r BadgeRule) Outcome {
	months := make(map[string]bool)
	for _, e := range f.in.Entries {
		if e.ActionID == r.ActionID {
			months[MonthKey(e.Date)] = true
		}
	}
	return Outcome{
		OK:          reached(len(months), r.Months),
		Description: fmt.Sprintf("Faire l'action %s sur %d mois différents", f.label(r.ActionID), r.Months),
	}
}

func evalMonthlyTotalCount(f *facts, r BadgeRule) Outcome {
	perMonth := make(map[string]int)
	for _, e := range f.in.Entries {
		if e.ActionID == r.ActionID {
			perMonth[MonthKey(e.Date)]++
		}
	}
	ok := false
	for _, n := range perMonth {
		if reached(n, r.Count) {
			ok = true
			break
		}
	}
	return Outcome{
		OK:          ok,
		Description: fmt.Sprintf("Réaliser %d fois %s en 1 mois", r.Count, f.label(r.ActionID)),
	}
}

// EvaluateRule evaluates one automatic rule against the snapshot.
func EvaluateRule(in BadgeInput, r BadgeRule) Outcome {
	return newFacts(in).evaluate(r)
}

func (f *facts) evaluate(r BadgeRule) Outcome {
	eval, ok := ruleEvaluators[r.Kind]
	if !ok {
		return Outcome{Description: "Condition inconnue"}
	}
	return eval(f, r.WithDefaults())
}

// EvaluateBadges evaluates user-authored badges in the given order.
func EvaluateBadges(in BadgeInput, specs []BadgeSpec) []BadgeResult {
	f := newFacts(in)
	out := make([]BadgeResult, 0, len(specs))
	for _, s := range specs {
		out = append(out, f.evaluateSpec(s))
	}
	return out
}

func (f *facts) evaluateSpec(s BadgeSpec) BadgeResult {
	res := BadgeResult{ID: s.ID, Name: s.Name, Source: BadgeSourceCustom, Mode: s.Mode}
	if s.Mode != BadgeModeAuto {
		res.Mode = BadgeModeManual
		res.Unlocked = s.Validated
		res.Description = s.Cond
		if res.Description == "" {
			res.Description = "Validé manuellement"
		}
		return res
	}
	if s.Rule == nil {
		res.Description = "Condition inconnue"
		return res
	}
	o := f.evaluate(*s.Rule)
	res.Unlocked = o.OK
	res.Description = o.Description
	return res
}

// Board returns every badge shown to the user: built-in special badges, the
// per-action tiers, then user-authored badges.
func Board(in BadgeInput, specs []BadgeSpec) []BadgeResult {
	f := newFacts(in)
	out := f.specialBadges()
	out = append(out, ActionTierBadges(in.Actions, in.Entries)...)
	for _, s := range specs {
		out = append(out, f.evaluateSpec(s))
	}
	return out
}

// CountUnlocked returns how many results are unlocked.
func CountUnlocked(results []BadgeResult) int {
	n := 0
	for _, r := range results {
		if r.Unlocked {
			n++
		}
	}
	return n
}
