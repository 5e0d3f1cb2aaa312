package engine

import "fmt"

// Tier is one rung of the per-action completion ladder.
type Tier struct {
	Count int
	Label string
}

// ActionTiers is the fixed ladder every action climbs.
var ActionTiers = []Tier{
	{Count: 1, Label: "Débutant"},
	{Count: 3, Label: "Apprenti"},
	{Count: 5, Label: "Confirmé"},
	{Count: 10, Label: "Expert"},
	{Count: 20, Label: "Maître"},
	{Count: 50, Label: "Légende"},
	{Count: 75, Label: "Héros"},
	{Count: 100, Label: "Immortel"},
}

// TierProgress returns the highest tier reached by count and the next tier
// to reach. Either may be nil.
func TierProgress(count int) (last, next *Tier) {
	for i := range ActionTiers {
		if count >= ActionTiers[i].Count {
			last = &ActionTiers[i]
			continue
		}
		next = &ActionTiers[i]
		break
	}
	return last, next
}

// ActionTierBadges reports, per action and in action order, at most two
// badges: the last tier earned and the next tier to earn. The full ladder is
// never listed.
func ActionTierBadges(actions []Action, entries []Entry) []BadgeResult {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.ActionID]++
	}

	var out []BadgeResult
	for _, a := range actions {
		last, next := TierProgress(counts[a.ID])
		if last != nil {
			out = append(out, tierBadge(a, *last, true))
		}
		if next != nil {
			out = append(out, tierBadge(a, *next, false))
		}
	}
	return out
}

func tierBadge(a Action, t Tier, unlocked bool) BadgeResult {
	return BadgeResult{
		ID:          fmt.Sprintf("action-%s-lvl%d", a.ID, t.Count),
		Name:        t.Label + " " + a.Label,
		Unlocked:    unlocked,
		Description: fmt.Sprintf("Réaliser l'action \"%s\" %d fois", a.Label, t.Count),
		Source:      BadgeSourceAction,
		Mode:        BadgeModeAuto,
	}
}
