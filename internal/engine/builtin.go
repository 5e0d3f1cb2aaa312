package engine

import "fmt"

// Action ids of the default catalogue that built-in badges refer to.
const (
	ActionPomodoro      = "pomodoro"
	ActionPomo2         = "pomo2"
	ActionPomo4         = "pomo4"
	ActionPing          = "ping"
	ActionHomeFit       = "homefit"
	ActionRoadmap       = "roadmap"
	ActionSymfony       = "symfony"
	ActionEnglish5      = "english5"
	ActionMenage        = "menage"
	ActionRevision      = "revision"
	ActionRevisionAhead = "revisionAhead"
	ActionDefi          = "defi"
)

const (
	legendLevel          = 100
	monthlyPomodoroGoal  = 100
	englishWordsPerEntry = 5
	englishWordsGoal     = 50
	championStreakDays   = 4
	plannerStreakDays    = 7
	multiTaskerActions   = 3
	weeklySportWeeks     = 3
)

type specialDef struct {
	ID   string
	Name string
	Cond func(s Settings) string
	Ok   func(f *facts) bool
}

func fixed(cond string) func(Settings) string {
	return func(Settings) string { return cond }
}

var (
	sportActions  = []string{ActionPing, ActionHomeFit}
	studyActions  = []string{ActionPomodoro, ActionPomo2, ActionPomo4, ActionRevision, ActionRevisionAhead, ActionSymfony}
	choreActions  = []string{ActionMenage}
	pomodoroValue = map[string]int{ActionPomodoro: 1, ActionPomo2: 2, ActionPomo4: 4}
)

func builtinSpecials() []specialDef {
	return []specialDef{
		{
			ID:   "concentre",
			Name: "Concentré",
			Cond: fixed("1 Pomodoro sans distraction"),
			Ok: func(f *facts) bool {
				for _, e := range f.in.Entries {
					if e.ActionID == ActionPomodoro && e.SansDistraction {
						return true
					}
				}
				return false
			},
		},
		{
			ID:   "marathonien",
			Name: "Marathonien",
			Cond: fixed("4 Pomodoros consécutifs"),
			Ok:   func(f *facts) bool { return f.countByAction[ActionPomo4] >= 1 },
		},
		{
			ID:   "superping",
			Name: "Super Ping",
			Cond: fixed("3 semaines ping-pong"),
			Ok:   func(f *facts) bool { return f.isoWeeksWith(ActionPing) >= weeklySportWeeks },
		},
		{
			ID:   "forcemaison",
			Name: "Force Maison",
			Cond: fixed("3 semaines programme maison"),
			Ok:   func(f *facts) bool { return f.isoWeeksWith(ActionHomeFit) >= weeklySportWeeks },
		},
		{
			ID:   "codemaster",
			Name: "Code Master",
			Cond: func(s Settings) string { return fmt.Sprintf("≥ %d leçons Symfony", s.CodeMasterLessons) },
			Ok: func(f *facts) bool {
				return reached(f.countByAction[ActionSymfony], f.in.Settings.CodeMasterLessons)
			},
		},
		{
			ID:   "polyglotte",
			Name: "Polyglotte",
			Cond: fixed("50 mots anglais"),
			Ok: func(f *facts) bool {
				return f.countByAction[ActionEnglish5]*englishWordsPerEntry >= englishWordsGoal
			},
		},
		{
			ID:   "regularite",
			Name: "Régularité",
			Cond: func(s Settings) string {
				return fmt.Sprintf("≥ %d jours avec %d+ actions", s.RegulariteDaysNeeded, VolumeEntries)
			},
			Ok: func(f *facts) bool { return reached(f.daysWith6Plus(), f.in.Settings.RegulariteDaysNeeded) },
		},
		{
			ID:   "matinee",
			Name: "Matinée Parfaite",
			Cond: fixed("Avant midi (marque manuelle)"),
			Ok:   func(f *facts) bool { return evalBeforeNoon(f, BadgeRule{}).OK },
		},
		{
			ID:   "multitask",
			Name: "Multi-Tasker",
			Cond: fixed("3 types d’actions en 1 jour"),
			Ok: func(f *facts) bool {
				for _, d := range f.dates {
					if len(f.distinctActionsOn(d)) >= multiTaskerActions {
						return true
					}
				}
				return false
			},
		},
		{
			ID:   "marathonMensuel",
			Name: "Marathon Mensuel",
			Cond: fixed("100 Pomodoros en 1 mois"),
			Ok: func(f *facts) bool {
				perMonth := make(map[string]int)
				for _, e := range f.in.Entries {
					perMonth[MonthKey(e.Date)] += pomodoroValue[e.ActionID]
				}
				for _, n := range perMonth {
					if n >= monthlyPomodoroGoal {
						return true
					}
				}
				return false
			},
		},
		{
			ID:   "creatif",
			Name: "Créatif",
			Cond: fixed("Nouvelle case roadmap/projet"),
			Ok:   func(f *facts) bool { return f.countByAction[ActionRoadmap] >= 1 },
		},
		{
			// No action tracks reading yet.
			ID:   "lecture",
			Name: "Lecture Éclair",
			Cond: fixed("Livre ou 5 chapitres/sem."),
			Ok:   func(*facts) bool { return false },
		},
		{
			ID:   "polyvalent",
			Name: "Polyvalent",
			Cond: fixed("Sport+études+ménages en 1 jour"),
			Ok: func(f *facts) bool {
				for _, d := range f.dates {
					present := f.distinctActionsOn(d)
					if anyOf(present, sportActions) && anyOf(present, studyActions) && anyOf(present, choreActions) {
						return true
					}
				}
				return false
			},
		},
		{
			ID:   "planificateur",
			Name: "Planificateur",
			Cond: fixed("7 jours planning suivis"),
			Ok: func(f *facts) bool {
				return evalConsecutiveDays(f, BadgeRule{Days: plannerStreakDays}).OK
			},
		},
		{
			ID:   "championBonus",
			Name: "Champion des Bonus",
			Cond: fixed("4 jours d’affilée avec 6+ actions"),
			Ok: func(f *facts) bool {
				for _, d := range f.in.Daily {
					if d.SixPlusStreak >= championStreakDays {
						return true
					}
				}
				return false
			},
		},
		{
			ID:   "defiSupreme",
			Name: "Défi Suprême",
			Cond: fixed("Défi spécial difficile"),
			Ok:   func(f *facts) bool { return f.countByAction[ActionDefi] >= 1 },
		},
		{
			ID:   "legende",
			Name: "Légende Vivante",
			Cond: fixed(fmt.Sprintf("Atteindre le niveau %d", legendLevel)),
			Ok:   func(f *facts) bool { return f.in.Progression.Level >= legendLevel },
		},
	}
}

func anyOf(present map[string]bool, ids []string) bool {
	for _, id := range ids {
		if present[id] {
			return true
		}
	}
	return false
}

// SpecialBadges evaluates the fixed built-in catalogue.
func SpecialBadges(in BadgeInput) []BadgeResult {
	return newFacts(in).specialBadges()
}

func (f *facts) specialBadges() []BadgeResult {
	defs := builtinSpecials()
	out := make([]BadgeResult, 0, len(defs))
	for _, d := range defs {
		out = append(out, BadgeResult{
			ID:          d.ID,
			Name:        d.Name,
			Unlocked:    d.Ok(f),
			Description: d.Cond(f.in.Settings),
			Source:      BadgeSourceSpecial,
			Mode:        BadgeModeAuto,
		})
	}
	return out
}
