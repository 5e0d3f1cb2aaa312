package engine

// DefaultActions is the catalogue a fresh install starts with.
func DefaultActions() []Action {
	return []Action{
		{ID: ActionPomodoro, Label: "Pomodoro complet", Points: 5},
		{ID: ActionPomo2, Label: "2 Pomodoros consécutifs", Points: 12},
		{ID: ActionPomo4, Label: "4 Pomodoros consécutifs", Points: 25},
		{ID: ActionPing, Label: "Séance de ping-pong complète", Points: 15},
		{ID: ActionHomeFit, Label: "Programme physique maison complet", Points: 10},
		{ID: ActionRoadmap, Label: "Nouvelle case roadmap / projet", Points: 10},
		{ID: ActionSymfony, Label: "Leçon Symfony terminée", Points: 10},
		{ID: ActionEnglish5, Label: "5 mots d’anglais appris", Points: 5},
		{ID: ActionMenage, Label: "Tâche quotidienne / ménagère", Points: 10},
		{ID: ActionRevision, Label: "Révision de cours", Points: 10},
		{ID: ActionRevisionAhead, Label: "Révision de cours en avance", Points: 15},
		{ID: ActionDefi, Label: "Défi spécial réussi", Points: 25},
	}
}

// DefaultSettings returns the knob values used when none are stored.
func DefaultSettings() Settings {
	return Settings{
		CodeMasterLessons:    10,
		RegulariteDaysNeeded: 5,
	}
}

// DefaultTitles maps key levels to their titles.
func DefaultTitles() Titles {
	return Titles{
		1:   "Novice du Jeu de Vie",
		5:   "Explorateur Curieux",
		10:  "Apprenti Motivé",
		20:  "Concentré Émérite",
		30:  "Maître du Focus",
		40:  "Stratège Quotidien",
		50:  "Expert de la Productivité",
		60:  "Champion du Pomodoro",
		75:  "Super Ping & Polyglotte",
		90:  "Grand Maître de la Vie",
		100: "Légende Vivante",
	}
}

// MergeSettings overlays the non-zero knobs of stored onto base.
func MergeSettings(base, stored Settings) Settings {
	if stored.CodeMasterLessons != 0 {
		base.CodeMasterLessons = stored.CodeMasterLessons
	}
	if stored.RegulariteDaysNeeded != 0 {
		base.RegulariteDaysNeeded = stored.RegulariteDaysNeeded
	}
	return base
}
