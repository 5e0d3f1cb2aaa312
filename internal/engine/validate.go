package engine

import (
	"fmt"
	"strings"
)

// NormalizeLabel trims a label and rejects empty ones.
func NormalizeLabel(field, label string) (string, error) {
	l := strings.TrimSpace(label)
	if l == "" {
		return "", ValidationError{Field: field, Reason: "is required"}
	}
	return l, nil
}

func ValidatePoints(points int) error {
	if points < 0 {
		return ValidationError{Field: "points", Reason: fmt.Sprintf("must be >= 0 (got %d)", points)}
	}
	return nil
}

// ValidateDate requires a canonical YYYY-MM-DD date.
func ValidateDate(date string) error {
	d, err := ParseDate(date)
	if err != nil || FormatDate(d) != date {
		return ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", date)}
	}
	return nil
}

func ValidateSettings(s Settings) error {
	if s.CodeMasterLessons < 1 {
		return ValidationError{Field: "codeMasterLessons", Reason: "must be >= 1"}
	}
	if s.RegulariteDaysNeeded < 1 {
		return ValidationError{Field: "regulariteDaysNeeded", Reason: "must be >= 1"}
	}
	return nil
}

// ValidateRule checks the parameters a kind reads after defaults are
// applied. It returns the defaulted rule.
func ValidateRule(r BadgeRule) (BadgeRule, error) {
	if !r.Kind.IsValid() {
		return r, ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown badge kind %q", r.Kind)}
	}
	r = r.WithDefaults()

	needAction := func() error {
		if strings.TrimSpace(r.ActionID) == "" {
			return ValidationError{Field: "actionId", Reason: "is required"}
		}
		return nil
	}
	positive := func(field string, v int) error {
		if v < 1 {
			return ValidationError{Field: field, Reason: fmt.Sprintf("must be >= 1 (got %d)", v)}
		}
		return nil
	}

	var err error
	switch r.Kind {
	case KindActionCount:
		if err = needAction(); err == nil {
			err = positive("count", r.Count)
		}
	case KindTotalXP, KindWeeklyXP:
		err = positive("xp", r.XP)
	case KindDaysWith6Plus, KindConsecutiveDays:
		err = positive("days", r.Days)
	case KindBeforeNoon:
	case KindWeeksWithAction:
		if err = needAction(); err == nil {
			err = positive("weeks", r.Weeks)
		}
	case KindLongestStreak:
		err = positive("streak", r.Streak)
	case KindDistinctActionsPerDay:
		if err = positive("count", r.Count); err == nil {
			err = positive("days", r.Days)
		}
	case KindComboActions:
		if len(r.Actions) == 0 {
			err = ValidationError{Field: "actions", Reason: "at least one action is required"}
		} else {
			err = positive("days", r.Days)
		}
	case KindMultiMonthsAction:
		if err = needAction(); err == nil {
			err = positive("months", r.Months)
		}
	case KindMonthlyTotalCount:
		if err = needAction(); err == nil {
			err = positive("count", r.Count)
		}
	}
	return r, err
}
