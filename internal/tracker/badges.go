package tracker

import (
	"context"
	"strings"

	"github.com/Cosmos506/Gamification-life/internal/engine"
	"github.com/Cosmos506/Gamification-life/internal/storage"
)

func (s *Service) ListBadges(ctx context.Context) ([]engine.BadgeSpec, error) {
	return s.state.Badges(ctx)
}

// AddManualBadge stores a badge the user unlocks by hand. cond is free
// text shown while it is locked.
func (s *Service) AddManualBadge(ctx context.Context, name, cond string) (*engine.BadgeSpec, error) {
	clean, err := engine.NormalizeLabel("name", name)
	if err != nil {
		return nil, err
	}
	b := engine.BadgeSpec{
		ID:   s.newID(),
		Name: clean,
		Mode: engine.BadgeModeManual,
		Cond: strings.TrimSpace(cond),
	}
	return s.addBadge(ctx, b)
}

// AddAutoBadge stores a badge evaluated from the log by rule. The rule is
// validated and stored with its defaults filled in.
func (s *Service) AddAutoBadge(ctx context.Context, name string, rule engine.BadgeRule) (*engine.BadgeSpec, error) {
	clean, err := engine.NormalizeLabel("name", name)
	if err != nil {
		return nil, err
	}
	rule, err = engine.ValidateRule(rule)
	if err != nil {
		return nil, err
	}
	b := engine.BadgeSpec{
		ID:   s.newID(),
		Name: clean,
		Mode: engine.BadgeModeAuto,
		Rule: &rule,
	}
	return s.addBadge(ctx, b)
}

func (s *Service) addBadge(ctx context.Context, b engine.BadgeSpec) (*engine.BadgeSpec, error) {
	if err := s.update(ctx, func(st *storage.State) error {
		st.Badges = append(st.Badges, b)
		return nil
	}); err != nil {
		return nil, err
	}
	s.log.Info("badge added", "id", b.ID, "name", b.Name, "mode", b.Mode)
	return &b, nil
}

// ToggleBadge flips the validated flag of a manual badge.
func (s *Service) ToggleBadge(ctx context.Context, id string) (*engine.BadgeSpec, error) {
	var out engine.BadgeSpec
	if err := s.update(ctx, func(st *storage.State) error {
		for i := range st.Badges {
			if st.Badges[i].ID != id {
				continue
			}
			if st.Badges[i].Mode == engine.BadgeModeAuto {
				return engine.ValidationError{Field: "mode", Reason: "automatic badges cannot be toggled"}
			}
			st.Badges[i].Validated = !st.Badges[i].Validated
			out = st.Badges[i]
			return nil
		}
		return NotFoundError{Kind: "badge", ID: id}
	}); err != nil {
		return nil, err
	}
	s.log.Info("badge toggled", "id", id, "validated", out.Validated)
	return &out, nil
}

func (s *Service) RemoveBadge(ctx context.Context, id string) error {
	if err := s.update(ctx, func(st *storage.State) error {
		for i := range st.Badges {
			if st.Badges[i].ID == id {
				st.Badges = append(st.Badges[:i], st.Badges[i+1:]...)
				return nil
			}
		}
		return NotFoundError{Kind: "badge", ID: id}
	}); err != nil {
		return err
	}
	s.log.Info("badge removed", "id", id)
	return nil
}
