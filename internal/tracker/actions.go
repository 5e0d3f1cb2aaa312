package tracker

import (
	"context"

	"github.com/Cosmos506/Gamification-life/internal/engine"
	"github.com/Cosmos506/Gamification-life/internal/storage"
)

func (s *Service) ListActions(ctx context.Context) ([]engine.Action, error) {
	return s.state.Actions(ctx)
}

func (s *Service) AddAction(ctx context.Context, label string, points int) (*engine.Action, error) {
	clean, err := engine.NormalizeLabel("label", label)
	if err != nil {
		return nil, err
	}
	if err := engine.ValidatePoints(points); err != nil {
		return nil, err
	}

	a := engine.Action{ID: s.newID(), Label: clean, Points: points}
	if err := s.update(ctx, func(st *storage.State) error {
		st.Actions = append(st.Actions, a)
		return nil
	}); err != nil {
		return nil, err
	}
	s.log.Info("action added", "id", a.ID, "label", a.Label, "points", a.Points)
	return &a, nil
}

// UpdateAction changes an action's label and points. Existing entries keep
// their snapshots.
func (s *Service) UpdateAction(ctx context.Context, id, label string, points int) (*engine.Action, error) {
	clean, err := engine.NormalizeLabel("label", label)
	if err != nil {
		return nil, err
	}
	if err := engine.ValidatePoints(points); err != nil {
		return nil, err
	}

	var out engine.Action
	if err := s.update(ctx, func(st *storage.State) error {
		for i := range st.Actions {
			if st.Actions[i].ID == id {
				st.Actions[i].Label = clean
				st.Actions[i].Points = points
				out = st.Actions[i]
				return nil
			}
		}
		return NotFoundError{Kind: "action", ID: id}
	}); err != nil {
		return nil, err
	}
	s.log.Info("action updated", "id", id, "label", out.Label, "points", out.Points)
	return &out, nil
}

// RemoveAction deletes an action. Entries referencing it are kept.
func (s *Service) RemoveAction(ctx context.Context, id string) error {
	if err := s.update(ctx, func(st *storage.State) error {
		for i := range st.Actions {
			if st.Actions[i].ID == id {
				st.Actions = append(st.Actions[:i], st.Actions[i+1:]...)
				return nil
			}
		}
		return NotFoundError{Kind: "action", ID: id}
	}); err != nil {
		return err
	}
	s.log.Info("action removed", "id", id)
	return nil
}
