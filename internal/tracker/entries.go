package tracker

import (
	"context"
	"sort"
	"strings"

	"github.com/Cosmos506/Gamification-life/internal/engine"
	"github.com/Cosmos506/Gamification-life/internal/storage"
)

type EntryInput struct {
	// Date defaults to today when empty.
	Date            string
	ActionID        string
	Notes           string
	SansDistraction bool
	BeforeNoon      bool
}

// AddEntry logs one occurrence of an action. The action's label and points
// are copied onto the entry so later edits to the action do not rewrite
// history.
func (s *Service) AddEntry(ctx context.Context, in EntryInput) (*engine.Entry, error) {
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = engine.FormatDate(s.now())
	}
	if err := engine.ValidateDate(date); err != nil {
		return nil, err
	}

	var out engine.Entry
	if err := s.update(ctx, func(st *storage.State) error {
		var action *engine.Action
		for i := range st.Actions {
			if st.Actions[i].ID == in.ActionID {
				action = &st.Actions[i]
				break
			}
		}
		if action == nil {
			return NotFoundError{Kind: "action", ID: in.ActionID}
		}

		out = engine.Entry{
			ID:         s.newID(),
			Date:       date,
			ActionID:   action.ID,
			Label:      action.Label,
			Points:     action.Points,
			Notes:      strings.TrimSpace(in.Notes),
			BeforeNoon: in.BeforeNoon,
		}
		// Only pomodoro sessions track distraction-free focus.
		if action.ID == engine.ActionPomodoro {
			out.SansDistraction = in.SansDistraction
		}

		st.Entries = append(st.Entries, out)
		sort.SliceStable(st.Entries, func(i, j int) bool {
			return st.Entries[i].Date < st.Entries[j].Date
		})
		return nil
	}); err != nil {
		return nil, err
	}

	s.log.Info("entry logged", "id", out.ID, "action", out.ActionID, "date", out.Date, "points", out.Points)
	return &out, nil
}

func (s *Service) ListEntries(ctx context.Context) ([]engine.Entry, error) {
	return s.state.Entries(ctx)
}

func (s *Service) RemoveEntry(ctx context.Context, id string) error {
	if err := s.update(ctx, func(st *storage.State) error {
		for i := range st.Entries {
			if st.Entries[i].ID == id {
				st.Entries = append(st.Entries[:i], st.Entries[i+1:]...)
				return nil
			}
		}
		return NotFoundError{Kind: "entry", ID: id}
	}); err != nil {
		return err
	}
	s.log.Info("entry removed", "id", id)
	return nil
}

// ClearEntries drops the whole log and returns how many entries it held.
func (s *Service) ClearEntries(ctx context.Context) (int, error) {
	var n int
	if err := s.update(ctx, func(st *storage.State) error {
		n = len(st.Entries)
		st.Entries = []engine.Entry{}
		return nil
	}); err != nil {
		return 0, err
	}
	s.log.Info("entries cleared", "count", n)
	return n, nil
}
