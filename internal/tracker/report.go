package tracker

import (
	"context"

	"github.com/Cosmos506/Gamification-life/internal/engine"
	"github.com/Cosmos506/Gamification-life/internal/storage"
)

// Report is every derived view of one snapshot.
type Report struct {
	Daily       []engine.DailyAggregate
	Progression engine.Progression
	Badges      []engine.BadgeResult
	Unlocked    int
	Thresholds  engine.Thresholds
}

func (s *Service) Report(ctx context.Context) (*Report, error) {
	st, err := s.state.Load(ctx)
	if err != nil {
		return nil, err
	}
	return BuildReport(st, s.thresholds, s.titles), nil
}

// BuildReport derives the daily, progression and badge views from st.
func BuildReport(st storage.State, thresholds engine.Thresholds, titles engine.Titles) *Report {
	daily := engine.AggregateDaily(st.Entries)
	prog := engine.SummarizeProgression(daily, thresholds, titles)
	board := engine.Board(engine.BadgeInput{
		Entries:     st.Entries,
		Daily:       daily,
		Progression: prog,
		Actions:     st.Actions,
		Settings:    st.Settings,
	}, st.Badges)
	return &Report{
		Daily:       daily,
		Progression: prog,
		Badges:      board,
		Unlocked:    engine.CountUnlocked(board),
		Thresholds:  thresholds,
	}
}
