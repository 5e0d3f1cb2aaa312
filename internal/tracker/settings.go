package tracker

import (
	"context"

	"github.com/Cosmos506/Gamification-life/internal/engine"
	"github.com/Cosmos506/Gamification-life/internal/storage"
)

func (s *Service) Settings(ctx context.Context) (engine.Settings, error) {
	return s.state.Settings(ctx)
}

// UpdateSettings overlays the non-zero knobs of patch onto the current
// settings.
func (s *Service) UpdateSettings(ctx context.Context, patch engine.Settings) (engine.Settings, error) {
	var out engine.Settings
	if err := s.update(ctx, func(st *storage.State) error {
		merged := engine.MergeSettings(st.Settings, patch)
		if err := engine.ValidateSettings(merged); err != nil {
			return err
		}
		st.Settings = merged
		out = merged
		return nil
	}); err != nil {
		return engine.Settings{}, err
	}
	s.log.Info("settings updated",
		"codeMasterLessons", out.CodeMasterLessons,
		"regulariteDaysNeeded", out.RegulariteDaysNeeded)
	return out, nil
}
