package tracker

import (
	"context"
	"database/sql"
	"io"

	"github.com/Cosmos506/Gamification-life/internal/backup"
	"github.com/Cosmos506/Gamification-life/internal/storage"
)

func (s *Service) Export(ctx context.Context, w io.Writer) error {
	st, err := s.state.Load(ctx)
	if err != nil {
		return err
	}
	if err := backup.Export(w, st); err != nil {
		return err
	}
	s.log.Info("state exported", "entries", len(st.Entries), "actions", len(st.Actions))
	return nil
}

// Import replaces the collections present in r. Malformed input leaves
// every collection untouched.
func (s *Service) Import(ctx context.Context, r io.Reader) error {
	patch, err := backup.Decode(r)
	if err != nil {
		return err
	}

	var after storage.State
	if err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := storage.NewStateRepo(tx)
		st, err := repo.Load(ctx)
		if err != nil {
			return err
		}
		if after, err = patch.Apply(st); err != nil {
			return err
		}
		if patch.HasEntries() {
			if err := repo.SaveEntries(ctx, after.Entries); err != nil {
				return err
			}
		}
		if patch.HasActions() {
			if err := repo.SaveActions(ctx, after.Actions); err != nil {
				return err
			}
		}
		if patch.HasSettings() {
			return repo.SaveSettings(ctx, after.Settings)
		}
		return nil
	}); err != nil {
		return err
	}

	s.log.Info("state imported",
		"entries", patch.HasEntries(),
		"actions", patch.HasActions(),
		"settings", patch.HasSettings())
	return nil
}
