package tracker

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Cosmos506/Gamification-life/internal/engine"
	"github.com/Cosmos506/Gamification-life/internal/storage"
)

// NotFoundError is returned when a mutation targets an unknown id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

type Service struct {
	db         *sql.DB
	state      *storage.StateRepo
	log        *slog.Logger
	thresholds engine.Thresholds
	titles     engine.Titles
	now        func() time.Time
	newID      func() string
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithMaxLevel sizes the level table.
func WithMaxLevel(maxLevel int) Option {
	return func(s *Service) { s.thresholds = engine.BuildLevelThresholds(maxLevel) }
}

func WithTitles(t engine.Titles) Option {
	return func(s *Service) { s.titles = t }
}

// WithClock sets the clock used for the default entry date.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:         db,
		state:      storage.NewStateRepo(db),
		log:        slog.Default(),
		thresholds: engine.BuildLevelThresholds(engine.DefaultMaxLevel),
		titles:     engine.DefaultTitles(),
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) Thresholds() engine.Thresholds { return s.thresholds }

// Snapshot loads a consistent copy of every collection.
func (s *Service) Snapshot(ctx context.Context) (storage.State, error) {
	return s.state.Load(ctx)
}

// update runs fn over a snapshot inside one transaction and persists the
// result. Nothing is written when fn fails.
func (s *Service) update(ctx context.Context, fn func(st *storage.State) error) error {
	return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := storage.NewStateRepo(tx)
		st, err := repo.Load(ctx)
		if err != nil {
			return err
		}
		if err := fn(&st); err != nil {
			return err
		}
		return repo.Save(ctx, st)
	})
}
