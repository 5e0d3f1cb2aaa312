package tracker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cosmos506/Gamification-life/internal/backup"
	"github.com/Cosmos506/Gamification-life/internal/engine"
	"github.com/Cosmos506/Gamification-life/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "vg.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	seq := 0
	return NewService(db,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC) }),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
}

func TestAddEntrySnapshotsAction(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	e, err := s.AddEntry(ctx, EntryInput{ActionID: engine.ActionPomodoro, Notes: "  deep work ", SansDistraction: true})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", e.Date)
	assert.Equal(t, "Pomodoro complet", e.Label)
	assert.Equal(t, 5, e.Points)
	assert.Equal(t, "deep work", e.Notes)
	assert.True(t, e.SansDistraction)

	_, err = s.UpdateAction(ctx, engine.ActionPomodoro, "Pomodoro", 8)
	require.NoError(t, err)

	entries, err := s.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Points)
	assert.Equal(t, "Pomodoro complet", entries[0].Label)
}

func TestAddEntrySansDistractionOnlyForPomodoro(t *testing.T) {
	s := newTestService(t)

	e, err := s.AddEntry(context.Background(), EntryInput{ActionID: engine.ActionPing, SansDistraction: true})
	require.NoError(t, err)
	assert.False(t, e.SansDistraction)
}

func TestAddEntryRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	_, err := s.AddEntry(ctx, EntryInput{ActionID: "nope"})
	var nf NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "action", nf.Kind)

	_, err = s.AddEntry(ctx, EntryInput{ActionID: engine.ActionPing, Date: "2024-02-30"})
	var ve engine.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "date", ve.Field)

	entries, err := s.ListEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntriesStaySortedByDate(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	for _, d := range []string{"2024-03-10", "2024-03-08", "2024-03-10", "2024-03-09"} {
		_, err := s.AddEntry(ctx, EntryInput{ActionID: engine.ActionMenage, Date: d})
		require.NoError(t, err)
	}

	entries, err := s.ListEntries(ctx)
	require.NoError(t, err)
	var got []string
	for _, e := range entries {
		got = append(got, e.Date+"/"+e.ID)
	}
	assert.Equal(t, []string{"2024-03-08/id-2", "2024-03-09/id-4", "2024-03-10/id-1", "2024-03-10/id-3"}, got)
}

func TestRemoveAndClearEntries(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	a, err := s.AddEntry(ctx, EntryInput{ActionID: engine.ActionPing})
	require.NoError(t, err)
	_, err = s.AddEntry(ctx, EntryInput{ActionID: engine.ActionPing})
	require.NoError(t, err)

	require.NoError(t, s.RemoveEntry(ctx, a.ID))
	var nf NotFoundError
	assert.True(t, errors.As(s.RemoveEntry(ctx, a.ID), &nf))

	n, err := s.ClearEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entries, err := s.ListEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestActionLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	a, err := s.AddAction(ctx, "  Lecture ", 7)
	require.NoError(t, err)
	assert.Equal(t, "id-1", a.ID)
	assert.Equal(t, "Lecture", a.Label)

	_, err = s.AddAction(ctx, "   ", 7)
	assert.Error(t, err)
	_, err = s.AddAction(ctx, "Neg", -1)
	assert.Error(t, err)

	actions, err := s.ListActions(ctx)
	require.NoError(t, err)
	assert.Len(t, actions, len(engine.DefaultActions())+1)

	_, err = s.AddEntry(ctx, EntryInput{ActionID: a.ID})
	require.NoError(t, err)
	require.NoError(t, s.RemoveAction(ctx, a.ID))

	// The entry outlives its action and keeps counting.
	rep, err := s.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, rep.Progression.TotalXP)

	var nf NotFoundError
	_, err = s.UpdateAction(ctx, a.ID, "x", 1)
	assert.True(t, errors.As(err, &nf))
}

func TestRemovingEveryActionIsKept(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	for _, a := range engine.DefaultActions() {
		require.NoError(t, s.RemoveAction(ctx, a.ID))
	}
	actions, err := s.ListActions(ctx)
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestBadgeLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	m, err := s.AddManualBadge(ctx, "Lire un livre", "Finir un roman")
	require.NoError(t, err)
	assert.Equal(t, engine.BadgeModeManual, m.Mode)

	toggled, err := s.ToggleBadge(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Validated)

	auto, err := s.AddAutoBadge(ctx, "Série", engine.BadgeRule{Kind: engine.KindLongestStreak, Days: 2})
	require.NoError(t, err)
	require.NotNil(t, auto.Rule)
	assert.Equal(t, 2, auto.Rule.Streak)

	_, err = s.ToggleBadge(ctx, auto.ID)
	var ve engine.ValidationError
	assert.True(t, errors.As(err, &ve))

	_, err = s.AddAutoBadge(ctx, "Bad", engine.BadgeRule{Kind: "nope"})
	assert.True(t, errors.As(err, &ve))
	_, err = s.AddAutoBadge(ctx, "Bad", engine.BadgeRule{Kind: engine.KindActionCount, Count: 3})
	assert.True(t, errors.As(err, &ve))

	badges, err := s.ListBadges(ctx)
	require.NoError(t, err)
	assert.Len(t, badges, 2)

	require.NoError(t, s.RemoveBadge(ctx, m.ID))
	var nf NotFoundError
	assert.True(t, errors.As(s.RemoveBadge(ctx, m.ID), &nf))
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	got, err := s.UpdateSettings(ctx, engine.Settings{CodeMasterLessons: 3})
	require.NoError(t, err)
	assert.Equal(t, engine.Settings{CodeMasterLessons: 3, RegulariteDaysNeeded: 5}, got)

	_, err = s.UpdateSettings(ctx, engine.Settings{RegulariteDaysNeeded: -2})
	assert.Error(t, err)

	stored, err := s.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, stored)
}

func TestReportCombinesViews(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := s.AddEntry(ctx, EntryInput{ActionID: engine.ActionDefi, Date: engine.AddDays("2024-03-01", i)})
		require.NoError(t, err)
	}
	_, err := s.AddAutoBadge(ctx, "Trois jours", engine.BadgeRule{Kind: engine.KindConsecutiveDays, Days: 3})
	require.NoError(t, err)

	rep, err := s.Report(ctx)
	require.NoError(t, err)
	require.Len(t, rep.Daily, 3)
	// 3 x 25 base XP plus the 10 XP bonus on the third consecutive day.
	assert.Equal(t, 85, rep.Progression.TotalXP)
	assert.Equal(t, 2, rep.Progression.Level)

	ids := map[string]engine.BadgeResult{}
	for _, b := range rep.Badges {
		ids[b.ID] = b
	}
	assert.True(t, ids["action-defi-lvl3"].Unlocked)
	assert.False(t, ids["action-defi-lvl5"].Unlocked)

	last := rep.Badges[len(rep.Badges)-1]
	assert.Equal(t, engine.BadgeSourceCustom, last.Source)
	assert.True(t, last.Unlocked)
	assert.Equal(t, engine.CountUnlocked(rep.Badges), rep.Unlocked)
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestService(t)
	_, err := src.AddEntry(ctx, EntryInput{ActionID: engine.ActionPing, Date: "2024-01-02"})
	require.NoError(t, err)
	_, err = src.UpdateSettings(ctx, engine.Settings{CodeMasterLessons: 4})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, src.Export(ctx, &buf))

	dst := newTestService(t)
	require.NoError(t, dst.Import(ctx, bytes.NewReader(buf.Bytes())))

	want, err := src.Snapshot(ctx)
	require.NoError(t, err)
	got, err := dst.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Entries, got.Entries)
	assert.Equal(t, want.Actions, got.Actions)
	assert.Equal(t, want.Settings, got.Settings)
}

func TestImportMalformedLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)
	_, err := s.AddEntry(ctx, EntryInput{ActionID: engine.ActionPing})
	require.NoError(t, err)
	before, err := s.Snapshot(ctx)
	require.NoError(t, err)

	cases := []string{
		`not json`,
		`[1, 2]`,
		`{"entries": {"a": 1}}`,
		`{"entries": [], "settings": {"codeMasterLessons": -1}}`,
	}
	for _, c := range cases {
		err := s.Import(ctx, strings.NewReader(c))
		var me backup.MalformedInputError
		assert.True(t, errors.As(err, &me), c)
	}

	after, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestImportPartialPayload(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)
	_, err := s.AddEntry(ctx, EntryInput{ActionID: engine.ActionPing})
	require.NoError(t, err)

	require.NoError(t, s.Import(ctx, strings.NewReader(`{"settings": {"regulariteDaysNeeded": 9}}`)))

	st, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, st.Entries, 1)
	assert.Equal(t, 9, st.Settings.RegulariteDaysNeeded)
	assert.Equal(t, 10, st.Settings.CodeMasterLessons)
}
