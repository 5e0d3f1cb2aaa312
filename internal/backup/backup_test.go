package backup

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cosmos506/Gamification-life/internal/engine"
	"github.com/Cosmos506/Gamification-life/internal/storage"
)

func sampleState() storage.State {
	return storage.State{
		Actions: engine.DefaultActions(),
		Entries: []engine.Entry{
			{ID: "e1", Date: "2024-01-01", ActionID: "pomodoro", Label: "Pomodoro complet", Points: 5, SansDistraction: true},
			{ID: "e2", Date: "2024-01-02", ActionID: "ping", Label: "Séance de ping-pong complète", Points: 15, Notes: "club"},
			{ID: "e3", Date: "2024-01-02", ActionID: "gone", Label: "Removed", Points: 8, BeforeNoon: true},
		},
		Settings: engine.Settings{CodeMasterLessons: 3, RegulariteDaysNeeded: 2},
		Badges: []engine.BadgeSpec{
			{ID: "b1", Name: "Two pings", Mode: engine.BadgeModeAuto, Rule: &engine.BadgeRule{Kind: engine.KindActionCount, ActionID: "ping", Count: 2}},
		},
	}
}

func board(st storage.State) []engine.BadgeResult {
	daily := engine.AggregateDaily(st.Entries)
	in := engine.BadgeInput{
		Entries:     st.Entries,
		Daily:       daily,
		Progression: engine.SummarizeProgression(daily, engine.BuildLevelThresholds(engine.DefaultMaxLevel), engine.DefaultTitles()),
		Actions:     st.Actions,
		Settings:    st.Settings,
	}
	return engine.Board(in, st.Badges)
}

func TestExportImportIsIdempotent(t *testing.T) {
	st := sampleState()

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, st))

	patch, err := Decode(&buf)
	require.NoError(t, err)
	assert.True(t, patch.HasEntries())
	assert.True(t, patch.HasActions())
	assert.True(t, patch.HasSettings())

	restored, err := patch.Apply(storage.State{Settings: engine.DefaultSettings(), Badges: st.Badges})
	require.NoError(t, err)
	assert.Equal(t, st, restored)
	assert.Equal(t, board(st), board(restored))

	var again bytes.Buffer
	require.NoError(t, Export(&again, restored))
	var first bytes.Buffer
	require.NoError(t, Export(&first, st))
	assert.Equal(t, first.String(), again.String())
}

func TestDecodeMissingKeysLeaveCollections(t *testing.T) {
	st := sampleState()

	patch, err := Decode(strings.NewReader(`{"settings": {"regulariteDaysNeeded": 9}, "theme": "dark", "entries": null}`))
	require.NoError(t, err)
	assert.False(t, patch.HasEntries())
	assert.False(t, patch.HasActions())

	got, err := patch.Apply(st)
	require.NoError(t, err)
	assert.Equal(t, st.Entries, got.Entries)
	assert.Equal(t, st.Actions, got.Actions)
	assert.Equal(t, engine.Settings{CodeMasterLessons: 3, RegulariteDaysNeeded: 9}, got.Settings)
}

func TestDecodeEmptyArraysReplace(t *testing.T) {
	patch, err := Decode(strings.NewReader(`{"entries": []}`))
	require.NoError(t, err)

	got, err := patch.Apply(sampleState())
	require.NoError(t, err)
	assert.Empty(t, got.Entries)
	assert.NotEmpty(t, got.Actions)
}

func TestDecodeMalformed(t *testing.T) {
	cases := map[string]string{
		"syntax":        `{"entries": [`,
		"not an object": `[1, 2, 3]`,
		"empty":         ``,
		"wrong type":    `{"entries": 5}`,
		"bad date":      `{"entries": [{"id": "x", "date": "01/02/2024", "actionId": "a", "points": 1}]}`,
		"missing id":    `{"actions": [{"label": "x", "points": 1}]}`,
		"negative":      `{"actions": [{"id": "a", "label": "x", "points": -3}]}`,
		"settings type": `{"settings": {"codeMasterLessons": "ten"}}`,
	}
	for name, body := range cases {
		_, err := Decode(strings.NewReader(body))
		var malformed MalformedInputError
		assert.True(t, errors.As(err, &malformed), "%s: err=%v", name, err)
	}
}

func TestApplyRejectsInvalidSettings(t *testing.T) {
	patch, err := Decode(strings.NewReader(`{"settings": {"codeMasterLessons": -2}}`))
	require.NoError(t, err)

	_, err = patch.Apply(sampleState())
	var malformed MalformedInputError
	require.ErrorAs(t, err, &malformed)
}
