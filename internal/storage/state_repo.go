package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Cosmos506/Gamification-life/internal/engine"
)

// Keys of the stored collections.
const (
	KeyActions  = "vg_actions"
	KeyEntries  = "vg_entries"
	KeySettings = "vg_settings"
	KeyBadges   = "vg_custom_badges"
)

// State is a consistent snapshot of every caller-owned collection.
type State struct {
	Actions  []engine.Action
	Entries  []engine.Entry
	Settings engine.Settings
	Badges   []engine.BadgeSpec
}

// StateRepo stores each collection as a JSON document in the kv table.
type StateRepo struct {
	kv *KVRepo
}

func NewStateRepo(q Querier) *StateRepo {
	return &StateRepo{kv: NewKVRepo(q)}
}

// Load reads every collection. Missing keys yield the defaults.
func (r *StateRepo) Load(ctx context.Context) (State, error) {
	var s State
	var err error
	if s.Actions, err = r.Actions(ctx); err != nil {
		return State{}, err
	}
	if s.Entries, err = r.Entries(ctx); err != nil {
		return State{}, err
	}
	if s.Settings, err = r.Settings(ctx); err != nil {
		return State{}, err
	}
	if s.Badges, err = r.Badges(ctx); err != nil {
		return State{}, err
	}
	return s, nil
}

// Save writes every collection.
func (r *StateRepo) Save(ctx context.Context, s State) error {
	if err := r.SaveActions(ctx, s.Actions); err != nil {
		return err
	}
	if err := r.SaveEntries(ctx, s.Entries); err != nil {
		return err
	}
	if err := r.SaveSettings(ctx, s.Settings); err != nil {
		return err
	}
	return r.SaveBadges(ctx, s.Badges)
}

func (r *StateRepo) Actions(ctx context.Context) ([]engine.Action, error) {
	var out []engine.Action
	found, err := r.load(ctx, KeyActions, &out)
	if err != nil {
		return nil, err
	}
	if !found {
		return engine.DefaultActions(), nil
	}
	return out, nil
}

func (r *StateRepo) SaveActions(ctx context.Context, actions []engine.Action) error {
	if actions == nil {
		actions = []engine.Action{}
	}
	return r.save(ctx, KeyActions, actions)
}

func (r *StateRepo) Entries(ctx context.Context) ([]engine.Entry, error) {
	var out []engine.Entry
	if _, err := r.load(ctx, KeyEntries, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *StateRepo) SaveEntries(ctx context.Context, entries []engine.Entry) error {
	if entries == nil {
		entries = []engine.Entry{}
	}
	return r.save(ctx, KeyEntries, entries)
}

// Settings merges the stored knobs over the defaults.
func (r *StateRepo) Settings(ctx context.Context) (engine.Settings, error) {
	var stored engine.Settings
	if _, err := r.load(ctx, KeySettings, &stored); err != nil {
		return engine.Settings{}, err
	}
	return engine.MergeSettings(engine.DefaultSettings(), stored), nil
}

func (r *StateRepo) SaveSettings(ctx context.Context, s engine.Settings) error {
	return r.save(ctx, KeySettings, s)
}

func (r *StateRepo) Badges(ctx context.Context) ([]engine.BadgeSpec, error) {
	var out []engine.BadgeSpec
	if _, err := r.load(ctx, KeyBadges, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *StateRepo) SaveBadges(ctx context.Context, badges []engine.BadgeSpec) error {
	if badges == nil {
		badges = []engine.BadgeSpec{}
	}
	return r.save(ctx, KeyBadges, badges)
}

func (r *StateRepo) load(ctx context.Context, key string, dst any) (bool, error) {
	raw, found, err := r.kv.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (r *StateRepo) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.kv.Put(ctx, key, string(data))
}
