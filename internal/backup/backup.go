// Package backup encodes and decodes the portable export payload:
// a JSON object with the entries, settings and actions collections.
package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Cosmos506/Gamification-life/internal/engine"
	"github.com/Cosmos506/Gamification-life/internal/storage"
)

// DefaultFileName is the name the export is usually saved under.
const DefaultFileName = "vie-gamifiee.json"

// MalformedInputError reports an import payload that is not valid JSON or
// does not have the expected shape.
type MalformedInputError struct {
	Reason string
	Err    error
}

func (e MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed import: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed import: %s", e.Reason)
}

func (e MalformedInputError) Unwrap() error { return e.Err }

// Payload is the exported document.
type Payload struct {
	Entries  []engine.Entry  `json:"entries"`
	Settings engine.Settings `json:"settings"`
	Actions  []engine.Action `json:"actions"`
}

// Export writes the payload for st as indented JSON.
func Export(w io.Writer, st storage.State) error {
	p := Payload{Entries: st.Entries, Settings: st.Settings, Actions: st.Actions}
	if p.Entries == nil {
		p.Entries = []engine.Entry{}
	}
	if p.Actions == nil {
		p.Actions = []engine.Action{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// Patch holds the collections present in an import. Nil fields were absent
// and leave the current collection unchanged.
type Patch struct {
	Entries  []engine.Entry
	Settings *engine.Settings
	Actions  []engine.Action

	hasEntries bool
	hasActions bool
}

func (p Patch) HasEntries() bool  { return p.hasEntries }
func (p Patch) HasActions() bool  { return p.hasActions }
func (p Patch) HasSettings() bool { return p.Settings != nil }

// Decode parses an import payload. Unknown top-level keys are ignored and
// null values count as absent.
func Decode(r io.Reader) (Patch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Patch{}, fmt.Errorf("read import: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return Patch{}, MalformedInputError{Reason: "payload must be a JSON object"}
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return Patch{}, MalformedInputError{Reason: "invalid JSON", Err: err}
	}

	var p Patch
	if raw, ok := present(top, "entries"); ok {
		if err := json.Unmarshal(raw, &p.Entries); err != nil {
			return Patch{}, MalformedInputError{Reason: "entries must be an array of entries", Err: err}
		}
		for i, e := range p.Entries {
			if err := checkEntry(e); err != nil {
				return Patch{}, MalformedInputError{Reason: fmt.Sprintf("entries[%d]", i), Err: err}
			}
		}
		if p.Entries == nil {
			p.Entries = []engine.Entry{}
		}
		p.hasEntries = true
	}
	if raw, ok := present(top, "settings"); ok {
		var s engine.Settings
		if err := json.Unmarshal(raw, &s); err != nil {
			return Patch{}, MalformedInputError{Reason: "settings must be an object of numbers", Err: err}
		}
		p.Settings = &s
	}
	if raw, ok := present(top, "actions"); ok {
		if err := json.Unmarshal(raw, &p.Actions); err != nil {
			return Patch{}, MalformedInputError{Reason: "actions must be an array of actions", Err: err}
		}
		for i, a := range p.Actions {
			if err := checkAction(a); err != nil {
				return Patch{}, MalformedInputError{Reason: fmt.Sprintf("actions[%d]", i), Err: err}
			}
		}
		if p.Actions == nil {
			p.Actions = []engine.Action{}
		}
		p.hasActions = true
	}
	return p, nil
}

// Apply returns st with the present collections replaced. Settings are
// merged over the current ones; the merged result must still be valid.
func (p Patch) Apply(st storage.State) (storage.State, error) {
	if p.hasEntries {
		st.Entries = p.Entries
	}
	if p.hasActions {
		st.Actions = p.Actions
	}
	if p.Settings != nil {
		merged := engine.MergeSettings(st.Settings, *p.Settings)
		if err := engine.ValidateSettings(merged); err != nil {
			return storage.State{}, MalformedInputError{Reason: "settings", Err: err}
		}
		st.Settings = merged
	}
	return st, nil
}

func present(top map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := top[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	return raw, true
}

var errMissingID = errors.New("id is required")

func checkEntry(e engine.Entry) error {
	if e.ID == "" {
		return errMissingID
	}
	if e.ActionID == "" {
		return errors.New("actionId is required")
	}
	if err := engine.ValidateDate(e.Date); err != nil {
		return err
	}
	return engine.ValidatePoints(e.Points)
}

func checkAction(a engine.Action) error {
	if a.ID == "" {
		return errMissingID
	}
	return engine.ValidatePoints(a.Points)
}
