package store

import (
	"strings"

	"jobtrack-cli/internal/kv"
)

// TUIState stores small, user-facing UI state for restoring the last screen on
// relaunch. It lives inside the workspace store so state is naturally scoped
// per workspace, and it is intentionally best-effort: callers tolerate missing
// or invalid data.
type TUIState struct {
	Version int `json:"version"`

	// View is one of: board|stats|settings
	View string `json:"view,omitempty"`

	// SelectedColumn is the board column index (0..3).
	SelectedColumn int `json:"selectedColumn,omitempty"`

	// SelectedAppID restores focus to the same card across runs.
	SelectedAppID string `json:"selectedAppId,omitempty"`
}

func (s Store) LoadTUIState() *TUIState {
	if strings.TrimSpace(s.Dir) == "" {
		return &TUIState{Version: 1}
	}
	p, err := s.open()
	if err != nil {
		return &TUIState{Version: 1}
	}
	defer p.Close()
	st := kv.Load(p, tuiStateKey, TUIState{Version: 1})
	if st.Version == 0 {
		st.Version = 1
	}
	return &st
}

func (s Store) SaveTUIState(st *TUIState) error {
	if st == nil || strings.TrimSpace(s.Dir) == "" {
		return nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	p, err := s.open()
	if err != nil {
		return err
	}
	defer p.Close()
	return kv.Save(p, tuiStateKey, *st)
}
