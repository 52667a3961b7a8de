package store

import (
	"os"
	"time"

	"jobtrack-cli/internal/kv"
	"jobtrack-cli/internal/model"
)

const (
	appsKey     = "apps"
	prefsKey    = "prefs"
	tuiStateKey = "tui_state"
)

// Store owns the serialized representation of one tracker workspace. The
// in-memory collection belongs to the caller between a load and the next
// write-back; every mutation persists the collection wholesale
// (last-writer-wins, no partial writes).
type Store struct {
	Dir string
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) open() (kv.Provider, error) {
	return kv.Open(s.Dir)
}

// LoadApps returns the stored collection. Absent or corrupt data degrades to an
// empty collection; only environmental failures (unusable store dir) error.
func (s Store) LoadApps() ([]model.Application, error) {
	p, err := s.open()
	if err != nil {
		return nil, err
	}
	defer p.Close()
	apps := kv.Load(p, appsKey, []model.Application{})
	if apps == nil {
		apps = []model.Application{}
	}
	return apps, nil
}

func (s Store) SaveApps(apps []model.Application) error {
	p, err := s.open()
	if err != nil {
		return err
	}
	defer p.Close()
	if apps == nil {
		apps = []model.Application{}
	}
	return kv.Save(p, appsKey, apps)
}

func (s Store) LoadPrefs() (model.Prefs, error) {
	p, err := s.open()
	if err != nil {
		return model.DefaultPrefs(), err
	}
	defer p.Close()
	return kv.Load(p, prefsKey, model.DefaultPrefs()).Normalize(), nil
}

func (s Store) SavePrefs(prefs model.Prefs) error {
	p, err := s.open()
	if err != nil {
		return err
	}
	defer p.Close()
	return kv.Save(p, prefsKey, prefs.Normalize())
}

// Add prepends a new application to the collection (newest-first storage order;
// display order is always recomputed by the view-model anyway).
func (s Store) Add(app model.Application) error {
	apps, err := s.LoadApps()
	if err != nil {
		return err
	}
	return s.SaveApps(append([]model.Application{app}, apps...))
}

func (s Store) Get(id string) (model.Application, bool, error) {
	apps, err := s.LoadApps()
	if err != nil {
		return model.Application{}, false, err
	}
	for _, a := range apps {
		if a.ID == id {
			return a, true, nil
		}
	}
	return model.Application{}, false, nil
}

// Update applies fn to the application with the given id and refreshes its
// UpdatedAt. Returns the updated record and whether the id was found.
func (s Store) Update(id string, fn func(*model.Application)) (model.Application, bool, error) {
	apps, err := s.LoadApps()
	if err != nil {
		return model.Application{}, false, err
	}
	for i := range apps {
		if apps[i].ID != id {
			continue
		}
		fn(&apps[i])
		apps[i].ID = id // id is immutable
		apps[i].UpdatedAt = NowMillis()
		if apps[i].UpdatedAt < apps[i].CreatedAt {
			apps[i].UpdatedAt = apps[i].CreatedAt
		}
		if err := s.SaveApps(apps); err != nil {
			return model.Application{}, false, err
		}
		return apps[i], true, nil
	}
	return model.Application{}, false, nil
}

func (s Store) Delete(id string) (bool, error) {
	apps, err := s.LoadApps()
	if err != nil {
		return false, err
	}
	out := apps[:0]
	found := false
	for _, a := range apps {
		if a.ID == id {
			found = true
			continue
		}
		out = append(out, a)
	}
	if !found {
		return false, nil
	}
	return true, s.SaveApps(out)
}

// ClearApps removes all applications but keeps preferences.
func (s Store) ClearApps() error {
	p, err := s.open()
	if err != nil {
		return err
	}
	defer p.Close()
	return p.Delete(appsKey)
}

// Reset is the factory reset: applications and preferences are both removed,
// so the next load sees defaults everywhere.
func (s Store) Reset() error {
	p, err := s.open()
	if err != nil {
		return err
	}
	defer p.Close()
	if err := p.Delete(appsKey); err != nil {
		return err
	}
	return p.Delete(prefsKey)
}

func NowMillis() int64 {
	return time.Now().UTC().UnixMilli()
}
