package store

import (
	"fmt"

	"jobtrack-cli/internal/kv"
)

// DoctorReport summarizes store health for `jobtrack doctor`.
type DoctorReport struct {
	Dir      string   `json:"dir"`
	Backend  string   `json:"backend"`
	AppCount int      `json:"appCount"`
	Problems []string `json:"problems"`
}

// Doctor inspects the workspace store and reports invariant violations.
// It never mutates anything.
func (s Store) Doctor() (DoctorReport, error) {
	rep := DoctorReport{
		Dir:      s.Dir,
		Backend:  string(kv.DetectBackend(s.Dir)),
		Problems: []string{},
	}

	apps, err := s.LoadApps()
	if err != nil {
		return rep, err
	}
	rep.AppCount = len(apps)

	seen := map[string]bool{}
	for _, a := range apps {
		switch {
		case a.ID == "":
			rep.Problems = append(rep.Problems, fmt.Sprintf("application %q/%q has an empty id", a.Company, a.Role))
		case seen[a.ID]:
			rep.Problems = append(rep.Problems, fmt.Sprintf("duplicate id %s", a.ID))
		default:
			seen[a.ID] = true
		}
		if !a.Status.Valid() {
			rep.Problems = append(rep.Problems, fmt.Sprintf("%s: unknown status %q", a.ID, a.Status))
		}
		if a.UpdatedAt < a.CreatedAt {
			rep.Problems = append(rep.Problems, fmt.Sprintf("%s: updatedAt precedes createdAt", a.ID))
		}
	}

	return rep, nil
}
