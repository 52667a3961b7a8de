// Package view derives everything the list screens display from the stored
// collection: filtering, ordering, grouping by status and summary stats. All
// functions are pure; they never touch the store and never mutate their input.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"jobtrack-cli/internal/model"
)

// StatusAll disables status filtering in Controls.
const StatusAll = "all"

// Controls is the user's current view configuration: a free-text query, a
// status filter and a sort mode. The zero value shows everything unsorted;
// use DefaultControls for a ready-to-render configuration.
type Controls struct {
	Query  string
	Status string // StatusAll or a status code
	Sort   model.SortMode
}

func DefaultControls(prefs model.Prefs) Controls {
	return Controls{Status: StatusAll, Sort: prefs.DefaultSort}
}

var companyCollator = collate.New(language.Und)

// Filter returns the applications matching c, ordered by c.Sort. The query
// matches case-insensitively against "company role"; the status filter keeps
// exact matches only. Equal elements keep their stored relative order, so
// repeated derivations are stable.
func Filter(apps []model.Application, c Controls) []model.Application {
	q := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]model.Application, 0, len(apps))
	for _, a := range apps {
		if c.Status != "" && c.Status != StatusAll && string(a.Status) != c.Status {
			continue
		}
		if q != "" {
			hay := strings.ToLower(a.Company + " " + a.Role)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		out = append(out, a)
	}

	switch c.Sort {
	case model.SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	case model.SortCompany:
		sort.SliceStable(out, func(i, j int) bool {
			return companyCollator.CompareString(out[i].Company, out[j].Company) < 0
		})
	case model.SortStatus:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.Compare(string(out[i].Status), string(out[j].Status)) < 0
		})
	case model.SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	}

	return out
}

// Column is one status bucket of a grouped board.
type Column struct {
	Status model.Status
	Apps   []model.Application
}

// Group partitions apps into one column per pipeline status, in canonical
// pipeline order. Every status gets a column even when empty; within a column
// the input order is preserved, so group after Filter keeps the sort. Records
// with an unknown status are dropped from the board.
func Group(apps []model.Application) []Column {
	byStatus := make(map[model.Status][]model.Application, len(model.StatusOrder))
	for _, a := range apps {
		if !a.Status.Valid() {
			continue
		}
		byStatus[a.Status] = append(byStatus[a.Status], a)
	}

	cols := make([]Column, 0, len(model.StatusOrder))
	for _, st := range model.StatusOrder {
		apps := byStatus[st]
		if apps == nil {
			apps = []model.Application{}
		}
		cols = append(cols, Column{Status: st, Apps: apps})
	}
	return cols
}
