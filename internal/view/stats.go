package view

import (
	"sort"
	"strings"

	"jobtrack-cli/internal/model"
)

// Stats summarizes the whole collection. It is always computed over the full
// stored set, independent of any active filter, so the numbers the user sees
// do not shrink while searching.
type Stats struct {
	Total    int                  `json:"total"`
	ByStatus map[model.Status]int `json:"byStatus"`
}

func ComputeStats(apps []model.Application) Stats {
	st := Stats{Total: len(apps), ByStatus: make(map[model.Status]int, len(model.StatusOrder))}
	for _, s := range model.StatusOrder {
		st.ByStatus[s] = 0
	}
	for _, a := range apps {
		st.ByStatus[a.Status]++
	}
	return st
}

// MaxCount returns the largest per-status count, used to scale bar charts.
func (s Stats) MaxCount() int {
	max := 0
	for _, st := range model.StatusOrder {
		if s.ByStatus[st] > max {
			max = s.ByStatus[st]
		}
	}
	return max
}

// CompanyCount is one row of the "most applied-to companies" ranking.
type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// TopCompanies ranks companies by application count, descending, and returns
// at most n rows. Ties break alphabetically so the ranking is deterministic.
func TopCompanies(apps []model.Application, n int) []CompanyCount {
	counts := map[string]int{}
	for _, a := range apps {
		name := strings.TrimSpace(a.Company)
		if name == "" {
			continue
		}
		counts[name]++
	}

	out := make([]CompanyCount, 0, len(counts))
	for name, c := range counts {
		out = append(out, CompanyCount{Company: name, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Company < out[j].Company
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
