package model

import (
	"fmt"
	"strings"
)

// Status is an application's position in the hiring pipeline.
type Status string

const (
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
)

// StatusOrder is the canonical pipeline order used for grouped displays.
var StatusOrder = []Status{StatusApplied, StatusInterview, StatusOffer, StatusRejected}

var statusLabels = map[Status]string{
	StatusApplied:   "Applied",
	StatusInterview: "Interview",
	StatusOffer:     "Offer",
	StatusRejected:  "Rejected",
}

func (s Status) Label() string {
	if lbl, ok := statusLabels[s]; ok {
		return lbl
	}
	return string(s)
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func ParseStatus(s string) (Status, error) {
	v := Status(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("invalid status: %q (expected applied|interview|offer|rejected)", s)
	}
	return v, nil
}

// Application is one tracked job application.
//
// CreatedAt/UpdatedAt are unix milliseconds; UpdatedAt is refreshed on every
// field mutation and never precedes CreatedAt.
type Application struct {
	ID      string `json:"id"`
	Company string `json:"company"`
	Role    string `json:"role"`
	Status  Status `json:"status"`

	AppliedDate string `json:"appliedDate,omitempty"` // YYYY-MM-DD
	Link        string `json:"link,omitempty"`
	Notes       string `json:"notes,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

type Density string

const (
	DensityComfort Density = "comfort"
	DensityCompact Density = "compact"
)

func ParseDensity(s string) (Density, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "comfort":
		return DensityComfort, nil
	case "compact":
		return DensityCompact, nil
	default:
		return "", fmt.Errorf("invalid density: %q (expected comfort|compact)", s)
	}
}

// SortMode selects the display order of the tracker list.
type SortMode string

const (
	SortNewest  SortMode = "newest"
	SortOldest  SortMode = "oldest"
	SortCompany SortMode = "company"
	SortStatus  SortMode = "status"
)

func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "newest":
		return SortNewest, nil
	case "oldest":
		return SortOldest, nil
	case "company":
		return SortCompany, nil
	case "status":
		return SortStatus, nil
	default:
		return "", fmt.Errorf("invalid sort mode: %q (expected newest|oldest|company|status)", s)
	}
}

// Prefs are persisted user settings independent of any single application.
type Prefs struct {
	Density     Density  `json:"density"`
	DefaultSort SortMode `json:"defaultSort"`
}

func DefaultPrefs() Prefs {
	return Prefs{Density: DensityComfort, DefaultSort: SortNewest}
}

// Normalize fills missing or unknown fields with defaults. Loaded prefs may come
// from older files; unknown values degrade to the default rather than erroring.
func (p Prefs) Normalize() Prefs {
	def := DefaultPrefs()
	if _, err := ParseDensity(string(p.Density)); err != nil {
		p.Density = def.Density
	}
	if _, err := ParseSortMode(string(p.DefaultSort)); err != nil {
		p.DefaultSort = def.DefaultSort
	}
	return p
}
