package store

import (
	"time"

	"jobtrack-cli/internal/model"
)

// SeedDemo replaces the collection with a small demo pipeline, mirroring the
// "load demo data" action in the UI. Returns the seeded records.
func (s Store) SeedDemo() ([]model.Application, error) {
	now := NowMillis()
	day := int64(24 * time.Hour / time.Millisecond)

	demo := []model.Application{
		{
			ID:        NewID(),
			Company:   "Canva",
			Role:      "Junior Frontend Developer",
			Status:    model.StatusInterview,
			Notes:     "Prepare accessibility examples + explain state handling.",
			CreatedAt: now - 2*day,
			UpdatedAt: now - 2*day,
		},
		{
			ID:        NewID(),
			Company:   "Atlassian",
			Role:      "Software Engineer (Grad)",
			Status:    model.StatusApplied,
			Link:      "https://example.com",
			CreatedAt: now - 5*day,
			UpdatedAt: now - 5*day,
		},
		{
			ID:        NewID(),
			Company:   "Shopify",
			Role:      "Frontend Engineer (Junior)",
			Status:    model.StatusOffer,
			Notes:     "Document tradeoffs + follow up on team fit call.",
			CreatedAt: now - 10*day,
			UpdatedAt: now - 10*day,
		},
	}

	if err := s.SaveApps(demo); err != nil {
		return nil, err
	}
	return demo, nil
}
