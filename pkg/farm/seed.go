// Package farm holds the startup state shared by every store backend.
package farm

import (
	"time"

	"farmai/entities"
)

type SeedData struct {
	Plots []entities.Plot
	User  entities.User
}

// Seed returns the fixed startup defaults: one example plot, one profile, no diagnoses.
func Seed(now time.Time) SeedData {
	created := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	return SeedData{
		Plots: []entities.Plot{{
			ID:        "1",
			Name:      "Lote Maíz Norte",
			CropType:  "Maíz",
			Area:      5.5,
			CreatedAt: created,
			UpdatedAt: created,
		}},
		User: entities.User{
			ID:        "1",
			Name:      "Santiago Fuentes",
			Email:     "santiago@farm.com",
			Farm:      "Farm Verde",
			Location:  "Buenos Aires, Argentina",
			CreatedAt: now,
		},
	}
}
