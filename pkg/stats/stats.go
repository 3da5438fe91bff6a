// Package stats derives the dashboard and profile figures from store snapshots.
package stats

import (
	"strings"

	"farmai/entities"
)

type HealthCounts struct {
	Healthy  int `json:"healthy"`
	Warning  int `json:"warning"`
	Critical int `json:"critical"`
}

// Alerts counts every diagnosis that is not healthy.
func (h HealthCounts) Alerts() int { return h.Warning + h.Critical }

func TotalArea(plots []entities.Plot) float64 {
	var sum float64
	for _, p := range plots {
		sum += p.Area
	}
	return sum
}

func CountByHealth(diags []entities.Diagnosis) HealthCounts {
	var c HealthCounts
	for _, d := range diags {
		switch d.HealthStatus {
		case entities.HealthHealthy:
			c.Healthy++
		case entities.HealthWarning:
			c.Warning++
		case entities.HealthCritical:
			c.Critical++
		}
	}
	return c
}

// Recent returns up to n of the latest diagnoses, newest first. diags is not modified.
func Recent(diags []entities.Diagnosis, n int) []entities.Diagnosis {
	if n <= 0 {
		return []entities.Diagnosis{}
	}
	start := len(diags) - n
	if start < 0 {
		start = 0
	}
	out := make([]entities.Diagnosis, 0, len(diags)-start)
	for i := len(diags) - 1; i >= start; i-- {
		out = append(out, diags[i])
	}
	return out
}

func FirstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
