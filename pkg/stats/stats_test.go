package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"farmai/entities"
)

func diag(id string, h entities.HealthStatus) entities.Diagnosis {
	return entities.Diagnosis{ID: id, HealthStatus: h}
}

func TestTotalArea(t *testing.T) {
	assert.Equal(t, 0.0, TotalArea(nil))
	assert.InDelta(t, 8.7, TotalArea([]entities.Plot{{Area: 5.5}, {Area: 3.2}}), 1e-9)
}

func TestCountByHealth(t *testing.T) {
	c := CountByHealth([]entities.Diagnosis{
		diag("a", entities.HealthHealthy),
		diag("b", entities.HealthWarning),
		diag("c", entities.HealthCritical),
		diag("d", entities.HealthCritical),
	})
	assert.Equal(t, HealthCounts{Healthy: 1, Warning: 1, Critical: 2}, c)
	assert.Equal(t, 3, c.Alerts())
}

func TestRecent(t *testing.T) {
	ds := []entities.Diagnosis{diag("a", ""), diag("b", ""), diag("c", ""), diag("d", "")}

	got := Recent(ds, 3)
	assert.Equal(t, []string{"d", "c", "b"}, ids(got))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(ds))

	assert.Equal(t, []string{"b", "a"}, ids(Recent(ds[:2], 5)))
	assert.Empty(t, Recent(ds, 0))
	assert.Empty(t, Recent(nil, 3))
}

func TestFirstName(t *testing.T) {
	assert.Equal(t, "Santiago", FirstName("Santiago Fuentes"))
	assert.Equal(t, "Ana", FirstName("  Ana "))
	assert.Equal(t, "", FirstName(""))
}

func ids(ds []entities.Diagnosis) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.ID
	}
	return out
}
