package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthStatus_Valid(t *testing.T) {
	for _, h := range []HealthStatus{HealthHealthy, HealthWarning, HealthCritical} {
		assert.True(t, h.Valid(), h)
	}
	assert.False(t, HealthStatus("dead").Valid())
	assert.False(t, HealthStatus("").Valid())
}

func TestDiagnosis_ValidConfidenceBounds(t *testing.T) {
	d := Diagnosis{HealthStatus: HealthWarning}
	for _, c := range []int{0, 50, 100} {
		d.Confidence = c
		assert.True(t, d.Valid(), c)
	}
	for _, c := range []int{-1, 101} {
		d.Confidence = c
		assert.False(t, d.Valid(), c)
	}
}

func TestPlotPatch_Apply(t *testing.T) {
	p := Plot{ID: "1", Name: "Lote Maíz Norte", CropType: "Maíz", Area: 5.5}
	area := 9.9
	got := PlotPatch{Area: &area}.Apply(p)
	assert.Equal(t, Plot{ID: "1", Name: "Lote Maíz Norte", CropType: "Maíz", Area: 9.9}, got)
	assert.Equal(t, 5.5, p.Area)
	assert.True(t, PlotPatch{}.Empty())
	assert.False(t, PlotPatch{Area: &area}.Empty())
}

func TestDiagnosis_CloneSharesNothing(t *testing.T) {
	disease, cost := "Roya", 10.0
	d := Diagnosis{
		Disease:         &disease,
		Symptoms:        []string{"a"},
		Recommendations: []Recommendation{{ID: "rec_0", Cost: &cost}},
	}
	c := d.Clone()
	*c.Disease = "x"
	c.Symptoms[0] = "x"
	*c.Recommendations[0].Cost = 99
	assert.Equal(t, "Roya", *d.Disease)
	assert.Equal(t, "a", d.Symptoms[0])
	assert.Equal(t, 10.0, *d.Recommendations[0].Cost)

	empty := Diagnosis{Symptoms: []string{}}.Clone()
	assert.NotNil(t, empty.Symptoms)
}
