package ai

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmai/entities"
)

func seeded(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed)) }

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("diag_%d", n)
	}
}

func TestMock_StampsCallerInput(t *testing.T) {
	at := time.Date(2025, time.May, 2, 9, 30, 0, 0, time.UTC)
	c := NewMock(WithDelay(0), WithRand(seeded(1)), WithClock(func() time.Time { return at }), WithIDs(counterIDs()))

	d, err := c.Diagnose(context.Background(), "plot_7", "mem://images/abc")
	require.NoError(t, err)
	assert.Equal(t, "diag_1", d.ID)
	assert.Equal(t, "plot_7", d.PlotID)
	assert.Equal(t, "mem://images/abc", d.ImageURI)
	assert.Equal(t, at, d.CreatedAt)
	for i, rec := range d.Recommendations {
		assert.Equal(t, fmt.Sprintf("rec_%d", i), rec.ID)
		assert.Equal(t, "diag_1", rec.DiagnosisID)
	}
}

func TestMock_SameSeedSameOutcomes(t *testing.T) {
	a := NewMock(WithDelay(0), WithRand(seeded(42)), WithIDs(counterIDs()))
	b := NewMock(WithDelay(0), WithRand(seeded(42)), WithIDs(counterIDs()))

	for i := 0; i < 20; i++ {
		da, err := a.Diagnose(context.Background(), "1", "img")
		require.NoError(t, err)
		db, err := b.Diagnose(context.Background(), "1", "img")
		require.NoError(t, err)
		assert.Equal(t, da.HealthStatus, db.HealthStatus)
		assert.Equal(t, da.Confidence, db.Confidence)
		assert.Equal(t, da.Symptoms, db.Symptoms)
	}
}

func TestMock_OutputsAreValid(t *testing.T) {
	c := NewMock(WithDelay(0), WithRand(seeded(7)))
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		d, err := c.Diagnose(context.Background(), "1", "img")
		require.NoError(t, err)
		assert.True(t, d.Valid(), "invalid diagnosis %+v", d)
		assert.GreaterOrEqual(t, d.Confidence, 0)
		assert.LessOrEqual(t, d.Confidence, 100)
		assert.True(t, d.HealthStatus.Valid())
		assert.NotNil(t, d.Symptoms)
		seen[d.Confidence] = true
	}
	// 200 uniform draws over four templates should reach every one
	assert.Len(t, seen, len(Catalog()))
}

func TestMock_RecommendationIDsArePositional(t *testing.T) {
	c := NewMock(WithDelay(0), WithRand(seeded(3)), WithIDs(counterIDs()))
	d1, err := c.Diagnose(context.Background(), "1", "img")
	require.NoError(t, err)
	d2, err := c.Diagnose(context.Background(), "1", "img")
	require.NoError(t, err)
	require.NotEmpty(t, d1.Recommendations)
	require.NotEmpty(t, d2.Recommendations)
	assert.Equal(t, "rec_0", d1.Recommendations[0].ID)
	assert.Equal(t, "rec_0", d2.Recommendations[0].ID)
	assert.NotEqual(t, d1.ID, d2.ID)
}

func TestMock_WaitsForDelay(t *testing.T) {
	c := NewMock(WithDelay(30*time.Millisecond), WithRand(seeded(1)))
	start := time.Now()
	_, err := c.Diagnose(context.Background(), "1", "img")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestMock_ContextCanceledDuringDelay(t *testing.T) {
	c := NewMock(WithDelay(time.Minute), WithRand(seeded(1)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d, err := c.Diagnose(ctx, "1", "img")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, d)
}

func TestCatalog_IsACopy(t *testing.T) {
	cat := Catalog()
	require.Len(t, cat, 4)
	cat[0].Symptoms[0] = "mutated"
	*cat[0].Disease = "mutated"

	fresh := Catalog()
	assert.Equal(t, "Manchas anaranjadas en hojas", fresh[0].Symptoms[0])
	assert.Equal(t, "Roya Común", *fresh[0].Disease)
}

func TestCatalog_Shapes(t *testing.T) {
	cat := Catalog()
	assert.Nil(t, cat[2].Disease)
	require.NotNil(t, cat[2].Pest)
	assert.Equal(t, "Gusano Cogollero", *cat[2].Pest)
	assert.Equal(t, entities.HealthHealthy, cat[3].HealthStatus)
	assert.Empty(t, cat[3].Symptoms)
	for _, tpl := range cat {
		for _, rec := range tpl.Recommendations {
			assert.True(t, rec.Type.Valid())
			assert.True(t, rec.Priority.Valid())
			assert.NotEmpty(t, rec.Description)
		}
	}
}
