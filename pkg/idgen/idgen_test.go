package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Prefix(t *testing.T) {
	id := New(PlotPrefix)
	require.True(t, strings.HasPrefix(id, "plot_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "plot_"))
	assert.NoError(t, err)
}

func TestNew_NoPrefix(t *testing.T) {
	_, err := uuid.Parse(New(""))
	assert.NoError(t, err)
}

func TestFunc_Unique(t *testing.T) {
	gen := Func(DiagnosisPrefix)
	seen := map[string]struct{}{}
	for i := 0; i < 1000; i++ {
		id := gen()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
