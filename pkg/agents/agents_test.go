package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/models"
)

func TestBuildRegistry(t *testing.T) {
	reg, err := BuildRegistry(nil)
	require.NoError(t, err)
	assert.Equal(t, 12, reg.Len())

	for _, ids := range [][]agent.ID{agent.P0IDs, agent.P1IDs, agent.P2IDs} {
		for _, id := range ids {
			assert.True(t, reg.Has(id), "missing agent %s", id)
		}
	}

	// Layer wiring sanity: one agent per layer slot.
	p0, err := reg.Get(agent.Q1PainScanner)
	require.NoError(t, err)
	assert.Equal(t, models.LayerP0, p0.Layer())

	p1, err := reg.Get(agent.Q1PainAssessor)
	require.NoError(t, err)
	assert.Equal(t, models.LayerP1, p1.Layer())

	p2, err := reg.Get(agent.Q1PainConnector)
	require.NoError(t, err)
	assert.Equal(t, models.LayerP2, p2.Layer())
}
