package ribbon

import (
	"testing"

	"github.com/ginjaninja78/menu-files-gen/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cmd builds a visible record; the display name is derived from the id.
func cmd(id, panel, style, split string) types.CommandRecord {
	return types.CommandRecord{
		DisplayName:   "Name " + id,
		InternalID:    id,
		StatusText:    "Status " + id,
		PanelName:     panel,
		ButtonStyle:   style,
		SplitGroupKey: split,
	}
}

func ids(records []types.CommandRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.InternalID
	}
	return out
}

func TestGroup_FirstOccurrenceOrder(t *testing.T) {
	records := []types.CommandRecord{
		cmd("A", "Modify", "Large", ""),
		cmd("B", "Draw", "Large", ""),
		cmd("C", "Modify", "Large", ""),
		cmd("D", "Annotate", "Large", ""),
		cmd("E", "Draw", "Large", ""),
	}

	panels := Group(records)
	require.Len(t, panels, 3)

	assert.Equal(t, "Modify", panels[0].Name)
	assert.Equal(t, "Draw", panels[1].Name)
	assert.Equal(t, "Annotate", panels[2].Name)

	assert.Equal(t, []string{"A", "C"}, ids(panels[0].Records))
	assert.Equal(t, []string{"B", "E"}, ids(panels[1].Records))
}

func TestGroup_SplitClusters(t *testing.T) {
	records := []types.CommandRecord{
		cmd("A", "Draw", "Large", ""),
		cmd("B", "Draw", "Large", "Circle"),
		cmd("C", "Draw", "Large", "Arc"),
		cmd("D", "Draw", "Large", ""),
		cmd("E", "Draw", "Large", "Circle"),
	}

	panels := Group(records)
	require.Len(t, panels, 1)
	clusters := panels[0].Clusters

	// Standalone records form one logical group at the position of the first
	// of them, and each renders on its own.
	require.Len(t, clusters, 4)
	assert.False(t, clusters[0].IsSplit())
	assert.Equal(t, []string{"A"}, ids(clusters[0].Records))
	assert.False(t, clusters[1].IsSplit())
	assert.Equal(t, []string{"D"}, ids(clusters[1].Records))
	assert.Equal(t, "Circle", clusters[2].Key)
	assert.Equal(t, []string{"B", "E"}, ids(clusters[2].Records))
	assert.Equal(t, "Arc", clusters[3].Key)

	assert.Equal(t, []string{"A", "D", "B", "E", "C"}, ids(panels[0].Flatten()))
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, ids(panels[0].Records))
}

func TestGroup_SkipsHidden(t *testing.T) {
	hidden := cmd("H", "Secret", "Large", "")
	hidden.Hidden = true

	panels := Group([]types.CommandRecord{hidden, cmd("A", "Draw", "Large", "")})
	require.Len(t, panels, 1)
	assert.Equal(t, "Draw", panels[0].Name)
}

func TestGroup_Empty(t *testing.T) {
	assert.Empty(t, Group(nil))
	assert.Empty(t, Group([]types.CommandRecord{}))
}

func TestIsCompact(t *testing.T) {
	assert.True(t, IsCompact("SmallWithText"))
	assert.True(t, IsCompact("SmallIcon"))
	assert.True(t, IsCompact("VerySmall"))
	assert.False(t, IsCompact("small"))
	assert.False(t, IsCompact("LargeWithText"))
	assert.False(t, IsCompact(""))
}
