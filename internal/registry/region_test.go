package registry

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/gerrymander-cli/internal/model"
)

func TestRegions_FindIgnoresCase(t *testing.T) {
	regs := NewRegions()
	regs.Add(&model.Region{Name: "New York"})
	regs.Add(&model.Region{Name: "Texas"})

	for _, name := range []string{"texas", "TEXAS", "Texas", "tExAs"} {
		t.Run(name, func(t *testing.T) {
			got, err := regs.Find(name)
			require.NoError(t, err)
			assert.Equal(t, "Texas", got.Name)
		})
	}

	got, err := regs.Find("new york")
	require.NoError(t, err)
	assert.Equal(t, "New York", got.Name)
}

func TestRegions_FindMissing(t *testing.T) {
	regs := NewRegions()
	regs.Add(&model.Region{Name: "Texas"})

	got, err := regs.Find("Tex")
	assert.Nil(t, got)
	assert.True(t, eris.Is(err, ErrRegionNotFound))
}

func TestRegions_DuplicateKeepsFirst(t *testing.T) {
	regs := NewRegions()
	first := &model.Region{Name: "Ohio", EligibleVoters: 1}
	second := &model.Region{Name: "OHIO", EligibleVoters: 2}
	regs.Add(first)
	regs.Add(second)

	assert.Equal(t, 2, regs.Len())
	got, err := regs.Find("ohio")
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestRegions_AllPreservesOrder(t *testing.T) {
	regs := NewRegions()
	for _, name := range []string{"Utah", "Iowa", "Maine"} {
		regs.Add(&model.Region{Name: name})
	}

	all := regs.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Utah", all[0].Name)
	assert.Equal(t, "Iowa", all[1].Name)
	assert.Equal(t, "Maine", all[2].Name)

	all[0] = nil
	assert.NotNil(t, regs.All()[0])
}

func TestRegions_Merge(t *testing.T) {
	staged := NewRegions()
	staged.Add(&model.Region{Name: "Utah"})
	staged.Add(&model.Region{Name: "Iowa"})

	regs := NewRegions()
	regs.Merge(staged)

	assert.Equal(t, 2, regs.Len())
	_, err := regs.Find("IOWA")
	assert.NoError(t, err)
}

func TestKey(t *testing.T) {
	assert.Equal(t, Key("Texas"), Key("TEXAS"))
	assert.NotEqual(t, Key("Texas"), Key("Texas "))
}
