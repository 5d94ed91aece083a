package fairness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/gerrymander-cli/internal/model"
)

func regionOf(name string, tallies ...[2]int) *model.Region {
	r := &model.Region{Name: name}
	for _, t := range tallies {
		r.AddDistrict(t[0], t[1])
	}
	return r
}

func TestWastedVotes_Texas(t *testing.T) {
	r := regionOf("Texas", [2]int{600, 400}, [2]int{300, 700}, [2]int{500, 500})

	w := WastedVotes(r)
	assert.Equal(t, 99+300+500, w.Democratic)
	assert.Equal(t, 400+199+0, w.Republican)
	assert.Equal(t, 3000, w.Total)
}

func TestWastedVotes_TieIsRepublicanWin(t *testing.T) {
	w := WastedVotes(regionOf("Tie", [2]int{5, 5}))

	// Democrats lose the tie and waste every vote.
	assert.Equal(t, 5, w.Democratic)
	assert.Equal(t, 0, w.Republican)
	assert.Equal(t, 10, w.Total)
}

func TestWastedVotes_SingleDistrict(t *testing.T) {
	tests := []struct {
		name     string
		dem, rep int
		wantDem  int
		wantRep  int
	}{
		{"dem landslide", 100, 0, 49, 0},
		{"rep landslide", 0, 100, 0, 49},
		{"dem narrow", 51, 49, 0, 49},
		{"rep narrow", 49, 51, 49, 0},
		{"odd total", 2, 1, 0, 1},
		{"one vote", 1, 0, 0, 0},
		{"empty", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WastedVotes(regionOf("x", [2]int{tt.dem, tt.rep}))
			assert.Equal(t, tt.wantDem, w.Democratic)
			assert.Equal(t, tt.wantRep, w.Republican)
			assert.Equal(t, tt.dem+tt.rep, w.Total)
		})
	}
}

func TestWastedVotes_Bounded(t *testing.T) {
	for d := 0; d <= 40; d++ {
		for r := 0; r <= 40; r++ {
			if d+r == 0 {
				continue
			}
			w := WastedVotes(regionOf("x", [2]int{d, r}))
			require.GreaterOrEqual(t, w.Democratic, 0, "d=%d r=%d", d, r)
			require.GreaterOrEqual(t, w.Republican, 0, "d=%d r=%d", d, r)
			require.LessOrEqual(t, w.Democratic+w.Republican, d+r, "d=%d r=%d", d, r)
		}
	}
}

func TestClassify_Texas(t *testing.T) {
	r := regionOf("Texas", [2]int{600, 400}, [2]int{300, 700}, [2]int{500, 500})
	r.EligibleVoters = 1000000

	res := Classify(r)
	assert.Equal(t, "Texas", res.Region)
	assert.True(t, res.Gerrymandered)
	assert.Equal(t, model.PartyDemocratic, res.Against)
	assert.InDelta(t, 10.0, res.EfficiencyGap, 1e-9)
	assert.Equal(t, 899, res.WastedDemocratic)
	assert.Equal(t, 599, res.WastedRepublican)
	assert.Equal(t, 3000, res.TotalVotes)
	assert.Equal(t, 3, res.Districts)
	assert.Equal(t, 1000000, res.EligibleVoters)
	assert.False(t, res.Degenerate)
}

func TestClassify_Threshold(t *testing.T) {
	tests := []struct {
		name    string
		dems    [3]int
		wantGap float64
		want    bool
	}{
		{"exactly seven", [3]int{21, 21, 21}, 7.0, true},
		{"just under", [3]int{22, 21, 21}, 100.0 * 19 / 300, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := regionOf("x",
				[2]int{tt.dems[0], 100 - tt.dems[0]},
				[2]int{tt.dems[1], 100 - tt.dems[1]},
				[2]int{tt.dems[2], 100 - tt.dems[2]},
			)
			res := Classify(r)
			assert.InDelta(t, tt.wantGap, res.EfficiencyGap, 1e-9)
			assert.Equal(t, tt.want, res.Gerrymandered)
			assert.Equal(t, model.PartyRepublican, res.Against)
		})
	}
}

func TestClassify_FewDistrictsNeverGerrymandered(t *testing.T) {
	for _, r := range []*model.Region{
		regionOf("one", [2]int{100, 0}),
		regionOf("two", [2]int{100, 0}, [2]int{100, 0}),
	} {
		t.Run(r.Name, func(t *testing.T) {
			res := Classify(r)
			assert.Greater(t, res.EfficiencyGap, GapThreshold)
			assert.False(t, res.Gerrymandered)
		})
	}
}

func TestClassify_SwapIsSymmetric(t *testing.T) {
	r := regionOf("a", [2]int{600, 400}, [2]int{300, 700}, [2]int{800, 200}, [2]int{450, 550})
	swapped := &model.Region{Name: "b"}
	for _, d := range r.Districts {
		swapped.AddDistrict(d.Republican, d.Democratic)
	}

	res := Classify(r)
	sres := Classify(swapped)

	assert.InDelta(t, res.EfficiencyGap, sres.EfficiencyGap, 1e-9)
	assert.Equal(t, res.WastedDemocratic, sres.WastedRepublican)
	assert.Equal(t, res.WastedRepublican, sres.WastedDemocratic)
	assert.NotEqual(t, res.Against, sres.Against)
}

func TestClassify_EqualWasteFavorsDemocrats(t *testing.T) {
	// 1 + 0 wasted on each side.
	res := Classify(regionOf("even", [2]int{2, 1}, [2]int{1, 2}))
	assert.Equal(t, res.WastedDemocratic, res.WastedRepublican)
	assert.Equal(t, model.PartyRepublican, res.Against)
	assert.InDelta(t, 0.0, res.EfficiencyGap, 1e-9)
}

func TestClassify_Degenerate(t *testing.T) {
	for _, r := range []*model.Region{
		regionOf("empty"),
		regionOf("zeros", [2]int{0, 0}, [2]int{0, 0}, [2]int{0, 0}),
	} {
		t.Run(r.Name, func(t *testing.T) {
			res := Classify(r)
			assert.True(t, res.Degenerate)
			assert.False(t, res.Gerrymandered)
			assert.Zero(t, res.EfficiencyGap)
			assert.Zero(t, res.TotalVotes)
		})
	}
}
