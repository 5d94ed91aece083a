// Package fairness computes wasted votes and the efficiency gap of a region's
// districting plan.
package fairness

import (
	"math"

	"go.uber.org/zap"

	"github.com/sells-group/gerrymander-cli/internal/model"
)

// Classification policy. These are fixed, not configuration.
const (
	GapThreshold = 7.0 // efficiency gap percentage at or above which a plan is disproportionate
	MinDistricts = 3   // the gap is not meaningful below this many districts
)

// Wasted holds the wasted-vote totals of a region.
type Wasted struct {
	Democratic int `json:"democratic" yaml:"democratic"`
	Republican int `json:"republican" yaml:"republican"`
	Total      int `json:"total" yaml:"total"`
}

// Result is the fairness classification of a region.
type Result struct {
	Region           string      `json:"region" yaml:"region"`
	Gerrymandered    bool        `json:"gerrymandered" yaml:"gerrymandered"`
	Against          model.Party `json:"against" yaml:"against"`
	EfficiencyGap    float64     `json:"efficiency_gap" yaml:"efficiency_gap"`
	WastedDemocratic int         `json:"wasted_democratic" yaml:"wasted_democratic"`
	WastedRepublican int         `json:"wasted_republican" yaml:"wasted_republican"`
	TotalVotes       int         `json:"total_votes" yaml:"total_votes"`
	Districts        int         `json:"districts" yaml:"districts"`
	EligibleVoters   int         `json:"eligible_voters" yaml:"eligible_voters"`
	Degenerate       bool        `json:"degenerate,omitempty" yaml:"degenerate,omitempty"`
}

// WastedVotes sums wasted votes over every district of region.
//
// A district is won by the Democrats only when they have strictly more votes;
// a tie counts as a Republican win. The winner wastes its votes above
// (d+r)/2+1, never fewer than zero, and the loser wastes all of its votes.
func WastedVotes(region *model.Region) Wasted {
	var w Wasted
	for _, d := range region.Districts {
		dw, rw := districtWaste(d)
		w.Democratic += dw
		w.Republican += rw
		w.Total += d.Total()
	}
	return w
}

func districtWaste(d model.District) (dem, rep int) {
	threshold := d.Total()/2 + 1
	if d.Democratic > d.Republican {
		return surplus(d.Democratic, threshold), d.Republican
	}
	return d.Democratic, surplus(d.Republican, threshold)
}

// surplus is zero for a tied or empty district, where the winning side falls
// one short of the threshold.
func surplus(votes, threshold int) int {
	return max(votes-threshold, 0)
}

// Classify computes the efficiency gap of region and decides whether the plan
// is disproportionate. A region with no votes is reported as Degenerate and
// never disproportionate.
func Classify(region *model.Region) Result {
	w := WastedVotes(region)
	res := Result{
		Region:           region.Name,
		Against:          disadvantaged(w),
		WastedDemocratic: w.Democratic,
		WastedRepublican: w.Republican,
		TotalVotes:       w.Total,
		Districts:        region.DistrictCount(),
		EligibleVoters:   region.EligibleVoters,
	}

	if w.Total == 0 {
		zap.L().Debug("fairness: region has no votes", zap.String("region", region.Name))
		res.Degenerate = true
		return res
	}

	res.EfficiencyGap = 100 * math.Abs(float64(w.Democratic-w.Republican)) / float64(w.Total)
	res.Gerrymandered = res.EfficiencyGap >= GapThreshold && res.Districts >= MinDistricts
	return res
}

// disadvantaged returns the party with more wasted votes; equal totals name
// the Republicans.
func disadvantaged(w Wasted) model.Party {
	if w.Democratic > w.Republican {
		return model.PartyDemocratic
	}
	return model.PartyRepublican
}
