package model

// Party identifies one side of a two-party district tally.
type Party string

const (
	PartyDemocratic Party = "democratic"
	PartyRepublican Party = "republican"
)

// Label returns the plural display name of the party.
func (p Party) Label() string {
	switch p {
	case PartyDemocratic:
		return "Democrats"
	case PartyRepublican:
		return "Republicans"
	default:
		return string(p)
	}
}

// District is the two-party vote tally of a single district.
type District struct {
	Democratic int `json:"democratic" yaml:"democratic"`
	Republican int `json:"republican" yaml:"republican"`
}

// Total returns the two-party votes cast in the district.
func (d District) Total() int {
	return d.Democratic + d.Republican
}

// Region is a state (or similar unit) with its districts in ingestion order.
// District numbers shown to users are the slice index plus one.
type Region struct {
	Name           string     `json:"name" yaml:"name"`
	Districts      []District `json:"districts" yaml:"districts"`
	EligibleVoters int        `json:"eligible_voters" yaml:"eligible_voters"`
}

// AddDistrict appends a district tally.
func (r *Region) AddDistrict(democratic, republican int) {
	r.Districts = append(r.Districts, District{Democratic: democratic, Republican: republican})
}

// DistrictCount returns the number of districts in the region.
func (r *Region) DistrictCount() int {
	return len(r.Districts)
}
