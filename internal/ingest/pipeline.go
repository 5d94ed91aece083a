// Package ingest parses district tally and eligible-voter sources into the
// region registry.
package ingest

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/gerrymander-cli/internal/model"
	"github.com/sells-group/gerrymander-cli/internal/registry"
	"github.com/sells-group/gerrymander-cli/internal/source"
)

// districtGroup is the number of fields per district in a tally line: a
// label that is skipped, then the Democratic and Republican votes.
const districtGroup = 3

// Pipeline feeds source lines into a region registry.
type Pipeline struct {
	regions *registry.Regions
	opts    source.Options
}

// New creates a pipeline writing into regions.
func New(regions *registry.Regions, opts source.Options) *Pipeline {
	return &Pipeline{regions: regions, opts: opts}
}

// Regions returns the registry the pipeline writes into.
func (p *Pipeline) Regions() *registry.Regions {
	return p.regions
}

// Ingested reports whether any region has been ingested yet.
func (p *Pipeline) Ingested() bool {
	return p.regions.Len() > 0
}

// IngestDistrictLine parses a tally line of the form
// Name,<label>,Dem1,Rep1,<label>,Dem2,Rep2,... and appends the new region.
func (p *Pipeline) IngestDistrictLine(line string) (*model.Region, error) {
	return p.IngestDistrictFields(source.Split(line, source.Delimiter))
}

// IngestDistrictFields is IngestDistrictLine for an already tokenized line.
func (p *Pipeline) IngestDistrictFields(fields []string) (*model.Region, error) {
	if len(fields) == 0 {
		return nil, &MalformedRecordError{Field: 0, Reason: "missing region name"}
	}
	if rest := len(fields) - 1; rest%districtGroup != 0 {
		return nil, &MalformedRecordError{
			Field:  len(fields) - 1,
			Value:  fields[len(fields)-1],
			Reason: "incomplete district group",
		}
	}

	region := &model.Region{Name: fields[0]}
	for i := 1; i < len(fields); i += districtGroup {
		dem, err := parseCount(fields, i+1)
		if err != nil {
			return nil, err
		}
		rep, err := parseCount(fields, i+2)
		if err != nil {
			return nil, err
		}
		region.AddDistrict(dem, rep)
	}

	p.regions.Add(region)
	zap.L().Info("ingest: region loaded",
		zap.String("region", region.Name),
		zap.Int("districts", region.DistrictCount()),
	)
	return region, nil
}

// IngestEligibleVotersLine parses a Name,Count line and stores the count on
// the matching region. It returns an error matching
// registry.ErrRegionNotFound when no region has that name.
func (p *Pipeline) IngestEligibleVotersLine(line string) (string, int, error) {
	return p.IngestEligibleVotersFields(source.Split(line, source.Delimiter))
}

// IngestEligibleVotersFields is IngestEligibleVotersLine for an already
// tokenized line.
func (p *Pipeline) IngestEligibleVotersFields(fields []string) (string, int, error) {
	if len(fields) < 2 {
		return "", 0, &MalformedRecordError{Field: 1, Reason: "missing eligible voter count"}
	}
	name := fields[0]
	count, err := parseCount(fields, 1)
	if err != nil {
		return name, 0, err
	}

	region, err := p.regions.Find(name)
	if err != nil {
		return name, count, err
	}
	region.EligibleVoters = count

	zap.L().Info("ingest: eligible voters merged",
		zap.String("region", name),
		zap.Int("eligible_voters", count),
	)
	return name, count, nil
}

// parseCount parses fields[i] as a non-negative integer. Surrounding
// whitespace is ignored.
func parseCount(fields []string, i int) (int, error) {
	raw := fields[i]
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &MalformedRecordError{Field: i, Value: raw, Reason: "not an integer"}
	}
	if v < 0 {
		return 0, &MalformedRecordError{Field: i, Value: raw, Reason: "negative count"}
	}
	return v, nil
}
