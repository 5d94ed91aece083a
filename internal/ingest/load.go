package ingest

import (
	"context"
	"errors"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/gerrymander-cli/internal/model"
	"github.com/sells-group/gerrymander-cli/internal/registry"
	"github.com/sells-group/gerrymander-cli/internal/source"
)

// LineIssue is a source line that was skipped during a load.
type LineIssue struct {
	Source Source `json:"source" yaml:"source"`
	Line   int    `json:"line" yaml:"line"`
	Text   string `json:"text" yaml:"text"`
	Err    error  `json:"-" yaml:"-"`
}

// LoadResult summarizes a LoadSources call.
type LoadResult struct {
	Success       bool        `json:"success" yaml:"success"`
	RegionsLoaded int         `json:"regions_loaded" yaml:"regions_loaded"`
	VotersMerged  int         `json:"voters_merged" yaml:"voters_merged"`
	Unmatched     []string    `json:"unmatched,omitempty" yaml:"unmatched,omitempty"`
	Issues        []LineIssue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// LoadSources reads the district tally source at primaryPath and then the
// eligible-voter source at secondaryPath. Regions are staged and only added
// to the pipeline's registry once both sources have been read completely, so
// any returned error leaves the registry unchanged. Malformed lines and
// unmatched voter records are skipped and reported in the result.
func (p *Pipeline) LoadSources(ctx context.Context, primaryPath, secondaryPath string) (LoadResult, error) {
	staged := New(registry.NewRegions(), p.opts)
	var res LoadResult

	err := staged.readSource(ctx, SourcePrimary, primaryPath, func(row source.Row) error {
		_, err := staged.ingestDistrictRow(row)
		return err
	}, &res)
	if err != nil {
		return LoadResult{}, err
	}

	err = staged.readSource(ctx, SourceSecondary, secondaryPath, func(row source.Row) error {
		name, _, err := staged.ingestVotersRow(row)
		if eris.Is(err, registry.ErrRegionNotFound) {
			zap.L().Warn("ingest: no region for eligible voter record",
				zap.String("region", name),
				zap.Int("line", row.Num),
			)
			res.Unmatched = append(res.Unmatched, name)
			return nil
		}
		if err == nil {
			res.VotersMerged++
		}
		return err
	}, &res)
	if err != nil {
		return LoadResult{}, err
	}

	p.regions.Merge(staged.regions)
	res.Success = true
	res.RegionsLoaded = staged.regions.Len()

	zap.L().Info("ingest: load complete",
		zap.Int("regions", res.RegionsLoaded),
		zap.Int("voters_merged", res.VotersMerged),
		zap.Int("unmatched", len(res.Unmatched)),
		zap.Int("skipped_lines", len(res.Issues)),
	)
	return res, nil
}

// readSource opens path, feeds every non-blank row to fn, and closes the
// source. Malformed records are collected into res instead of stopping the
// read.
func (p *Pipeline) readSource(ctx context.Context, which Source, path string, fn func(source.Row) error, res *LoadResult) error {
	f, err := source.Open(path, p.opts)
	if err != nil {
		return &SourceUnavailableError{Which: which, Path: path, Err: err}
	}
	defer f.Close() //nolint:errcheck

	zap.L().Info("ingest: reading source", zap.String("source", string(which)), zap.String("path", path))

	err = f.Each(ctx, func(row source.Row) error {
		if strings.TrimSpace(row.Line) == "" {
			return nil
		}
		err := fn(row)
		if errors.Is(err, ErrMalformedRecord) {
			zap.L().Warn("ingest: skipping malformed line",
				zap.String("source", string(which)),
				zap.Int("line", row.Num),
				zap.Error(err),
			)
			res.Issues = append(res.Issues, LineIssue{Source: which, Line: row.Num, Text: row.Line, Err: err})
			return nil
		}
		return err
	})
	if err != nil {
		return eris.Wrapf(err, "ingest: read %s source %s", which, path)
	}
	return nil
}

func (p *Pipeline) ingestDistrictRow(row source.Row) (*model.Region, error) {
	if row.Fields != nil {
		return p.IngestDistrictFields(row.Fields)
	}
	return p.IngestDistrictLine(row.Line)
}

func (p *Pipeline) ingestVotersRow(row source.Row) (string, int, error) {
	if row.Fields != nil {
		return p.IngestEligibleVotersFields(row.Fields)
	}
	return p.IngestEligibleVotersLine(row.Line)
}
