// Package session holds the state of one interactive analysis session: the
// loaded regions, whether a load has succeeded, and the chosen region.
package session

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/gerrymander-cli/internal/fairness"
	"github.com/sells-group/gerrymander-cli/internal/ingest"
	"github.com/sells-group/gerrymander-cli/internal/model"
	"github.com/sells-group/gerrymander-cli/internal/plot"
	"github.com/sells-group/gerrymander-cli/internal/registry"
	"github.com/sells-group/gerrymander-cli/internal/source"
)

var (
	// ErrAlreadyLoaded is returned by Load once a load has succeeded.
	ErrAlreadyLoaded = eris.New("data already loaded")
	// ErrNotLoaded is returned by queries made before any data is loaded.
	ErrNotLoaded = eris.New("no data loaded")
	// ErrNoRegion is returned by Stats and Plot before a region is chosen.
	ErrNoRegion = eris.New("no region chosen")
)

// Options configures a Session.
type Options struct {
	Source source.Options
	Plot   plot.Options
}

// Session is single-user, in-memory state. It is not safe for concurrent use.
type Session struct {
	id       string
	pipeline *ingest.Pipeline
	renderer *plot.Renderer
	loaded   bool
	chosen   *model.Region
}

// New creates an empty session.
func New(opts Options) *Session {
	s := &Session{
		id:       uuid.New().String(),
		pipeline: ingest.New(registry.NewRegions(), opts.Source),
		renderer: plot.NewRenderer(opts.Plot),
	}
	zap.L().Debug("session: started", zap.String("session_id", s.id))
	return s
}

// ID returns the session identifier used in log lines.
func (s *Session) ID() string {
	return s.id
}

// Loaded reports whether a load has completed successfully.
func (s *Session) Loaded() bool {
	return s.loaded
}

// HasRegions reports whether any region has been ingested.
func (s *Session) HasRegions() bool {
	return s.pipeline.Ingested()
}

// Chosen returns the region picked by the last successful Search, or nil.
func (s *Session) Chosen() *model.Region {
	return s.chosen
}

// Regions returns every loaded region in ingestion order.
func (s *Session) Regions() []*model.Region {
	return s.pipeline.Regions().All()
}

// Load reads the district and eligible-voter sources. Only one load may
// succeed per session; a failed load can be retried.
func (s *Session) Load(ctx context.Context, districtsPath, votersPath string) (ingest.LoadResult, error) {
	if s.loaded {
		return ingest.LoadResult{}, ErrAlreadyLoaded
	}

	res, err := s.pipeline.LoadSources(ctx, districtsPath, votersPath)
	if err != nil {
		return res, err
	}
	s.loaded = true

	zap.L().Info("session: data loaded",
		zap.String("session_id", s.id),
		zap.Int("regions", res.RegionsLoaded),
	)
	return res, nil
}

// Search chooses the region whose name matches name ignoring case. A miss
// keeps the previous choice.
func (s *Session) Search(name string) (*model.Region, error) {
	if !s.HasRegions() {
		return nil, ErrNotLoaded
	}
	region, err := s.pipeline.Regions().Find(name)
	if err != nil {
		return nil, err
	}
	s.chosen = region
	return region, nil
}

// Stats classifies the chosen region.
func (s *Session) Stats() (fairness.Result, error) {
	region, err := s.current()
	if err != nil {
		return fairness.Result{}, err
	}
	return fairness.Classify(region), nil
}

// Plot renders the chosen region's district bars.
func (s *Session) Plot() ([]plot.Bar, error) {
	region, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.renderer.Plot(region), nil
}

func (s *Session) current() (*model.Region, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	if s.chosen == nil {
		return nil, ErrNoRegion
	}
	return s.chosen, nil
}
