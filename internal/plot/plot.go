// Package plot renders per-district two-party vote share as fixed-width text
// bars.
package plot

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sells-group/gerrymander-cli/internal/model"
)

// Width is the number of symbols in a non-empty bar.
const Width = 100

// Default bar symbols.
const (
	DemSymbol = "D"
	RepSymbol = "R"
)

// Bar is the rendered line of one district.
type Bar struct {
	District int    `json:"district" yaml:"district"` // 1-based
	Line     string `json:"line" yaml:"line"`
}

// RenderDistrict returns the default-symbol bar for a district with dem and
// rep votes.
func RenderDistrict(dem, rep int) string {
	return renderBar(dem, rep, DemSymbol, RepSymbol)
}

// DemShare returns the truncated Democratic percentage of a district's votes,
// or false when the district has no votes.
func DemShare(dem, rep int) (int, bool) {
	total := dem + rep
	if total <= 0 {
		return 0, false
	}
	return int(100.0 * float64(dem) / float64(total)), true
}

func renderBar(dem, rep int, demSym, repSym string) string {
	share, ok := DemShare(dem, rep)
	if !ok {
		return ""
	}
	return strings.Repeat(demSym, share) + strings.Repeat(repSym, Width-share)
}

// Options configures a Renderer.
type Options struct {
	DemSymbol string
	RepSymbol string
	Color     bool // style the two segments for terminal output
}

// Renderer draws district bars with configurable symbols.
type Renderer struct {
	demSym   string
	repSym   string
	color    bool
	demStyle lipgloss.Style
	repStyle lipgloss.Style
}

// NewRenderer creates a Renderer. Empty symbols fall back to D and R.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{
		demSym: opts.DemSymbol,
		repSym: opts.RepSymbol,
		color:  opts.Color,
	}
	if r.demSym == "" {
		r.demSym = DemSymbol
	}
	if r.repSym == "" {
		r.repSym = RepSymbol
	}
	r.demStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
	r.repStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	return r
}

// District renders a single district bar.
func (r *Renderer) District(dem, rep int) string {
	if !r.color {
		return renderBar(dem, rep, r.demSym, r.repSym)
	}
	share, ok := DemShare(dem, rep)
	if !ok {
		return ""
	}
	return r.demStyle.Render(strings.Repeat(r.demSym, share)) +
		r.repStyle.Render(strings.Repeat(r.repSym, Width-share))
}

// Plot renders one bar per district of region, in district order.
func (r *Renderer) Plot(region *model.Region) []Bar {
	bars := make([]Bar, 0, len(region.Districts))
	for i, d := range region.Districts {
		bars = append(bars, Bar{District: i + 1, Line: r.District(d.Democratic, d.Republican)})
	}
	return bars
}
