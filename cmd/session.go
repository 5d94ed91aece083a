package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/gerrymander-cli/internal/fairness"
	"github.com/sells-group/gerrymander-cli/internal/ingest"
	"github.com/sells-group/gerrymander-cli/internal/plot"
	"github.com/sells-group/gerrymander-cli/internal/report"
	"github.com/sells-group/gerrymander-cli/internal/session"
	"github.com/sells-group/gerrymander-cli/internal/source"
)

// newSession builds a session from the loaded configuration.
func newSession() *session.Session {
	return session.New(session.Options{
		Source: source.Options{
			Encoding:   cfg.Sources.Encoding,
			SheetIndex: cfg.Sources.SheetIndex,
		},
		Plot: plot.Options{
			DemSymbol: cfg.Plot.DemSymbol,
			RepSymbol: cfg.Plot.RepSymbol,
			Color:     cfg.Plot.Color,
		},
	})
}

// addSourceFlags registers --districts and --voters on cmd.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("districts", "", "path to the district tally file (default sources.districts)")
	cmd.Flags().String("voters", "", "path to the eligible voters file (default sources.voters)")
}

// sourcePaths returns the input paths from flags, falling back to config.
func sourcePaths(cmd *cobra.Command) (string, string, error) {
	districts, _ := cmd.Flags().GetString("districts")
	voters, _ := cmd.Flags().GetString("voters")
	if districts == "" {
		districts = cfg.Sources.Districts
	}
	if voters == "" {
		voters = cfg.Sources.Voters
	}
	if districts == "" || voters == "" {
		return "", "", eris.New("both --districts and --voters are required (or sources.districts / sources.voters)")
	}
	return districts, voters, nil
}

// loadSession creates a session and loads both sources into it.
func loadSession(ctx context.Context, districts, voters string) (*session.Session, error) {
	sess := newSession()
	if _, err := sess.Load(ctx, districts, voters); err != nil {
		return nil, eris.Wrap(err, "load sources")
	}
	return sess, nil
}

// sourceFailure returns the shell message for an unavailable source, or ""
// when err is not one.
func sourceFailure(err error) string {
	var sue *ingest.SourceUnavailableError
	if !errors.As(err, &sue) {
		return ""
	}
	if sue.Which == ingest.SourcePrimary {
		return "Invalid first file, try again."
	}
	return "Invalid second file, try again."
}

func printStats(out io.Writer, res fairness.Result) {
	_, _ = fmt.Fprintf(out, "Gerrymandered: %s\n", report.YesNo(res.Gerrymandered))
	if res.Gerrymandered {
		_, _ = fmt.Fprintf(out, "Gerrymandered against: %s\n", res.Against.Label())
		_, _ = fmt.Fprintf(out, "Efficiency Factor: %.6g%%\n", res.EfficiencyGap)
	}
	_, _ = fmt.Fprintf(out, "Wasted Democratic votes: %d\n", res.WastedDemocratic)
	_, _ = fmt.Fprintf(out, "Wasted Republican votes: %d\n", res.WastedRepublican)
	_, _ = fmt.Fprintf(out, "Eligible voters: %d\n", res.EligibleVoters)
}

func printPlot(out io.Writer, bars []plot.Bar) {
	for _, b := range bars {
		_, _ = fmt.Fprintf(out, "District: %d\n", b.District)
		_, _ = fmt.Fprintln(out, b.Line)
	}
}

func printIssues(out io.Writer, res ingest.LoadResult) {
	if len(res.Issues) > 0 {
		_, _ = fmt.Fprintf(out, "Skipped %d malformed line(s).\n", len(res.Issues))
	}
	if len(res.Unmatched) > 0 {
		_, _ = fmt.Fprintf(out, "No state found for: %s\n", strings.Join(res.Unmatched, ", "))
	}
}
