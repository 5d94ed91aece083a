// Package report writes the fairness classification of every loaded region as
// a table, YAML document, or XLSX workbook.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/gerrymander-cli/internal/fairness"
	"github.com/sells-group/gerrymander-cli/internal/model"
)

// Format selects the report encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatXLSX  Format = "xlsx"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatYAML, FormatXLSX:
		return f, nil
	default:
		return "", eris.Errorf("report: unknown format %q", s)
	}
}

// Build classifies every region, keeping the input order.
func Build(regions []*model.Region) []fairness.Result {
	results := make([]fairness.Result, 0, len(regions))
	for _, r := range regions {
		results = append(results, fairness.Classify(r))
	}
	return results
}

// WriteTable writes results as an aligned text table.
func WriteTable(out io.Writer, results []fairness.Result) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "REGION\tDISTRICTS\tGAP\tGERRYMANDERED\tAGAINST\tWASTED_DEM\tWASTED_REP\tELIGIBLE")
	_, _ = fmt.Fprintln(w, "------\t---------\t---\t-------------\t-------\t----------\t----------\t--------")
	for _, r := range results {
		against := "-"
		if r.Gerrymandered {
			against = r.Against.Label()
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%.2f%%\t%s\t%s\t%d\t%d\t%d\n",
			r.Region, r.Districts, r.EfficiencyGap, YesNo(r.Gerrymandered), against,
			r.WastedDemocratic, r.WastedRepublican, r.EligibleVoters,
		)
	}
	return eris.Wrap(w.Flush(), "report: flush table")
}

// WriteYAML writes results as a YAML document under a "regions" key.
func WriteYAML(out io.Writer, results []fairness.Result) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	doc := struct {
		Regions []fairness.Result `yaml:"regions"`
	}{Regions: results}
	if err := enc.Encode(doc); err != nil {
		return eris.Wrap(err, "report: encode yaml")
	}
	return eris.Wrap(enc.Close(), "report: close yaml encoder")
}

var xlsxHeader = []string{
	"Region", "Districts", "Efficiency Gap (%)", "Gerrymandered", "Against",
	"Wasted Democratic", "Wasted Republican", "Total Votes", "Eligible Voters",
}

// WriteXLSX saves results to a single-sheet workbook at path.
func WriteXLSX(path string, results []fairness.Result) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Fairness")
	if err != nil {
		return eris.Wrap(err, "report: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range xlsxHeader {
		header.AddCell().SetString(h)
	}

	for _, r := range results {
		row := sheet.AddRow()
		row.AddCell().SetString(r.Region)
		row.AddCell().SetInt(r.Districts)
		row.AddCell().SetFloat(r.EfficiencyGap)
		row.AddCell().SetString(YesNo(r.Gerrymandered))
		against := ""
		if r.Gerrymandered {
			against = r.Against.Label()
		}
		row.AddCell().SetString(against)
		row.AddCell().SetInt(r.WastedDemocratic)
		row.AddCell().SetInt(r.WastedRepublican)
		row.AddCell().SetInt(r.TotalVotes)
		row.AddCell().SetInt(r.EligibleVoters)
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "report: save %s", path)
	}
	return nil
}

// YesNo formats a flag the way the interactive shell prints it.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
