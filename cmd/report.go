package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/gerrymander-cli/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Classify every loaded state and write a report",
	Long:  "Loads both sources and writes the efficiency gap classification of every state as a table, YAML document, or XLSX workbook.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		districts, voters, err := sourcePaths(cmd)
		if err != nil {
			return err
		}

		formatName, _ := cmd.Flags().GetString("format")
		if formatName == "" {
			formatName = cfg.Report.Format
		}
		format, err := report.ParseFormat(formatName)
		if err != nil {
			return err
		}
		outPath, _ := cmd.Flags().GetString("out")
		if format == report.FormatXLSX && outPath == "" {
			return eris.New("report: --out is required for xlsx")
		}

		sess, err := loadSession(cmd.Context(), districts, voters)
		if err != nil {
			return err
		}
		results := report.Build(sess.Regions())

		if format == report.FormatXLSX {
			if err := report.WriteXLSX(outPath, results); err != nil {
				return err
			}
			zap.L().Info("report written", zap.String("path", outPath), zap.Int("regions", len(results)))
			return nil
		}

		out := cmd.OutOrStdout()
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return eris.Wrapf(err, "report: create %s", outPath)
			}
			defer f.Close() //nolint:errcheck
			out = f
		}

		if format == report.FormatYAML {
			return report.WriteYAML(out, results)
		}
		return report.WriteTable(out, results)
	},
}

func init() {
	addSourceFlags(reportCmd)
	reportCmd.Flags().String("format", "", "table, yaml, or xlsx (default report.format)")
	reportCmd.Flags().String("out", "", "output path (default stdout; required for xlsx)")
	rootCmd.AddCommand(reportCmd)
}
