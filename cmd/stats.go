package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the efficiency gap classification of one state",
	RunE: func(cmd *cobra.Command, _ []string) error {
		districts, voters, err := sourcePaths(cmd)
		if err != nil {
			return err
		}
		region, _ := cmd.Flags().GetString("region")

		sess, err := loadSession(cmd.Context(), districts, voters)
		if err != nil {
			return err
		}
		if _, err := sess.Search(region); err != nil {
			return eris.Wrapf(err, "stats: search %q", region)
		}

		res, err := sess.Stats()
		if err != nil {
			return eris.Wrap(err, "stats")
		}

		zap.L().Debug("stats computed",
			zap.String("region", res.Region),
			zap.Float64("efficiency_gap", res.EfficiencyGap),
			zap.Bool("degenerate", res.Degenerate),
		)
		printStats(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	addSourceFlags(statsCmd)
	statsCmd.Flags().String("region", "", "state name, case-insensitive (required)")
	_ = statsCmd.MarkFlagRequired("region")
	rootCmd.AddCommand(statsCmd)
}
