package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot two-party vote share per district of one state",
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
			return eris.Wrapf(err, "plot: search %q", region)
		}

		bars, err := sess.Plot()
		if err != nil {
			return eris.Wrap(err, "plot")
		}
		printPlot(cmd.OutOrStdout(), bars)
		return nil
	},
}

func init() {
	addSourceFlags(plotCmd)
	plotCmd.Flags().String("region", "", "state name, case-insensitive (required)")
	_ = plotCmd.MarkFlagRequired("region")
	rootCmd.AddCommand(plotCmd)
}
