package main

import (
	"fmt"

	"github.com/automoto/husky-loves-ducky/scores"
	"github.com/spf13/cobra"
)

var (
	flagName   string
	flagPoints uint32
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "List the high scores",
	Args:  cobra.NoArgs,
	RunE:  runScores,
}

var scoresAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a score",
	Long: `Record a score in the high score table. Only the best ten are kept.

Examples:
  husky-loves-ducky scores add --name rex --points 1200`,
	Args: cobra.NoArgs,
	RunE: runScoresAdd,
}

func init() {
	scoresAddCmd.Flags().StringVar(&flagName, "name", "", "Player name")
	scoresAddCmd.Flags().Uint32Var(&flagPoints, "points", 0, "Points scored")
	_ = scoresAddCmd.MarkFlagRequired("name")
	scoresCmd.AddCommand(scoresAddCmd)
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := scores.Open()
	if err != nil {
		return err
	}
	entries, err := store.Get()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Points", "Name")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "------", "----")
	for i, s := range entries {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, s.Points, s.Name)
	}
	return nil
}

func runScoresAdd(cmd *cobra.Command, _ []string) error {
	store, err := scores.Open()
	if err != nil {
		return err
	}
	s := scores.Score{Points: flagPoints, Name: flagName}
	if err := scores.Add(store, s); err != nil {
		return err
	}
	newLogger().Info("score recorded", "name", s.Name, "points", s.Points)
	return nil
}
