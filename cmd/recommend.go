package cmd

import (
	"context"
	"errors"

	. "github.com/defval/di"
	"github.com/spf13/cobra"

	"github.com/lokafit/lokafit/hooks"
)

var recommendColor string

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generates outfit recommendations from the wardrobe",
}

var recommendInstantCmd = &cobra.Command{
	Use:   "instant",
	Short: "Suggests wardrobe items that go with the given item color",
	RunE: runWithSession(func(ctx context.Context, container *Container, args []string) error {
		if recommendColor == "" {
			return errors.New("--color is required")
		}

		var recommender *hooks.Recommender
		if err := container.Resolve(&recommender); err != nil {
			return err
		}

		result, err := recommender.InstantMatches(ctx, recommendColor)
		if err != nil {
			return err
		}

		return printJson(result)
	}),
}

var recommendWeeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Builds a 7-day outfit plan from the whole wardrobe",
	RunE: runWithSession(func(ctx context.Context, container *Container, args []string) error {
		var recommender *hooks.Recommender
		if err := container.Resolve(&recommender); err != nil {
			return err
		}

		result, err := recommender.WeeklyPlan(ctx)
		if err != nil {
			return err
		}

		return printJson(result)
	}),
}

func init() {
	recommendInstantCmd.Flags().StringVar(&recommendColor, "color", "", "hex color of the item to match")
	recommendCmd.AddCommand(recommendInstantCmd)
	recommendCmd.AddCommand(recommendWeeklyCmd)
	RootCmd.AddCommand(recommendCmd)
}
