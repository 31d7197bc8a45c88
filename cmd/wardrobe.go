package cmd

import (
	"context"

	. "github.com/defval/di"
	"github.com/spf13/cobra"

	"github.com/lokafit/lokafit/hooks"
)

var wardrobeCmd = &cobra.Command{
	Use:   "wardrobe",
	Short: "Lists the garments of the signed in user",
	RunE: runWithSession(func(ctx context.Context, container *Container, args []string) error {
		var loader *hooks.WardrobeLoader
		if err := container.Resolve(&loader); err != nil {
			return err
		}

		garments, err := loader.Refresh(ctx)
		if err != nil {
			return err
		}

		return printJson(garments)
	}),
}

func init() {
	RootCmd.AddCommand(wardrobeCmd)
}
