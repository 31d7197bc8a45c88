package cmd

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/defval/di"
	"github.com/spf13/cobra"

	"github.com/lokafit/lokafit/hooks"
)

var skinToneCmd = &cobra.Command{
	Use:   "skin-tone <photo>",
	Short: "Analyzes the skin tone on a face photo and stores the result",
	Args:  cobra.ExactArgs(1),
	RunE: runWithSession(func(ctx context.Context, container *Container, args []string) error {
		photo, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var analyzer *hooks.SkinToneAnalyzer
		if err := container.Resolve(&analyzer); err != nil {
			return err
		}

		result, err := analyzer.Analyze(ctx, filepath.Base(args[0]), photo)
		if err != nil {
			return err
		}

		return printJson(result)
	}),
}

func init() {
	RootCmd.AddCommand(skinToneCmd)
}
