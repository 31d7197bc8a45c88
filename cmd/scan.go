package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/defval/di"
	"github.com/spf13/cobra"

	"github.com/lokafit/lokafit/hooks"
)

var scanQuick bool

var scanCmd = &cobra.Command{
	Use:   "scan <photo>",
	Short: "Scans a garment photo and adds it to the wardrobe",
	Args:  cobra.ExactArgs(1),
	RunE: runWithSession(func(ctx context.Context, container *Container, args []string) error {
		photo, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var scanner *hooks.Scanner
		if err := container.Resolve(&scanner); err != nil {
			return err
		}

		filename := filepath.Base(args[0])

		var garment interface{}
		if scanQuick {
			garment, err = scanner.ScanQuick(ctx, filename, photo)
		} else {
			garment, err = scanner.ScanAccurate(ctx, filename, photo, hooks.Coordinates{})
		}
		if err != nil {
			return err
		}

		return printJson(garment)
	}),
}

func printJson(data interface{}) error {
	result, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(result))

	return nil
}

func init() {
	scanCmd.Flags().BoolVar(&scanQuick, "quick", false, "skip calibration, measurements are approximate")
	RootCmd.AddCommand(scanCmd)
}
