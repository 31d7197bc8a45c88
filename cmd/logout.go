package cmd

import (
	"context"
	"fmt"

	. "github.com/defval/di"
	"github.com/spf13/cobra"

	"github.com/lokafit/lokafit/session"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Terminates the current session and wipes the local state",
	RunE: runWithSession(func(ctx context.Context, container *Container, args []string) error {
		var bootstrap *session.Bootstrap
		if err := container.Resolve(&bootstrap); err != nil {
			return err
		}

		if err := bootstrap.SignOut(ctx); err != nil {
			return err
		}

		fmt.Println("Signed out")

		return nil
	}),
}

func init() {
	RootCmd.AddCommand(logoutCmd)
}
