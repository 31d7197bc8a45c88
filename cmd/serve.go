package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/mono83/slf"
	"github.com/spf13/cobra"

	httpLayer "github.com/lokafit/lokafit/http"
	"github.com/lokafit/lokafit/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the local closet UI server",
	RunE: func(cmd *cobra.Command, args []string) error {
		container := shouldGetContainer()

		var bootstrap *session.Bootstrap
		if err := container.Resolve(&bootstrap); err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		bootstrap.Run(ctx)
		defer bootstrap.Release()

		return container.Invoke(func(server *http.Server, logger slf.Logger) {
			httpLayer.StartServer(ctx, server, logger)
		})
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
