package cmd

import (
	"context"
	"strings"

	. "github.com/defval/di"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lokafit/lokafit/di"
	"github.com/lokafit/lokafit/session"
	"github.com/lokafit/lokafit/version"
)

var RootCmd = &cobra.Command{
	Use:     "lokafit",
	Short:   "Client core for the LokaFit wardrobe assistant",
	Version: version.Version(),
}

func shouldGetContainer() *Container {
	container, err := di.New()
	if err != nil {
		panic(err)
	}

	return container
}

// runWithSession builds the container, resolves the session before the
// command body runs and releases the auth subscription afterwards.
func runWithSession(fn func(ctx context.Context, container *Container, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		container := shouldGetContainer()

		var bootstrap *session.Bootstrap
		if err := container.Resolve(&bootstrap); err != nil {
			return err
		}

		bootstrap.Run(cmd.Context())
		defer bootstrap.Release()

		return fn(cmd.Context(), container, args)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	_ = godotenv.Load()

	viper.SetEnvPrefix("lokafit")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}
