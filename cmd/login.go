package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	httpLayer "github.com/lokafit/lokafit/http"
	"github.com/lokafit/lokafit/session"
)

var loginPassword string
var loginSignUp bool

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Signs in to the LokaFit account and resolves the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginPassword == "" {
			return errors.New("--password is required")
		}

		container := shouldGetContainer()

		var auth httpLayer.Auth
		if err := container.Resolve(&auth); err != nil {
			return err
		}

		var err error
		if loginSignUp {
			_, err = auth.SignUp(cmd.Context(), args[0], loginPassword)
		} else {
			_, err = auth.SignIn(cmd.Context(), args[0], loginPassword)
		}
		if err != nil {
			return err
		}

		var bootstrap *session.Bootstrap
		if err := container.Resolve(&bootstrap); err != nil {
			return err
		}
		defer bootstrap.Release()

		fmt.Println("Session state:", bootstrap.Run(cmd.Context()))

		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	loginCmd.Flags().BoolVar(&loginSignUp, "sign-up", false, "create a new account instead of signing in")
	RootCmd.AddCommand(loginCmd)
}
