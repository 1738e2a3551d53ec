package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"trackr/internal/commands"
	apperrors "trackr/internal/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored credential for the configured host",
	Long:  `Remove the credential stored for the configured host from the credential file.`,
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(logoutCmd)

	logoutCmd.Flags().String("host", "", "Base URL of the trackr service")
}

func runLogout(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	host, _ := cmd.Flags().GetString("host")

	logoutCommand := commands.NewLogoutCommand(app.Global, app.Source, app.CredentialStore, app.Logger)
	removed, err := logoutCommand.Execute(cmd.Context(), commands.LogoutRequest{Host: host})
	if apperrors.IsNotFound(err) {
		fmt.Fprintf(cmd.OutOrStdout(), "No credential stored for %s\n", removed)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed credential for %s\n", removed)
	return nil
}
