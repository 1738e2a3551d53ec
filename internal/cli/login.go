package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"trackr/internal/commands"
	"trackr/internal/domain"
	apperrors "trackr/internal/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var loginCmd = &cobra.Command{
	Use:   "login [key]",
	Short: "Resolve and store an API key for this machine",
	Long: `Resolve an API key for the configured host. An explicit key is validated and
stored; otherwise an existing credential is reused or the operator is prompted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(loginCmd)
	addLoginFlags(loginCmd)
}

// addLoginFlags registers the flags shared by login and agent.
func addLoginFlags(cmd *cobra.Command) {
	cmd.Flags().String("host", "", "Base URL of the trackr service")
	cmd.Flags().String("anonymous", "", "Anonymous login policy: never, allow or must")
	cmd.Flags().Bool("relogin", false, "Ignore any stored credential and log in again")
	cmd.Flags().Bool("force", false, "Require a real account; disables anonymous and offline choices")
	cmd.Flags().Bool("verify", false, "Check the key against the service before storing it")
}

func loginRequestFromFlags(cmd *cobra.Command, args []string) (commands.LoginRequest, error) {
	host, _ := cmd.Flags().GetString("host")
	anonymous, _ := cmd.Flags().GetString("anonymous")
	relogin, _ := cmd.Flags().GetBool("relogin")
	force, _ := cmd.Flags().GetBool("force")
	verify, _ := cmd.Flags().GetBool("verify")

	if anonymous != "" && domain.ParseAnonymousPolicy(anonymous) == domain.AnonymousUnset {
		return commands.LoginRequest{}, apperrors.NewValidationError(
			"anonymous", anonymous, "oneof", "must be one of never, allow, must")
	}

	req := commands.LoginRequest{
		Anonymous: anonymous,
		Host:      host,
		Relogin:   relogin,
		Force:     force,
		Verify:    verify,
	}
	if len(args) > 0 {
		req.Key = args[0]
	}
	return req, nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	req, err := loginRequestFromFlags(cmd, args)
	if err != nil {
		return err
	}

	loginCommand := commands.NewLoginCommand(app.NewLoginOrchestrator(), app.Session, app.Logger)
	result, err := loginCommand.Execute(cmd.Context(), req)
	if err != nil {
		return err
	}

	if !result.Resolved {
		fmt.Fprintln(cmd.OutOrStdout(), "Running in offline mode; no API key configured")
		return nil
	}
	if result.Identity != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", result.Identity)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "API key configured")
	return nil
}
