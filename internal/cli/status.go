package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"trackr/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the credential state for the configured host",
	Long:  `Show the resolved host, whether a credential is stored, and where it came from.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().String("host", "", "Base URL of the trackr service")
}

func runStatus(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	host, _ := cmd.Flags().GetString("host")

	statusCommand := commands.NewStatusCommand(app.Global, app.Source, app.CredentialStore, app.Logger)
	status, err := statusCommand.Execute(cmd.Context(), commands.StatusRequest{Host: host})
	if err != nil {
		return err
	}

	printStatus(cmd, status)
	return nil
}

func printStatus(cmd *cobra.Command, status commands.Status) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Host: %s\n", status.Host)
	fmt.Fprintf(out, "Base URL: %s\n", status.BaseURL)
	fmt.Fprintf(out, "Offline: %t\n", status.Offline)
	if !status.HasCredential {
		fmt.Fprintln(out, "Credential: none")
		return
	}
	fmt.Fprintf(out, "Credential: %s (source: %s)\n", status.Key, status.Source)
	if status.Anonymous {
		fmt.Fprintln(out, "Anonymous: true")
	}
}
