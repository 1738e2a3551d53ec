package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"trackr/internal/adapters/filesystem"
	"trackr/internal/app"
	apperrors "trackr/internal/errors"
	"trackr/internal/services/config"
	"trackr/internal/services/settings"
)

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile string
	verbose bool

	application *app.App
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// GetApp returns the initialized application instance.
func GetApp() *app.App {
	return application
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   "trackr",
	Short: "Log in to the trackr service and keep an agent session alive",
	Long: `Trackr resolves an API key for the current machine, stores it per host,
and hands it to a background agent that reports heartbeats and utilization.`,
	SilenceUsage: true,
}

// exitUsage is returned when no credential can be obtained.
const exitUsage = 2

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err, os.Stderr))
	}
}

// exitCode prints a hint for errors the user can act on and returns the
// process exit status for err.
func exitCode(err error, stderr io.Writer) int {
	switch apperrors.UsageReason(err) {
	case apperrors.ReasonNoTTY:
		fmt.Fprintln(stderr, "No terminal to prompt on: pass the key with `trackr login <key>` or set TRACKR_API_KEY")
	case apperrors.ReasonInvalidKey, apperrors.ReasonEmptyKey:
		fmt.Fprintln(stderr, "Copy the full key from your account settings and run `trackr login` again")
	case apperrors.ReasonRejected:
		fmt.Fprintln(stderr, "The service rejected this key: run `trackr login --relogin` with a current one")
	}
	if apperrors.IsNetwork(err) {
		fmt.Fprintln(stderr, "Could not reach the service: check --host and your network connection")
	}

	if apperrors.IsUsage(err) {
		return exitUsage
	}
	return 1
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "settings file (default is $HOME/.config/trackr/settings.yaml)")
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		settingsPath, err := config.NewProvider(filesystem.New(), "").GetSettingsPath()
		cobra.CheckErr(err)

		viper.SetConfigFile(settingsPath)
		viper.SetConfigType("yaml")
	}

	settings.ConfigureViper(viper.GetViper())

	// Read config file silently (ignore error if config file doesn't exist)
	_ = viper.ReadInConfig()

	// Initialize the application with dependency injection
	opts := []app.Option{
		app.WithSource(settings.NewViperSource(viper.GetViper())),
	}
	if verbose {
		opts = append(opts, app.WithVerbose(true))
	}

	var err error
	application, err = app.NewApp(context.Background(), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}
}
