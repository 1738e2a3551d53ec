package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"trackr/internal/commands"
	"trackr/internal/domain"
	"trackr/internal/services/login"
	"trackr/internal/services/sampler"
	"trackr/internal/services/session"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Log in and run a heartbeat agent until interrupted",
	Long: `Start a background session that sends heartbeats with utilization samples,
log in with that session attached, and run until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runAgent,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(agentCmd)
	addLoginFlags(agentCmd)

	agentCmd.Flags().String("key", "", "API key to use instead of the stored credential")
	agentCmd.Flags().Duration("heartbeat-interval", session.DefaultInterval, "Interval between heartbeats")
	agentCmd.Flags().Duration("sample-interval", sampler.DefaultInterval, "Interval between utilization samples")
	agentCmd.Flags().String("monitor", "", "Address of a monitor service reporting utilization (default: local CPU)")
}

func runAgent(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	req, err := loginRequestFromFlags(cmd, nil)
	if err != nil {
		return err
	}
	req.Key, _ = cmd.Flags().GetString("key")
	heartbeatInterval, _ := cmd.Flags().GetDuration("heartbeat-interval")
	sampleInterval, _ := cmd.Flags().GetDuration("sample-interval")
	monitor, _ := cmd.Flags().GetString("monitor")

	gauge := sampler.CPUGauge()
	if monitor != "" {
		gauge = sampler.MonitorGauge(app.HTTP, monitor)
	}

	factory := func(ch domain.SessionChannel) commands.Loginer {
		return app.NewLoginOrchestrator(login.WithChannel(ch))
	}

	agentCommand := commands.NewAgentCommand(
		app.Global,
		app.Source,
		app.API,
		app.API,
		gauge,
		factory,
		app.Session,
		app.Logger,
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	return agentCommand.Execute(ctx, commands.AgentRequest{
		Login:             req,
		HeartbeatInterval: heartbeatInterval,
		SampleInterval:    sampleInterval,
		Started: func(sessionID string) {
			fmt.Fprintf(out, "Agent running (session %s), press Ctrl+C to stop\n", sessionID)
		},
	})
}
