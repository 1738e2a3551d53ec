package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"trackr/internal/app"
	"trackr/internal/services/settings"
)

func TestRunLogout_NothingStored(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	original := application
	defer func() { application = original }()

	var err error
	application, err = app.NewApp(context.Background(),
		app.WithCredentialsPath(filepath.Join(t.TempDir(), "credentials.yaml")),
		app.WithSource(settings.MapSource{}),
		app.WithStreams(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}))
	if err != nil {
		t.Fatalf("Failed to create application: %v", err)
	}

	var out bytes.Buffer
	cmd := &cobra.Command{Use: "logout"}
	cmd.Flags().String("host", "", "")
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	if err := cmd.Flags().Parse([]string{"--host", "api.example.com"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	if err := runLogout(cmd, nil); err != nil {
		t.Fatalf("Expected no error when nothing is stored, got: %v", err)
	}
	if got := out.String(); got != "No credential stored for api.example.com\n" {
		t.Errorf("Unexpected output: %q", got)
	}
}
