// Package config locates trackr's files on disk.
package config

import (
	"fmt"
	"path/filepath"

	"trackr/internal/domain"
)

const (
	settingsFileName    = "settings.yaml"
	credentialsFileName = "credentials.yaml"
)

// Provider provides configuration paths.
type Provider struct {
	fs              domain.FileSystemAdapter
	credentialsPath string
}

var _ domain.ConfigProvider = (*Provider)(nil)

// NewProvider creates a new configuration provider. A non-empty
// credentialsPath replaces the default credential file location.
func NewProvider(fs domain.FileSystemAdapter, credentialsPath string) *Provider {
	return &Provider{
		fs:              fs,
		credentialsPath: credentialsPath,
	}
}

// GetConfigDir returns ~/.config/trackr.
func (p *Provider) GetConfigDir() (string, error) {
	homeDir, err := p.fs.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "trackr"), nil
}

// GetSettingsPath returns the path to the settings file.
func (p *Provider) GetSettingsPath() (string, error) {
	dir, err := p.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFileName), nil
}

// GetCredentialsPath returns the path to the credential file.
func (p *Provider) GetCredentialsPath() (string, error) {
	if p.credentialsPath != "" {
		return p.credentialsPath, nil
	}
	dir, err := p.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credentialsFileName), nil
}
