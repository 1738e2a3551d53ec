package migrations

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"trackr/internal/domain"
)

// CredentialMigrator handles credential file migrations between versions.
type CredentialMigrator interface {
	Migrate(ctx context.Context, data []byte, currentVersion string) ([]domain.StoredCredential, bool, error)
	FixPermissionsPostMigration(ctx context.Context, path string, fs domain.FileSystemAdapter) error
}

// Migrator implements credential file migration logic.
type Migrator struct {
	logger *slog.Logger
}

// NewMigrator creates a new credential file migrator.
func NewMigrator(logger *slog.Logger) *Migrator {
	return &Migrator{
		logger: logger,
	}
}

// Migrate attempts to migrate credential file data to the current version.
// Returns: credentials, wasMigrated, error.
func (m *Migrator) Migrate(
	ctx context.Context,
	data []byte,
	currentVersion string,
) ([]domain.StoredCredential, bool, error) {
	version, err := m.detectVersion(data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to detect credential file version: %w", err)
	}

	m.logger.DebugContext(ctx, "Detected credential file version", "version", version, "current", currentVersion)

	if version == currentVersion {
		return nil, false, nil
	}

	switch version {
	case "1":
		return m.migrateFromV1(ctx, data)
	default:
		return nil, false, fmt.Errorf("unsupported credential file version: %s", version)
	}
}

// detectVersion reads the version field. A file without one is a v1 flat map.
func (m *Migrator) detectVersion(data []byte) (string, error) {
	var versionCheck map[string]any
	if err := yaml.Unmarshal(data, &versionCheck); err != nil {
		return "", err
	}

	version, ok := versionCheck["version"]
	if !ok {
		return "1", nil
	}

	return fmt.Sprint(version), nil
}

func (m *Migrator) migrateFromV1(ctx context.Context, data []byte) ([]domain.StoredCredential, bool, error) {
	credentials, err := migrateFromV1(data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to migrate from v1: %w", err)
	}

	m.logger.InfoContext(ctx, "Successfully migrated credential file from v1", "hosts", len(credentials))
	return credentials, true, nil
}

// FixPermissionsPostMigration restricts the credential file and its directory
// to the owner. v1 files were written with the process umask.
func (m *Migrator) FixPermissionsPostMigration(
	ctx context.Context,
	path string,
	fs domain.FileSystemAdapter,
) error {
	const (
		dirPermissions  = 0o700
		filePermissions = 0o600
	)

	if err := fs.Chmod(path, filePermissions); err != nil {
		m.logger.WarnContext(ctx, "Failed to fix credential file permissions",
			"path", path, "error", err)
		return fmt.Errorf("failed to fix credential file permissions: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fs.Chmod(dir, dirPermissions); err != nil {
		m.logger.WarnContext(ctx, "Failed to fix credential directory permissions",
			"path", dir, "error", err)
		return fmt.Errorf("failed to fix credential directory permissions: %w", err)
	}

	m.logger.InfoContext(ctx, "Fixed file and directory permissions post-migration",
		"credential_file", path, "credential_dir", dir)
	return nil
}
