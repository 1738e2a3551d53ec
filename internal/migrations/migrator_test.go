package migrations_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"trackr/internal/domain"
	"trackr/internal/migrations"
	"trackr/internal/mocks"
	"trackr/internal/testutil"
)

func TestMigrator_Migrate_V1ToV2(t *testing.T) {
	ctx := context.Background()
	migrator := migrations.NewMigrator(testutil.Logger())

	// v1 files are a flat host to key map
	v1File := `api.trackr.dev: ` + testutil.APIKey("a") + `
https://Local.Example.com:8080/: ` + testutil.APIKey("b") + `
`

	credentials, migrated, err := migrator.Migrate(ctx, []byte(v1File), "2")
	if err != nil {
		t.Fatalf("Migration failed: %v", err)
	}

	if !migrated {
		t.Error("Expected migration to occur")
	}

	want := []domain.StoredCredential{
		{Host: "api.trackr.dev", Login: "user", Key: testutil.APIKey("a")},
		{Host: "local.example.com:8080", Login: "user", Key: testutil.APIKey("b")},
	}

	assert.Equal(t, want, credentials, "Migrated credentials should match expected")
}

func TestMigrator_Migrate_V1SkipsNonStringValues(t *testing.T) {
	ctx := context.Background()
	migrator := migrations.NewMigrator(testutil.Logger())

	v1File := `api.trackr.dev: ` + testutil.APIKey("a") + `
nested:
  key: value
empty: ""
`

	credentials, migrated, err := migrator.Migrate(ctx, []byte(v1File), "2")
	if err != nil {
		t.Fatalf("Migration failed: %v", err)
	}

	assert.True(t, migrated)
	assert.Len(t, credentials, 1)
	assert.Equal(t, "api.trackr.dev", credentials[0].Host)
}

func TestMigrator_Migrate_CurrentVersion(t *testing.T) {
	ctx := context.Background()
	migrator := migrations.NewMigrator(testutil.Logger())

	v2File := `version: "2"
credentials:
  - host: api.trackr.dev
    login: user
    key: ` + testutil.APIKey("a")

	credentials, migrated, err := migrator.Migrate(ctx, []byte(v2File), "2")
	if err != nil {
		t.Fatalf("Migration failed: %v", err)
	}

	if migrated {
		t.Error("Expected no migration for current version")
	}

	if credentials != nil {
		t.Error("Expected nil credentials when no migration occurs")
	}
}

func TestMigrator_Migrate_NumericVersion(t *testing.T) {
	migrator := migrations.NewMigrator(testutil.Logger())

	_, migrated, err := migrator.Migrate(context.Background(), []byte("version: 2\ncredentials: []\n"), "2")

	assert.NoError(t, err)
	assert.False(t, migrated)
}

func TestMigrator_Migrate_UnsupportedVersion(t *testing.T) {
	ctx := context.Background()
	migrator := migrations.NewMigrator(testutil.Logger())

	futureFile := `version: "3"
credentials: []`

	_, _, err := migrator.Migrate(ctx, []byte(futureFile), "2")
	if err == nil {
		t.Fatal("Expected error for unsupported version")
	}

	expectedError := "unsupported credential file version: 3"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got: %v", expectedError, err)
	}
}

func TestMigrator_Migrate_InvalidYAML(t *testing.T) {
	ctx := context.Background()
	migrator := migrations.NewMigrator(testutil.Logger())

	invalidFile := `invalid: yaml: structure
  - missing: proper
    formatting`

	_, _, err := migrator.Migrate(ctx, []byte(invalidFile), "2")
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestMigrator_FixPermissionsPostMigration_Success(t *testing.T) {
	migrator := migrations.NewMigrator(testutil.Logger())
	mockFS := mocks.NewMockFileSystemAdapter(t)

	tempDir := t.TempDir()
	path := tempDir + "/.config/trackr/credentials.yaml"
	dir := tempDir + "/.config/trackr"

	mockFS.EXPECT().Chmod(path, os.FileMode(0o600)).Return(nil)
	mockFS.EXPECT().Chmod(dir, os.FileMode(0o700)).Return(nil)

	err := migrator.FixPermissionsPostMigration(context.Background(), path, mockFS)
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestMigrator_FixPermissionsPostMigration_ChmodError(t *testing.T) {
	migrator := migrations.NewMigrator(testutil.Logger())
	mockFS := mocks.NewMockFileSystemAdapter(t)

	path := t.TempDir() + "/.config/trackr/credentials.yaml"

	mockFS.EXPECT().Chmod(path, os.FileMode(0o600)).Return(errors.New("permission denied"))

	err := migrator.FixPermissionsPostMigration(context.Background(), path, mockFS)
	if err == nil {
		t.Fatal("Expected error when chmod fails")
	}

	expectedErrorMsg := "failed to fix credential file permissions: permission denied"
	if err.Error() != expectedErrorMsg {
		t.Errorf("Expected error message '%s', got: %v", expectedErrorMsg, err)
	}
}

func TestMigrator_FixPermissionsPostMigration_DirectoryError(t *testing.T) {
	migrator := migrations.NewMigrator(testutil.Logger())
	mockFS := mocks.NewMockFileSystemAdapter(t)

	tempDir := t.TempDir()
	path := tempDir + "/.config/trackr/credentials.yaml"

	mockFS.EXPECT().Chmod(path, os.FileMode(0o600)).Return(nil)
	mockFS.EXPECT().Chmod(tempDir+"/.config/trackr", os.FileMode(0o700)).Return(errors.New("read-only"))

	err := migrator.FixPermissionsPostMigration(context.Background(), path, mockFS)

	assert.EqualError(t, err, "failed to fix credential directory permissions: read-only")
}
