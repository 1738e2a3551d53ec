package credentials_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"trackr/internal/adapters/filesystem"
	"trackr/internal/domain"
	apperrors "trackr/internal/errors"
	"trackr/internal/mocks"
	"trackr/internal/services/credentials"
	"trackr/internal/testutil"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// StoreTestSuite runs against a real temp directory.
type StoreTestSuite struct {
	suite.Suite

	ctx   context.Context
	path  string
	store *credentials.Store
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), ".config", "trackr", "credentials.yaml")
	s.store = s.newStore()
}

func (s *StoreTestSuite) newStore() *credentials.Store {
	return credentials.NewStore(filesystem.New(), s.path, testutil.Logger(),
		credentials.WithClock(func() time.Time { return fixedNow }))
}

func settingsFor(baseURL string) domain.Settings {
	return domain.Settings{BaseURL: baseURL}
}

func (s *StoreTestSuite) TestLookup_NoFile() {
	_, ok, err := s.store.Lookup(s.ctx, settingsFor("https://example.com"))

	s.Require().NoError(err)
	s.False(ok)
	s.False(s.store.HasCredential(s.ctx, settingsFor("https://example.com")))
}

func (s *StoreTestSuite) TestWriteThenLookup() {
	key := domain.NewSecret(testutil.APIKey("a"))

	s.Require().NoError(s.store.Write(s.ctx, settingsFor("example.com"), key, false))

	found, ok, err := s.store.Lookup(s.ctx, settingsFor("https://example.com/"))
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal("example.com", found.Host)
	s.True(found.Key.Equal(key))
	s.Equal(domain.SourceFile, found.Source)
	s.False(found.Anonymous)
}

func (s *StoreTestSuite) TestWrite_FilePermissions() {
	s.Require().NoError(s.store.Write(s.ctx, settingsFor("example.com"), domain.NewSecret(testutil.APIKey("a")), false))

	info, err := os.Stat(s.path)
	s.Require().NoError(err)
	s.Equal(os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(s.path))
	s.Require().NoError(err)
	s.Equal(os.FileMode(0o700), dirInfo.Mode().Perm())
}

func (s *StoreTestSuite) TestWrite_OverwritesSameHost() {
	settings := settingsFor("example.com")
	s.Require().NoError(s.store.Write(s.ctx, settings, domain.NewSecret(testutil.APIKey("a")), true))
	s.Require().NoError(s.store.Write(s.ctx, settings, domain.NewSecret(testutil.APIKey("b")), false))

	found, ok, err := s.store.Lookup(s.ctx, settings)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(testutil.APIKey("b"), found.Key.Value())
	s.False(found.Anonymous, "a non-anonymous write clears the marker")

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.Equal(1, countOccurrences(string(data), "host: example.com"))
}

func (s *StoreTestSuite) TestWrite_AnonymousMarker() {
	settings := settingsFor("example.com")
	s.Require().NoError(s.store.Write(s.ctx, settings, domain.NewSecret(testutil.APIKey("a")), true))

	found, ok, err := s.store.Lookup(s.ctx, settings)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.True(found.Anonymous)
}

func (s *StoreTestSuite) TestHostsAreIsolated() {
	s.Require().NoError(s.store.Write(s.ctx, settingsFor("a.example.com"), domain.NewSecret(testutil.APIKey("a")), false))

	_, ok, err := s.store.Lookup(s.ctx, settingsFor("b.example.com"))

	s.Require().NoError(err)
	s.False(ok, "a key for one host must never be returned for another")
}

func (s *StoreTestSuite) TestLookupOrder() {
	s.Require().NoError(s.store.Write(s.ctx, settingsFor("example.com"), domain.NewSecret(testutil.APIKey("f")), false))

	tests := []struct {
		name       string
		settings   domain.Settings
		wantKey    string
		wantSource domain.CredentialSource
	}{
		{
			name: "in-memory key wins",
			settings: domain.Settings{
				BaseURL:    "example.com",
				APIKey:     domain.NewSecret("memory"),
				APIKeyHost: "https://example.com/",
				EnvAPIKey:  domain.NewSecret("env"),
			},
			wantKey:    "memory",
			wantSource: domain.SourceOverride,
		},
		{
			name: "in-memory key for another host is ignored",
			settings: domain.Settings{
				BaseURL:    "example.com",
				APIKey:     domain.NewSecret("memory"),
				APIKeyHost: "other.example.com",
			},
			wantKey:    testutil.APIKey("f"),
			wantSource: domain.SourceFile,
		},
		{
			name:       "environment before file",
			settings:   domain.Settings{BaseURL: "example.com", EnvAPIKey: domain.NewSecret("env")},
			wantKey:    "env",
			wantSource: domain.SourceEnvironment,
		},
		{
			name:       "file last",
			settings:   domain.Settings{BaseURL: "example.com"},
			wantKey:    testutil.APIKey("f"),
			wantSource: domain.SourceFile,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			found, ok, err := s.store.Lookup(s.ctx, tt.settings)
			s.Require().NoError(err)
			s.Require().True(ok)
			s.Equal(tt.wantKey, found.Key.Value())
			s.Equal(tt.wantSource, found.Source)
		})
	}
}

func (s *StoreTestSuite) TestLookup_InMemoryKeyNeverCrossesHosts() {
	settings := domain.Settings{
		BaseURL:    "b.example.com",
		APIKey:     domain.NewSecret(testutil.APIKey("a")),
		APIKeyHost: "a.example.com",
	}

	_, ok, err := s.store.Lookup(s.ctx, settings)
	s.Require().NoError(err)
	s.False(ok)
	s.False(s.store.HasCredential(s.ctx, settings))
}

func (s *StoreTestSuite) TestWrite_InvalidKey() {
	err := s.store.Write(s.ctx, settingsFor("example.com"), domain.NewSecret("short"), false)

	s.Require().Error(err)
	s.True(apperrors.IsUsage(err))
	s.Equal(apperrors.ReasonInvalidKey, apperrors.UsageReason(err))

	_, statErr := os.Stat(s.path)
	s.True(os.IsNotExist(statErr), "nothing is written for a rejected key")
}

func (s *StoreTestSuite) TestWrite_MissingHost() {
	err := s.store.Write(s.ctx, domain.Settings{}, domain.NewSecret(testutil.APIKey("a")), false)

	s.True(apperrors.IsValidation(err))
}

func (s *StoreTestSuite) TestClear() {
	settings := settingsFor("example.com")
	s.Require().NoError(s.store.Write(s.ctx, settings, domain.NewSecret(testutil.APIKey("a")), false))

	s.Require().NoError(s.store.Clear(s.ctx, "https://example.com"))
	s.False(s.store.HasCredential(s.ctx, settings))

	_, err := os.Stat(s.path)
	s.True(os.IsNotExist(err), "last credential removed deletes the file")

	err = s.store.Clear(s.ctx, "example.com")
	s.True(apperrors.IsNotFound(err))
}

func (s *StoreTestSuite) TestClear_KeepsOtherHosts() {
	first := settingsFor("one.example.com")
	second := settingsFor("two.example.com")
	s.Require().NoError(s.store.Write(s.ctx, first, domain.NewSecret(testutil.APIKey("a")), false))
	s.Require().NoError(s.store.Write(s.ctx, second, domain.NewSecret(testutil.APIKey("b")), true))

	s.Require().NoError(s.store.Clear(s.ctx, "one.example.com"))

	s.False(s.store.HasCredential(s.ctx, first))
	found, ok, err := s.store.Lookup(s.ctx, second)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.True(found.Anonymous)
}

func (s *StoreTestSuite) TestLoad_MigratesLegacyFile() {
	s.Require().NoError(os.MkdirAll(filepath.Dir(s.path), 0o755))
	legacy := "example.com: " + testutil.APIKey("l") + "\n"
	s.Require().NoError(os.WriteFile(s.path, []byte(legacy), 0o644))

	found, ok, err := s.newStore().Lookup(s.ctx, settingsFor("example.com"))
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(testutil.APIKey("l"), found.Key.Value())

	info, err := os.Stat(s.path)
	s.Require().NoError(err)
	s.Equal(os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.Contains(string(data), `version: "2"`)
}

func (s *StoreTestSuite) TestLookup_CorruptFile() {
	s.Require().NoError(os.MkdirAll(filepath.Dir(s.path), 0o700))
	s.Require().NoError(os.WriteFile(s.path, []byte("version: \"2\"\ncredentials: {not: [a list"), 0o600))

	_, _, err := s.store.Lookup(s.ctx, settingsFor("example.com"))
	s.True(apperrors.IsStorage(err))
	s.False(s.store.HasCredential(s.ctx, settingsFor("example.com")))
}

func (s *StoreTestSuite) TestWrite_ReplacesCorruptFile() {
	corrupt := []byte("version: \"2\"\ncredentials: {not: [a list")
	s.Require().NoError(os.MkdirAll(filepath.Dir(s.path), 0o700))
	s.Require().NoError(os.WriteFile(s.path, corrupt, 0o600))

	settings := settingsFor("example.com")
	s.Require().NoError(s.store.Write(s.ctx, settings, domain.NewSecret(testutil.APIKey("w")), false))

	found, ok, err := s.store.Lookup(s.ctx, settings)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(testutil.APIKey("w"), found.Key.Value())

	backup, err := os.ReadFile(s.path + ".corrupt")
	s.Require().NoError(err)
	s.Equal(corrupt, backup)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestStore_WriteFailureIsStorageError(t *testing.T) {
	mockFS := mocks.NewMockFileSystemAdapter(t)
	path := "/home/test/.config/trackr/credentials.yaml"

	mockFS.EXPECT().MkdirAll("/home/test/.config/trackr", os.FileMode(0o700)).Return(nil)
	mockFS.EXPECT().ReadFile(path).Return(nil, os.ErrNotExist)
	mockFS.EXPECT().WriteFile(path, mock.AnythingOfType("[]uint8"), os.FileMode(0o600)).
		Return(errors.New("read-only file system"))

	store := credentials.NewStore(mockFS, path, testutil.Logger())
	err := store.Write(context.Background(), settingsFor("example.com"), domain.NewSecret(testutil.APIKey("a")), false)

	require.Error(t, err)
	assert.True(t, apperrors.IsStorage(err))

	var storageErr *apperrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "write", storageErr.Op)
	assert.Equal(t, path, storageErr.Path)
}

func TestStore_UnwritableDirectory(t *testing.T) {
	mockFS := mocks.NewMockFileSystemAdapter(t)
	path := "/root-owned/trackr/credentials.yaml"

	mockFS.EXPECT().MkdirAll("/root-owned/trackr", os.FileMode(0o700)).Return(os.ErrPermission)

	store := credentials.NewStore(mockFS, path, testutil.Logger())
	err := store.Write(context.Background(), settingsFor("example.com"), domain.NewSecret(testutil.APIKey("a")), false)

	assert.True(t, apperrors.IsStorage(err))
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestStore_ReadFailureLeavesFileUntouched(t *testing.T) {
	mockFS := mocks.NewMockFileSystemAdapter(t)
	path := "/home/test/.config/trackr/credentials.yaml"

	mockFS.EXPECT().MkdirAll("/home/test/.config/trackr", os.FileMode(0o700)).Return(nil)
	mockFS.EXPECT().ReadFile(path).Return(nil, os.ErrPermission)

	store := credentials.NewStore(mockFS, path, testutil.Logger())
	err := store.Write(context.Background(), settingsFor("example.com"), domain.NewSecret(testutil.APIKey("a")), false)

	assert.True(t, apperrors.IsStorage(err))
	mockFS.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
}

func countOccurrences(s, sub string) int {
	count := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			count++
		}
	}
	return count
}
