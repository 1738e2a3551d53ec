// Package credentials persists one API key per host.
package credentials

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"trackr/internal/domain"
	"trackr/internal/errors"
	"trackr/internal/migrations"
)

const (
	dirPermissions  = 0o700
	filePermissions = 0o600
	fileVersion     = "2"
	defaultLogin    = "user"
	corruptSuffix   = ".corrupt"
)

// File is the on-disk credential file.
type File struct {
	Version     string                    `yaml:"version"`
	Credentials []domain.StoredCredential `yaml:"credentials"`
}

func (f *File) find(host string) (domain.StoredCredential, bool) {
	idx := slices.IndexFunc(f.Credentials, func(c domain.StoredCredential) bool {
		return c.Host == host
	})
	if idx < 0 {
		return domain.StoredCredential{}, false
	}
	return f.Credentials[idx], true
}

// upsert replaces the entry for the credential's host or appends it.
func (f *File) upsert(credential domain.StoredCredential) {
	idx := slices.IndexFunc(f.Credentials, func(c domain.StoredCredential) bool {
		return c.Host == credential.Host
	})
	if idx < 0 {
		f.Credentials = append(f.Credentials, credential)
		return
	}
	f.Credentials[idx] = credential
}

func (f *File) remove(host string) bool {
	before := len(f.Credentials)
	f.Credentials = slices.DeleteFunc(f.Credentials, func(c domain.StoredCredential) bool {
		return c.Host == host
	})
	return len(f.Credentials) != before
}

// Store is a CredentialStore backed by a YAML file. The file is read on each
// lookup so keys written by other processes are seen.
type Store struct {
	fs       domain.FileSystemAdapter
	path     string
	migrator migrations.CredentialMigrator
	logger   *slog.Logger
	now      func() time.Time
}

var _ domain.CredentialStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a store persisting to path.
func NewStore(fs domain.FileSystemAdapter, path string, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		fs:       fs,
		path:     path,
		migrator: migrations.NewMigrator(logger),
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the credential file location.
func (s *Store) Path() string {
	return s.path
}

// HasCredential reports whether Lookup finds a key. Read failures count as
// no credential.
func (s *Store) HasCredential(ctx context.Context, settings domain.Settings) bool {
	_, ok, err := s.Lookup(ctx, settings)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read credential file", "path", s.path, "error", err)
		return false
	}
	return ok
}

// Lookup returns the key for the settings' host: the in-memory key for that host first,
// then the environment, then the file entry for that exact host.
func (s *Store) Lookup(ctx context.Context, settings domain.Settings) (domain.CredentialLookup, bool, error) {
	host := settings.Host()

	if key, ok := settings.ProcessKey(); ok {
		return domain.CredentialLookup{Host: host, Key: key, Source: domain.SourceOverride}, true, nil
	}
	if !settings.EnvAPIKey.IsZero() {
		return domain.CredentialLookup{Host: host, Key: settings.EnvAPIKey, Source: domain.SourceEnvironment}, true, nil
	}
	if host == "" {
		return domain.CredentialLookup{}, false, nil
	}

	file, err := s.load(ctx)
	if err != nil {
		return domain.CredentialLookup{}, false, err
	}

	entry, ok := file.find(host)
	if !ok || entry.Key == "" {
		s.logger.DebugContext(ctx, "No stored credential", "host", host)
		return domain.CredentialLookup{}, false, nil
	}

	return domain.CredentialLookup{
		Host:      host,
		Key:       domain.NewSecret(entry.Key),
		Source:    domain.SourceFile,
		Anonymous: entry.Anonymous,
	}, true, nil
}

// Write validates key and stores it for the settings' host, replacing any
// previous entry.
func (s *Store) Write(ctx context.Context, settings domain.Settings, key domain.Secret, anonymous bool) error {
	if err := ValidateKey(key.Value()); err != nil {
		return err
	}

	host := settings.Host()
	if host == "" {
		return errors.NewValidationError("host", "", "required", "cannot store a credential without a host")
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, dirPermissions); err != nil {
		return errors.NewStorageError("mkdir", dir, err)
	}

	file, err := s.load(ctx)
	if isParseError(err) {
		file, err = s.quarantine(ctx)
	}
	if err != nil {
		return err
	}

	file.upsert(domain.StoredCredential{
		Host:      host,
		Login:     defaultLogin,
		Key:       key.Value(),
		Anonymous: anonymous,
		UpdatedAt: s.now().UTC(),
	})

	if err := s.save(ctx, file); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Stored credential", "host", host, "anonymous", anonymous, "path", s.path)
	return nil
}

// Clear removes the entry for host.
func (s *Store) Clear(ctx context.Context, host string) error {
	host = domain.NormalizeHost(host)

	file, err := s.load(ctx)
	if err != nil {
		return err
	}

	if !file.remove(host) {
		return fmt.Errorf("no credential stored for %s: %w", host, errors.ErrNotFound)
	}

	if len(file.Credentials) == 0 {
		if err := s.fs.Remove(s.path); err != nil {
			return errors.NewStorageError("remove", s.path, err)
		}
	} else if err := s.save(ctx, file); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Removed credential", "host", host)
	return nil
}

// quarantine copies an unparseable credential file aside so a write can
// start from an empty file.
func (s *Store) quarantine(ctx context.Context) (*File, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, errors.NewStorageError("read", s.path, err)
	}

	backup := s.path + corruptSuffix
	if err := s.fs.WriteFile(backup, data, filePermissions); err != nil {
		return nil, errors.NewStorageError("backup", backup, err)
	}

	s.logger.WarnContext(ctx, "Replacing unreadable credential file", "path", s.path, "backup", backup)
	return &File{Version: fileVersion}, nil
}

func isParseError(err error) bool {
	var storageErr *errors.StorageError
	return stderrors.As(err, &storageErr) && storageErr.Op == "parse"
}

func (s *Store) save(ctx context.Context, file *File) error {
	file.Version = fileVersion

	data, err := yaml.Marshal(file)
	if err != nil {
		return errors.NewStorageError("encode", s.path, err)
	}

	if err := s.fs.WriteFile(s.path, data, filePermissions); err != nil {
		return errors.NewStorageError("write", s.path, err)
	}

	s.logger.DebugContext(ctx, "Credential file saved", "path", s.path)
	return nil
}

func (s *Store) load(ctx context.Context) (*File, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			s.logger.DebugContext(ctx, "Credential file does not exist", "path", s.path)
			return &File{Version: fileVersion}, nil
		}
		return nil, errors.NewStorageError("read", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return &File{Version: fileVersion}, nil
	}

	credentials, migrated, migrationErr := s.migrator.Migrate(ctx, data, fileVersion)
	if migrationErr != nil {
		s.logger.WarnContext(ctx, "Migration failed, attempting direct load", "error", migrationErr)
	} else if migrated {
		file := &File{Version: fileVersion, Credentials: credentials}

		if permErr := s.migrator.FixPermissionsPostMigration(ctx, s.path, s.fs); permErr != nil {
			s.logger.WarnContext(ctx, "Failed to fix permissions during migration", "error", permErr)
		}
		if saveErr := s.save(ctx, file); saveErr != nil {
			s.logger.WarnContext(ctx, "Failed to save migrated credential file", "error", saveErr)
		}
		return file, nil
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.NewStorageError("parse", s.path, err)
	}
	return &file, nil
}
