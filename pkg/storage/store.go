// Copyright © 2018 One Concern

// Package storage reads and rewrites project files on a file system
// abstraction, with a backup/restore safety net around destructive edits.
package storage

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type errString string

func (e errString) Error() string { return string(e) }

const (
	// ErrNotExists indicates that the project file is missing
	ErrNotExists errString = "project file does not exist"

	// ErrNoBackup indicates that there is no backup to restore from
	ErrNoBackup errString = "backup does not exist"

	// ErrIsDir indicates that the path resolves to a directory
	ErrIsDir errString = "path is a directory"
)

// DefaultBackupSuffix is appended to the project file name for backups.
const DefaultBackupSuffix = ".bak"

// Store accesses project files on a file system.
type Store struct {
	fs afero.Fs
	l  *zap.Logger
}

// Option modifies a Store at construction time.
type Option func(*Store)

// WithLogger sets a logger on the store.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.l = l
		}
	}
}

// New creates a store over fs. A nil fs defaults to the host file system.
func New(fs afero.Fs, opts ...Option) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	s := &Store{
		fs: fs,
		l:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) String() string {
	return "project file store"
}

// Has reports whether path exists as a regular file.
func (s *Store) Has(ctx context.Context, path string) (bool, error) {
	fi, err := s.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !fi.IsDir(), nil
}

// IsDir reports whether path exists as a directory.
func (s *Store) IsDir(ctx context.Context, path string) (bool, error) {
	fi, err := s.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return fi.IsDir(), nil
}

// Read returns the whole file as a string.
func (s *Store) Read(ctx context.Context, path string) (string, error) {
	fi, err := s.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotExists
		}
		return "", err
	}
	if fi.IsDir() {
		return "", ErrIsDir
	}
	b, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", path, err)
	}
	return string(b), nil
}

// Write rewrites path with data, preserving the file mode when the file
// already exists.
func (s *Store) Write(ctx context.Context, path, data string) error {
	mode := os.FileMode(0644)
	if fi, err := s.fs.Stat(path); err == nil {
		if fi.IsDir() {
			return ErrIsDir
		}
		mode = fi.Mode()
	}
	if err := afero.WriteFile(s.fs, path, []byte(data), mode); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	s.l.Debug("wrote project file", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

// Backup copies path to path+suffix, carrying over the file mode and
// modification time, and returns the backup path.
func (s *Store) Backup(ctx context.Context, path, suffix string) (string, error) {
	if suffix == "" {
		suffix = DefaultBackupSuffix
	}
	backup := path + suffix
	if err := s.copy(path, backup, ErrNotExists); err != nil {
		return "", err
	}
	s.l.Debug("created backup", zap.String("path", path), zap.String("backup", backup))
	return backup, nil
}

// Restore copies the backup taken with suffix back over path.
func (s *Store) Restore(ctx context.Context, path, suffix string) error {
	if suffix == "" {
		suffix = DefaultBackupSuffix
	}
	if err := s.copy(path+suffix, path, ErrNoBackup); err != nil {
		return err
	}
	s.l.Debug("restored backup", zap.String("path", path), zap.String("backup", path+suffix))
	return nil
}

// copy duplicates a regular file, mirroring its mode and mtime so the copy
// is indistinguishable from the original.
func (s *Store) copy(from, to string, missing error) error {
	fi, err := s.fs.Stat(from)
	if err != nil {
		if os.IsNotExist(err) {
			return missing
		}
		return err
	}
	if fi.IsDir() {
		return ErrIsDir
	}
	b, err := afero.ReadFile(s.fs, from)
	if err != nil {
		return fmt.Errorf("read %q: %w", from, err)
	}
	if err = afero.WriteFile(s.fs, to, b, fi.Mode()); err != nil {
		return fmt.Errorf("write %q: %w", to, err)
	}
	return s.fs.Chtimes(to, time.Now(), fi.ModTime())
}
