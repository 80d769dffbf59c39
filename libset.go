package libset

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/edfloreshz/libset/internal/pathutil"
)

// Config is a handle to one application's configuration directory. It owns a
// single absolute path, resolved once by New, and performs every item
// operation against files inside it. Nothing is cached: each get and set
// round-trips to disk. The zero value is not usable; always construct with
// New.
type Config struct {
	name    string
	version uint64
	scope   string
	dir     string
	log     *zap.Logger
}

type settings struct {
	scope   string
	baseDir string
	log     *zap.Logger
}

// Option configures New.
type Option func(*settings)

// WithScope partitions the store with a named subdirectory below the version
// segment. The scope follows the same naming rules as the application name.
func WithScope(scope string) Option {
	return func(s *settings) { s.scope = scope }
}

// WithBaseDir overrides the OS configuration root. Intended for tests that
// must not touch real user directories.
func WithBaseDir(dir string) Option {
	return func(s *settings) { s.baseDir = dir }
}

// WithLogger sets the logger for read and write events. Defaults to a no-op
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.log = l }
}

// New resolves the configuration directory for an application and ensures it
// exists, creating missing segments as needed. The directory is
// <config-root>/<name>/v<version>, with the scope appended as a final
// segment when one is set:
//
//	cfg, err := libset.New("org.example.Demo", 1)
//	// => $HOME/.config/org.example.Demo/v1
//
// New is idempotent: calling it again with identical arguments resolves the
// same directory and never fails because the directory already exists.
func New(name string, version uint64, opts ...Option) (*Config, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	if !pathutil.Safe(name) {
		return nil, fmt.Errorf("application name %q: %w", name, ErrInvalidName)
	}
	if version == 0 {
		return nil, fmt.Errorf("version must be 1 or higher: %w", ErrInvalidVersion)
	}
	if s.scope != "" && !pathutil.Safe(s.scope) {
		return nil, fmt.Errorf("scope %q: %w", s.scope, ErrInvalidName)
	}

	root := s.baseDir
	if root == "" {
		var err error
		root, err = configRoot()
		if err != nil {
			return nil, err
		}
	}

	dir := filepath.Join(root, name, "v"+strconv.FormatUint(version, 10))
	if s.scope != "" {
		dir = filepath.Join(dir, s.scope)
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	log := s.log
	if log == nil {
		log = zap.NewNop()
	}

	return &Config{
		name:    name,
		version: version,
		scope:   s.scope,
		dir:     dir,
		log:     log,
	}, nil
}

// Dir returns the resolved configuration directory.
func (c *Config) Dir() string { return c.dir }

// Name returns the application name the store was created with.
func (c *Config) Name() string { return c.name }

// Version returns the store version.
func (c *Config) Version() uint64 { return c.version }

// Scope returns the scope, or the empty string when none is set.
func (c *Config) Scope() string { return c.scope }

// Path returns the absolute file path the item for key maps to. The file
// does not have to exist.
func (c *Config) Path(key string, format Format) (string, error) {
	if !pathutil.Safe(key) {
		return "", fmt.Errorf("key %q: %w", key, ErrInvalidName)
	}
	return filepath.Join(c.dir, format.filename(key)), nil
}

// Clean removes the configuration directory and every item in it. A later
// Set recreates the directory.
func (c *Config) Clean() error {
	if err := os.RemoveAll(c.dir); err != nil {
		return fmt.Errorf("failed to remove config directory: %w", err)
	}
	c.log.Info("removed config directory", zap.String("dir", c.dir))
	return nil
}

// ensureDir recreates the store directory if something removed it after New.
func (c *Config) ensureDir() error {
	if err := os.MkdirAll(c.dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}
