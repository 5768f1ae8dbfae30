package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
)

// ErrIncompatibleSchema is returned when a config file declares a
// schema version this binary does not understand.
var ErrIncompatibleSchema = errors.New("incompatible config schema version")

// schemaConstraint accepts any 1.x schema.
const schemaConstraint = "^1"

// Load returns the effective configuration: built-in defaults with the
// config file at path (when it exists) merged on top. A missing file is
// not an error; a malformed or schema-incompatible file is.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if err := ShallowMergeYAML(&cfg, path); err != nil {
		return Config{}, err
	}
	if err := checkSchemaVersion(cfg.SchemaVersion); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	cfg.Normalize()
	return cfg, nil
}

// checkSchemaVersion validates a declared schema version against the
// versions this binary supports. An empty declaration is treated as
// current, so hand-written minimal files keep working.
func checkSchemaVersion(declared string) error {
	if declared == "" {
		return nil
	}

	v, err := semver.NewVersion(declared)
	if err != nil {
		return fmt.Errorf("%w: cannot parse %q", ErrIncompatibleSchema, declared)
	}

	constraint, err := semver.NewConstraint(schemaConstraint)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: file declares %s, supported is %s", ErrIncompatibleSchema, declared, schemaConstraint)
	}
	return nil
}

// defaultFileTemplate is written by `pageflip config init`.
const defaultFileTemplate = `# pageflip configuration
schema_version: "%s"

pagination:
  # Items per page (minimum 1).
  page_size: %d
  # Pages shown on each side of the current page.
  inner_window: %d
  # Pages pinned to each end of the page range.
  outer_window: %d

logging:
  # debug, info, warn, error
  level: %s
  # console or json
  format: %s
`

// WriteDefault writes a commented default config file at path, creating
// parent directories as needed. It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	cfg := Default()
	content := fmt.Sprintf(defaultFileTemplate,
		cfg.SchemaVersion,
		cfg.Pagination.PageSize,
		cfg.Pagination.InnerWindow,
		cfg.Pagination.OuterWindow,
		cfg.Logging.Level,
		cfg.Logging.Format,
	)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
