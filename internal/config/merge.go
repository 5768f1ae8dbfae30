package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keySchemaVersion = "schema_version"
	keyPagination    = "pagination"
	keyLogging       = "logging"
)

// knownTopLevelKeys lists the YAML keys that correspond to exported
// Config fields. Keys not in this list are silently ignored during
// merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keySchemaVersion: true,
	keyPagination:    true,
	keyLogging:       true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Keys present in the overlay replace entire
// sections in the target. Keys absent in the overlay are left unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	// Discover which top-level keys are present in the overlay.
	var overlay map[string]interface{}
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, value := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}

		// Re-marshal the single section so we can unmarshal it onto the
		// strongly-typed target field.
		sectionBytes, marshalErr := yaml.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("re-marshalling overlay section %q: %w", key, marshalErr)
		}

		if applyErr := mergeSection(target, key, sectionBytes); applyErr != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, applyErr)
		}
	}

	return nil
}

// mergeSection unmarshals one overlay section into the correct field of
// target based on the given key name. Each section is unmarshalled into
// a fresh zero-value to ensure complete replacement (yaml.Unmarshal
// merges into existing values, which would violate shallow-merge
// semantics).
func mergeSection(target *Config, key string, sectionBytes []byte) error {
	switch key {
	case keySchemaVersion:
		var v string
		if err := yaml.Unmarshal(sectionBytes, &v); err != nil {
			return err
		}
		target.SchemaVersion = v
		return nil
	case keyPagination:
		var v PaginationConfig
		if err := yaml.Unmarshal(sectionBytes, &v); err != nil {
			return err
		}
		target.Pagination = v
		return nil
	case keyLogging:
		var v LoggingConfig
		if err := yaml.Unmarshal(sectionBytes, &v); err != nil {
			return err
		}
		target.Logging = v
		return nil
	default:
		return nil
	}
}
