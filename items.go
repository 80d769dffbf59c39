package libset

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Has reports whether an item with the given key and format exists. Keys
// that fail validation report false.
func (c *Config) Has(key string, format Format) bool {
	path, err := c.Path(key, format)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// HasJSON reports whether a JSON item exists for key.
func (c *Config) HasJSON(key string) bool { return c.Has(key, JSON) }

// HasTOML reports whether a TOML item exists for key.
func (c *Config) HasTOML(key string) bool { return c.Has(key, TOML) }

// HasYAML reports whether a YAML item exists for key.
func (c *Config) HasYAML(key string) bool { return c.Has(key, YAML) }

// HasJSON5 reports whether a JSON5 item exists for key.
func (c *Config) HasJSON5(key string) bool { return c.Has(key, JSON5) }

// HasPlain reports whether a plain item exists for key.
func (c *Config) HasPlain(key string) bool { return c.Has(key, Plain) }

// Delete removes the item stored under key. Deleting an item that does not
// exist reports ErrNotFound.
func (c *Config) Delete(key string, format Format) error {
	path, err := c.Path(key, format)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("key %q: %w", key, ErrNotFound)
		}
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

// Keys returns the sorted keys of every item of one format in the store
// directory, extensions stripped. For Plain it lists entries without an
// extension; plain keys that contain a dot are indistinguishable from
// extension-carrying items and are not listed. A cleaned store lists no
// keys.
func (c *Config) Keys(format Format) ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", c.dir, err)
	}

	ext := "." + string(format)
	var keys []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if format == Plain {
			if !strings.Contains(name, ".") {
				keys = append(keys, name)
			}
			continue
		}
		if key, ok := strings.CutSuffix(name, ext); ok && key != "" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
