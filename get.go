package libset

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Get reads the item stored under key in the given format and deserializes
// it into v, which must be a non-nil pointer. A missing item reports
// ErrNotFound.
func (c *Config) Get(key string, format Format, v any) error {
	codec, err := lookupCodec(format)
	if err != nil {
		return err
	}

	path, err := c.Path(key, format)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("key %q: %w", key, ErrNotFound)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := codec.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	c.log.Info("retrieved file", zap.String("path", path))
	return nil
}

// GetJSON reads a JSON item into v.
func (c *Config) GetJSON(key string, v any) error { return c.Get(key, JSON, v) }

// GetTOML reads a TOML item into v.
func (c *Config) GetTOML(key string, v any) error { return c.Get(key, TOML, v) }

// GetYAML reads a YAML item into v.
func (c *Config) GetYAML(key string, v any) error { return c.Get(key, YAML, v) }

// GetJSON5 reads a JSON5 item into v.
func (c *Config) GetJSON5(key string, v any) error { return c.Get(key, JSON5, v) }

// GetPlain reads a plain item and returns its content as a string. Plain
// items are stored without a file extension.
func (c *Config) GetPlain(key string) (string, error) {
	path, err := c.Path(key, Plain)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("key %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(data), nil
}

// GetAs reads the item stored under key in the given format and returns it
// as T.
func GetAs[T any](c *Config, key string, format Format) (T, error) {
	var v T
	err := c.Get(key, format, &v)
	return v, err
}
