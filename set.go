package libset

import (
	"fmt"

	"github.com/google/renameio/v2"
	"go.uber.org/zap"
)

// Set serializes v with the codec for the given format and writes it to the
// item file for key. The write is atomic: content goes to a temporary file
// in the store directory which is then renamed over the destination, so a
// reader never observes a partially written item and a failed or interrupted
// write leaves any previous content intact.
func (c *Config) Set(key string, format Format, v any) error {
	codec, err := lookupCodec(format)
	if err != nil {
		return err
	}

	path, err := c.Path(key, format)
	if err != nil {
		return err
	}

	data, err := codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s value for key %q: %w", format, key, err)
	}

	if err := c.ensureDir(); err != nil {
		return err
	}
	if err := renameio.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	c.log.Info("file written", zap.String("path", path))
	return nil
}

// SetJSON writes v as a JSON item.
func (c *Config) SetJSON(key string, v any) error { return c.Set(key, JSON, v) }

// SetTOML writes v as a TOML item.
func (c *Config) SetTOML(key string, v any) error { return c.Set(key, TOML, v) }

// SetYAML writes v as a YAML item.
func (c *Config) SetYAML(key string, v any) error { return c.Set(key, YAML, v) }

// SetJSON5 writes v as a JSON5 item.
func (c *Config) SetJSON5(key string, v any) error { return c.Set(key, JSON5, v) }

// SetPlain writes value as a plain item, stored without a file extension,
// with the same atomic write as Set.
func (c *Config) SetPlain(key, value string) error {
	path, err := c.Path(key, Plain)
	if err != nil {
		return err
	}

	if err := c.ensureDir(); err != nil {
		return err
	}
	if err := renameio.WriteFile(path, []byte(value), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	c.log.Info("file written", zap.String("path", path))
	return nil
}
