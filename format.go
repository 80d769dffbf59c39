package libset

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"gopkg.in/yaml.v3"
)

// Format identifies the on-disk representation of a configuration item. Its
// value doubles as the file extension, except for Plain which stores items
// without one.
type Format string

// Formats with a built-in codec. JSON is the default format of the library;
// further formats can be added with RegisterCodec.
const (
	JSON  Format = "json"
	TOML  Format = "toml"
	YAML  Format = "yaml"
	JSON5 Format = "json5"

	// Plain is raw string content stored without a file extension. Plain
	// items are handled by GetPlain and SetPlain rather than a codec.
	Plain Format = "plain"
)

// filename returns the file name for key in this format.
func (f Format) filename(key string) string {
	if f == Plain {
		return key
	}
	return key + "." + string(f)
}

// Codec serializes values to and from the byte representation of one format.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var (
	codecMu sync.RWMutex
	codecs  = map[Format]Codec{
		JSON:  jsonCodec{},
		TOML:  tomlCodec{},
		YAML:  yamlCodec{},
		JSON5: json5Codec{},
	}
)

// RegisterCodec makes a codec available to Get and Set under the given
// format; the format value becomes the file extension. Registering a format
// twice replaces the earlier codec. RegisterCodec panics on an empty format
// or a nil codec.
func RegisterCodec(f Format, c Codec) {
	if f == "" || c == nil {
		panic("libset: RegisterCodec with empty format or nil codec")
	}
	codecMu.Lock()
	defer codecMu.Unlock()
	codecs[f] = c
}

func lookupCodec(f Format) (Codec, error) {
	codecMu.RLock()
	defer codecMu.RUnlock()
	c, ok := codecs[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return c, nil
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.MarshalIndent(v, "", "  ") }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

type tomlCodec struct{}

func (tomlCodec) Marshal(v any) ([]byte, error)      { return toml.Marshal(v) }
func (tomlCodec) Unmarshal(data []byte, v any) error { return toml.Unmarshal(data, v) }

type yamlCodec struct{}

func (yamlCodec) Marshal(v any) ([]byte, error)      { return yaml.Marshal(v) }
func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

// json5Codec writes strict JSON, which is always valid JSON5, and reads the
// JSON5 superset, so hand-edited items may carry comments and trailing
// commas.
type json5Codec struct{}

func (json5Codec) Marshal(v any) ([]byte, error)      { return json.MarshalIndent(v, "", "  ") }
func (json5Codec) Unmarshal(data []byte, v any) error { return json5.Unmarshal(data, v) }
