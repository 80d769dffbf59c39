// Package libset stores, manages and retrieves per-application configuration
// files.
//
// A store is created from an application name, a version and an optional
// scope. Creating it resolves a directory following the operating system's
// configuration convention ($XDG_CONFIG_HOME or ~/.config on Linux, the
// platform application-data folder elsewhere) and creates the directory when
// it is missing:
//
//	cfg, err := libset.New("org.example.Demo", 1)
//	if err != nil {
//		return err
//	}
//
// Every item is a single file inside that directory, named after its key and
// format. Writing serializes the value and replaces the file atomically;
// reading parses the file into the caller's type:
//
//	type Colors struct {
//		Accent string `json:"accent"`
//	}
//
//	err := cfg.SetJSON("colors", Colors{Accent: "#7a7af9"})
//	// => $HOME/.config/org.example.Demo/v1/colors.json
//
//	var colors Colors
//	err = cfg.GetJSON("colors", &colors)
//
// # Formats
//
// JSON, TOML, YAML and JSON5 are built in; Plain stores raw strings without
// an extension. Additional formats can be plugged in with RegisterCodec.
//
// # Concurrency
//
// Operations are synchronous and block until the filesystem call completes.
// Item writes are atomic, so concurrent readers never observe a torn file,
// but two concurrent writers to the same key race and the last rename wins.
// Callers that need read-modify-write guarantees must coordinate externally.
package libset
