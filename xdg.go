package libset

import "github.com/adrg/xdg"

// configRoot returns the XDG-compliant configuration root.
// Typically ~/.config on Linux, platform application-data folders elsewhere.
func configRoot() (string, error) {
	if xdg.ConfigHome == "" {
		return "", ErrNoConfigDir
	}
	return xdg.ConfigHome, nil
}
