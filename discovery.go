// FILE: lixenwraith/configfile/discovery.go
package configfile

import (
	"os"
	"path/filepath"
)

// Default file names of the primary and backup config files
const (
	DefaultFileName   = "sm64config.txt"
	DefaultBackupName = "sm64config-backup.txt"
	DefaultAppName    = "sm64coopdx"
)

// UserDataDir returns the directory config files live in when none is
// configured: $XDG_DATA_HOME/<app>, then $HOME/.local/share/<app>, then the
// working directory.
func UserDataDir(appName string) string {
	if appName == "" {
		appName = DefaultAppName
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".local", "share", appName)
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}
