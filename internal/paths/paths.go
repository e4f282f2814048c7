package paths

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the base directory when set.
const EnvHome = "MESSENGER_HOME"

// BaseDir returns $MESSENGER_HOME, or ~/.messenger.
func BaseDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".messenger")
}

// ConfigPath returns the config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// LogDir returns the log directory.
func LogDir() string {
	return filepath.Join(BaseDir(), "logs")
}

// LogPath returns the log file path.
func LogPath() string {
	return filepath.Join(LogDir(), "messenger.log")
}

// EnsureDir creates the directory tree with owner-only permissions.
func EnsureDir() error {
	for _, d := range []string{BaseDir(), LogDir()} {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
