//go:build darwin

package platform

import (
	"os"
	"path/filepath"
)

func GetSteamPath() (string, bool) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}

	return firstExistingDir(filepath.Join(homedir, "Library", "Application Support", "Steam"))
}
