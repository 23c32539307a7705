//go:build linux

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

	return firstExistingDir(
		filepath.Join(homedir, ".steam", "steam"),
		filepath.Join(homedir, ".local", "share", "Steam"),
		filepath.Join(homedir, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
	)
}
