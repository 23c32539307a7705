//go:build windows

package platform

import (
	"runtime"

	"golang.org/x/sys/windows/registry"
)

// GetSteamPath reads the install location the Steam installer records in the
// registry.
func GetSteamPath() (string, bool) {
	softwareRoot := `SOFTWARE\`
	if runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64" {
		softwareRoot = `SOFTWARE\Wow6432Node\`
	}

	if path, ok := readStringValue(registry.LOCAL_MACHINE, softwareRoot+`Valve\Steam`, "InstallPath"); ok {
		return path, true
	}

	return readStringValue(registry.CURRENT_USER, `SOFTWARE\Valve\Steam`, "SteamPath")
}

func readStringValue(root registry.Key, path string, name string) (string, bool) {
	key, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer key.Close()

	value, _, err := key.GetStringValue(name)
	if err != nil || value == "" {
		return "", false
	}

	return value, true
}
