package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func manifestContent(id int, name string, installDir string) string {
	return fmt.Sprintf(`"AppState"
{
	"appID"		"%d"
	"Universe"		"1"
	"name"		"%v"
	"StateFlags"		"4"
	"installdir"		"%v"
	"LastUpdated"		"1600000000"
	"SizeOnDisk"		"1048576"
	"buildid"		"5129584"
}
`, id, name, installDir)
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// installGame lays out a manifest and a small data directory the way Steam does.
func installGame(t *testing.T, library string, id int, name string, installDir string) {
	t.Helper()
	steamApps := filepath.Join(library, SteamAppsDir)
	writeFile(t, filepath.Join(steamApps, ManifestFileName(id)), manifestContent(id, name, installDir))
	writeFile(t, filepath.Join(steamApps, CommonDir, installDir, "game.exe"), "binary "+name)
	writeFile(t, filepath.Join(steamApps, CommonDir, installDir, "data", "pak01.vpk"), strings.Repeat(name, 64))
}

func writeRegistry(t *testing.T, steamPath string, libraries ...string) {
	t.Helper()
	var b strings.Builder
	b.WriteString("\"InstallConfigStore\"\n{\n\t\"Software\"\n\t{\n\t\t\"Valve\"\n\t\t{\n\t\t\t\"Steam\"\n\t\t\t{\n")
	for i, library := range libraries {
		fmt.Fprintf(&b, "\t\t\t\t\"BaseInstallFolder_%d\"\t\t\"%v\"\n", i+1, strings.ReplaceAll(library, `\`, `\\`))
	}
	b.WriteString("\t\t\t}\n\t\t}\n\t}\n}\n")
	writeFile(t, ConfigPath(steamPath), b.String())
}

// makeLibraries creates a Steam root plus extra libraries and returns them in
// registry order.
func makeLibraries(t *testing.T, extra int) Libraries {
	t.Helper()
	steamPath := t.TempDir()
	libraries := Libraries{steamPath}
	for i := 0; i < extra; i++ {
		library := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(library, SteamAppsDir), 0o755))
		libraries = append(libraries, library)
	}
	require.NoError(t, os.MkdirAll(filepath.Join(steamPath, SteamAppsDir), 0o755))
	writeRegistry(t, steamPath, libraries[1:]...)
	return libraries
}

// snapshot records every entry below the given roots with its content.
func snapshot(t *testing.T, roots ...string) map[string]string {
	t.Helper()
	result := map[string]string{}
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				result[path] = "<dir>"
				return nil
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			result[path] = string(content)
			return nil
		})
		require.NoError(t, err)
	}
	return result
}
