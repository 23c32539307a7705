package core

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryText(indices ...int) string {
	var b strings.Builder
	b.WriteString("\"InstallConfigStore\"\n{\n")
	for _, i := range indices {
		fmt.Fprintf(&b, "\t\"BaseInstallFolder_%d\"\t\t\"/mnt/library%d\"\n", i, i)
	}
	b.WriteString("}\n")
	return b.String()
}

func TestSearchLibraryPaths_Sequential(t *testing.T) {
	for n := 0; n <= 5; n++ {
		indices := []int{}
		for i := 1; i <= n; i++ {
			indices = append(indices, i)
		}

		paths := SearchLibraryPaths(registryText(indices...))
		assert.Len(t, paths, n)
		for i, path := range paths {
			assert.Equal(t, fmt.Sprintf("/mnt/library%d", i+1), path)
		}
	}
}

func TestSearchLibraryPaths_StopsAtGap(t *testing.T) {
	paths := SearchLibraryPaths(registryText(1, 2, 4, 5))
	assert.Equal(t, []string{"/mnt/library1", "/mnt/library2"}, paths)

	paths = SearchLibraryPaths(registryText(2, 3))
	assert.Empty(t, paths)
}

func TestSearchLibraryPaths_Normalizes(t *testing.T) {
	paths := SearchLibraryPaths(`"BaseInstallFolder_1" "/mnt//games/./steam/"`)
	assert.Equal(t, []string{"/mnt/games/steam"}, paths)
}

func TestGetLibraryPaths(t *testing.T) {
	libraries := makeLibraries(t, 2)

	registry := MakeLibraryRegistry(libraries[0], GetDefaultLocalFs(), false)
	found, err := registry.GetLibraryPaths()
	require.NoError(t, err)
	assert.Equal(t, libraries, found)
}

func TestGetLibraryPaths_MissingRegistry(t *testing.T) {
	registry := MakeLibraryRegistry(t.TempDir(), GetDefaultLocalFs(), false)
	_, err := registry.GetLibraryPaths()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestGetLibraryPaths_LibraryFolders(t *testing.T) {
	libraries := makeLibraries(t, 1)
	other := t.TempDir()

	writeFile(t, LibraryFoldersPath(libraries[0]), fmt.Sprintf(`"libraryfolders"
{
	"0"
	{
		"path"		"%v"
		"apps"
		{
			"228980"		"169748719"
		}
	}
	"2"
	{
		"path"		"%v"
	}
	"1"
	{
		"path"		"%v"
	}
}
`, libraries[0], other, libraries[1]))

	found, err := MakeLibraryRegistry(libraries[0], GetDefaultLocalFs(), true).GetLibraryPaths()
	require.NoError(t, err)
	assert.Equal(t, Libraries{libraries[0], libraries[1], other}, found)

	found, err = MakeLibraryRegistry(libraries[0], GetDefaultLocalFs(), false).GetLibraryPaths()
	require.NoError(t, err)
	assert.Equal(t, libraries, found, "libraryfolders.vdf is ignored unless enabled")
}

func TestGetLibraryPaths_LegacyLibraryFolders(t *testing.T) {
	libraries := makeLibraries(t, 0)
	other := t.TempDir()

	writeFile(t, LibraryFoldersPath(libraries[0]), fmt.Sprintf(`"LibraryFolders"
{
	"TimeNextStatsReport"		"1561832478"
	"ContentStatsID"		"-158337411110787451"
	"1"		"%v"
}
`, other))

	found, err := MakeLibraryRegistry(libraries[0], GetDefaultLocalFs(), true).GetLibraryPaths()
	require.NoError(t, err)
	assert.Equal(t, Libraries{libraries[0], other}, found)
}

func TestGetLibraryPaths_MissingLibraryFolders(t *testing.T) {
	libraries := makeLibraries(t, 1)

	found, err := MakeLibraryRegistry(libraries[0], GetDefaultLocalFs(), true).GetLibraryPaths()
	require.NoError(t, err)
	assert.Equal(t, libraries, found)
}

func TestLibraries_Get(t *testing.T) {
	libraries := Libraries{"/steam", "/games"}

	path, err := libraries.SteamAppsPath(1)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/games", SteamAppsDir), path)

	_, err = libraries.Get(2)
	assert.ErrorIs(t, err, ErrNoSuchLibrary)
	_, err = libraries.Get(-1)
	assert.ErrorIs(t, err, ErrNoSuchLibrary)
}
