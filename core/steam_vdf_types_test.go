package core

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppManifest(t *testing.T) {
	manifest, err := ParseAppManifest([]byte(manifestContent(440, "Team Fortress 2", `common\\TF2`)))
	require.NoError(t, err)

	assert.Equal(t, "440", manifest.AppState.AppId)
	assert.Equal(t, "Team Fortress 2", manifest.AppState.Name)
	assert.Equal(t, `common\TF2`, manifest.AppState.InstallDir)
	assert.Equal(t, "1048576", manifest.AppState.SizeOnDisk)
	assert.Equal(t, "5129584", manifest.AppState.BuildId)
}

func TestGetGameDetails(t *testing.T) {
	libraries := makeLibraries(t, 2)
	installGame(t, libraries[2], 440, "Team Fortress 2", "TF2")

	details, err := GetGameDetails(GetDefaultLocalFs(), 440, libraries)
	require.NoError(t, err)
	assert.Equal(t, 2, details.LibraryIndex)
	assert.Equal(t, libraries[2], details.LibraryPath)
	assert.Equal(t, filepath.Join(libraries[2], SteamAppsDir, CommonDir, "TF2"), details.DataPath)
	assert.Equal(t, uint64(1048576), details.SizeOnDisk)
	assert.Equal(t, "5129584", details.BuildId)
	assert.True(t, details.LastUpdated.Equal(time.Unix(1600000000, 0)))
}

func TestGetGameDetails_SkipsInvalidManifests(t *testing.T) {
	libraries := makeLibraries(t, 1)
	writeFile(t, filepath.Join(libraries[0], SteamAppsDir, ManifestFileName(440)), manifestContent(1, "Other", "Other"))
	installGame(t, libraries[1], 440, "Team Fortress 2", "TF2")

	details, err := GetGameDetails(GetDefaultLocalFs(), 440, libraries)
	require.NoError(t, err)
	assert.Equal(t, 1, details.LibraryIndex)
}

func TestGetGameDetails_NotFound(t *testing.T) {
	libraries := makeLibraries(t, 1)

	_, err := GetGameDetails(GetDefaultLocalFs(), 440, libraries)
	assert.ErrorIs(t, err, ErrGameNotFound)
}
