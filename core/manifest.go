package core

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	manifestPrefix = "appmanifest_"
	manifestSuffix = ".acf"
)

type Game struct {
	Id         int
	Name       string
	InstallDir string
}

func ManifestFileName(gameId int) string {
	return fmt.Sprintf("%v%d%v", manifestPrefix, gameId, manifestSuffix)
}

// parseManifestFileName returns the id encoded in an appmanifest_<id>.acf name.
func parseManifestFileName(name string) (int, bool) {
	if !strings.HasPrefix(name, manifestPrefix) || !strings.HasSuffix(name, manifestSuffix) {
		return 0, false
	}

	idPart := strings.TrimSuffix(strings.TrimPrefix(name, manifestPrefix), manifestSuffix)
	id, err := strconv.Atoi(idPart)
	if err != nil || id < 0 {
		return 0, false
	}

	// "0440" or "+440" parse fine but GetGame would read appmanifest_440.acf
	if ManifestFileName(id) != name {
		return 0, false
	}

	return id, true
}

// GetGame reads the manifest of gameId from steamAppsPath. A missing file, a
// manifest declaring another appID or one lacking name/installdir all count as
// absent. So does an installdir without a usable last path element, which
// would otherwise resolve to the common folder or one of its parents.
func GetGame(localFs LocalFs, steamAppsPath string, gameId int) (*Game, bool) {
	manifestPath := filepath.Join(steamAppsPath, ManifestFileName(gameId))
	content, err := localFs.ReadFile(manifestPath)
	if err != nil {
		Logger.Debug("manifest unreadable", "path", manifestPath, "err", err)
		return nil, false
	}

	manifest := string(content)
	appId, ok := FindValue(manifest, "appID")
	if !ok {
		// newer Steam clients write the key in lower case
		appId, ok = FindValue(manifest, "appid")
	}
	if !ok {
		return nil, false
	}

	declaredId, err := strconv.Atoi(appId)
	if err != nil || declaredId != gameId {
		Logger.Debug("manifest declares a different appID", "path", manifestPath, "appID", appId)
		return nil, false
	}

	name, ok := FindValue(manifest, "name")
	if !ok || name == "" {
		return nil, false
	}

	installDir, ok := FindValue(manifest, "installdir")
	if !ok {
		return nil, false
	}

	installDir = baseName(installDir)
	if installDir == "" || installDir == "." || installDir == ".." {
		Logger.Debug("manifest installdir is not a folder name", "path", manifestPath)
		return nil, false
	}

	return &Game{
		Id:         gameId,
		Name:       name,
		InstallDir: installDir,
	}, true
}

// installdir may be written with either separator regardless of the host OS
func baseName(path string) string {
	path = strings.TrimRight(path, `/\`)
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	return path
}
