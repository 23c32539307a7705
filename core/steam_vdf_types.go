package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/andygrunwald/vdf"
)

type AppManifest struct {
	AppState struct {
		AppId       string `json:"appid"`
		Name        string `json:"name"`
		InstallDir  string `json:"installdir"`
		SizeOnDisk  string `json:"SizeOnDisk"`
		BuildId     string `json:"buildid"`
		LastUpdated string `json:"LastUpdated"`
	} `json:"AppState"`
}

type GameDetails struct {
	Game         *Game
	LibraryIndex int
	LibraryPath  string
	DataPath     string
	SizeOnDisk   uint64
	BuildId      string
	LastUpdated  time.Time
}

func ParseAppManifest(content []byte) (*AppManifest, error) {
	parsed, err := vdf.NewParser(bytes.NewReader(content)).Parse()
	if err != nil {
		return nil, err
	}

	jsonStr, err := json.Marshal(parsed)
	if err != nil {
		return nil, err
	}

	manifest := &AppManifest{}
	if err := json.Unmarshal(jsonStr, manifest); err != nil {
		return nil, err
	}

	return manifest, nil
}

// GetGameDetails looks gameId up in every library, in order, and reads the
// complete manifest of the first valid match.
func GetGameDetails(localFs LocalFs, gameId int, libraries Libraries) (*GameDetails, error) {
	for i, libraryPath := range libraries {
		gameIds, err := GetGameIds(localFs, i, libraries)
		if err != nil || !slices.Contains(gameIds, gameId) {
			continue
		}

		steamAppsPath := filepath.Join(libraryPath, SteamAppsDir)
		game, ok := GetGame(localFs, steamAppsPath, gameId)
		if !ok {
			continue
		}

		content, err := localFs.ReadFile(filepath.Join(steamAppsPath, ManifestFileName(gameId)))
		if err != nil {
			return nil, err
		}

		manifest, err := ParseAppManifest(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse manifest of %d: %w", gameId, err)
		}

		details := &GameDetails{
			Game:         game,
			LibraryIndex: i,
			LibraryPath:  libraryPath,
			DataPath:     filepath.Join(steamAppsPath, CommonDir, game.InstallDir),
			BuildId:      manifest.AppState.BuildId,
		}

		if size, err := strconv.ParseUint(manifest.AppState.SizeOnDisk, 10, 64); err == nil {
			details.SizeOnDisk = size
		}
		if updated, err := strconv.ParseInt(manifest.AppState.LastUpdated, 10, 64); err == nil && updated > 0 {
			details.LastUpdated = time.Unix(updated, 0)
		}

		return details, nil
	}

	return nil, ErrGameNotFound
}
