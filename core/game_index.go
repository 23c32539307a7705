package core

import (
	"errors"
	"io/fs"
	"sort"
)

func GetGameIds(localFs LocalFs, index int, libraries Libraries) ([]int, error) {
	steamAppsPath, err := libraries.SteamAppsPath(index)
	if err != nil {
		return nil, err
	}

	entries, err := localFs.ReadDir(steamAppsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return []int{}, nil
	}
	if err != nil {
		return nil, err
	}

	gameIds := []int{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if id, ok := parseManifestFileName(entry.Name()); ok {
			gameIds = append(gameIds, id)
		}
	}

	return gameIds, nil
}

// GetGames resolves every manifest of a library, skipping the ones that do
// not parse, sorted by display name.
func GetGames(localFs LocalFs, index int, libraries Libraries) ([]*Game, error) {
	gameIds, err := GetGameIds(localFs, index, libraries)
	if err != nil {
		return nil, err
	}

	steamAppsPath, _ := libraries.SteamAppsPath(index)
	games := []*Game{}
	for _, id := range gameIds {
		if game, ok := GetGame(localFs, steamAppsPath, id); ok {
			games = append(games, game)
		}
	}

	sort.Slice(games, func(i, j int) bool {
		if games[i].Name == games[j].Name {
			return games[i].Id < games[j].Id
		}
		return games[i].Name < games[j].Name
	})

	return games, nil
}
