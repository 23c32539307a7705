package core

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/andygrunwald/vdf"
)

const (
	SteamAppsDir       = "steamapps"
	CommonDir          = "common"
	libraryKeyTemplate = "BaseInstallFolder_%d"
)

var ErrNoSuchLibrary = errors.New("no such library")

// Libraries holds the Steam library roots. Index 0 is always the Steam root.
// Indices are only meaningful until the next refresh.
type Libraries []string

func (l Libraries) Get(index int) (string, error) {
	if index < 0 || index >= len(l) {
		return "", fmt.Errorf("%w: %d", ErrNoSuchLibrary, index)
	}

	return l[index], nil
}

func (l Libraries) SteamAppsPath(index int) (string, error) {
	root, err := l.Get(index)
	if err != nil {
		return "", err
	}

	return filepath.Join(root, SteamAppsDir), nil
}

func ConfigPath(steamPath string) string {
	return filepath.Join(steamPath, "config", "config.vdf")
}

func LibraryFoldersPath(steamPath string) string {
	return filepath.Join(steamPath, SteamAppsDir, "libraryfolders.vdf")
}

// SearchLibraryPaths probes BaseInstallFolder_1, BaseInstallFolder_2, ... and
// stops at the first missing key. Entries after a gap are never returned.
func SearchLibraryPaths(config string) []string {
	paths := []string{}
	for i := 1; ; i++ {
		value, ok := FindValue(config, fmt.Sprintf(libraryKeyTemplate, i))
		if !ok {
			return paths
		}

		paths = append(paths, normalizePath(value))
	}
}

type LibraryRegistry interface {
	GetLibraryPaths() (Libraries, error)
}

type FsLibraryRegistry struct {
	steamPath             string
	fs                    LocalFs
	includeLibraryFolders bool
}

func MakeLibraryRegistry(steamPath string, localFs LocalFs, includeLibraryFolders bool) *FsLibraryRegistry {
	return &FsLibraryRegistry{
		steamPath:             steamPath,
		fs:                    localFs,
		includeLibraryFolders: includeLibraryFolders,
	}
}

func (r *FsLibraryRegistry) GetLibraryPaths() (Libraries, error) {
	config, err := r.fs.ReadFile(ConfigPath(r.steamPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read library registry: %w", err)
	}

	libraries := Libraries{r.steamPath}
	libraries = append(libraries, SearchLibraryPaths(string(config))...)

	if r.includeLibraryFolders {
		extra, err := r.readLibraryFolders()
		if err != nil {
			Logger.Warn("ignoring libraryfolders.vdf", "err", err)
		}

		for _, path := range extra {
			if !containsPath(libraries, path) {
				libraries = append(libraries, path)
			}
		}
	}

	Logger.Debug("refreshed libraries", "count", len(libraries))
	return libraries, nil
}

// readLibraryFolders understands both layouts Steam has used for
// libraryfolders.vdf: "N" "path" pairs and "N" { "path" "..." } blocks.
func (r *FsLibraryRegistry) readLibraryFolders() ([]string, error) {
	content, err := r.fs.ReadFile(LibraryFoldersPath(r.steamPath))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	parsed, err := vdf.NewParser(bytes.NewReader(content)).Parse()
	if err != nil {
		return nil, err
	}

	var folders map[string]any
	for key, value := range parsed {
		if strings.EqualFold(key, "libraryfolders") {
			folders, _ = value.(map[string]any)
		}
	}

	type folder struct {
		order int
		path  string
	}
	found := []folder{}
	for key, value := range folders {
		order, err := strconv.Atoi(key)
		if err != nil {
			continue
		}

		var path string
		switch v := value.(type) {
		case string:
			path = v
		case map[string]any:
			path, _ = v["path"].(string)
		}

		if path != "" {
			found = append(found, folder{order: order, path: filepath.Clean(path)})
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].order < found[j].order })

	result := make([]string, 0, len(found))
	for _, f := range found {
		result = append(result, f.path)
	}
	return result, nil
}

func containsPath(libraries Libraries, path string) bool {
	for _, library := range libraries {
		if filepath.Clean(library) == path {
			return true
		}
	}
	return false
}
