package core

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const perfsFileName = "librarian_perfs.json"

type LibrarianPerfs struct {
	SteamPath      string `json:"steam_path,omitempty"`
	LibraryFolders bool   `json:"library_folders"`
	PlainPrompt    bool   `json:"plain_prompt"`
	LogLocation    string `json:"log_location,omitempty"`
}

func GetLibrarianPerfsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, APP_NAME, perfsFileName), nil
}

func ReadLibrarianPerfs(path string) (*LibrarianPerfs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	perfs := &LibrarianPerfs{}
	if err := json.Unmarshal(data, perfs); err != nil {
		return nil, err
	}
	return perfs, nil
}

func WriteLibrarianPerfs(path string, perfs *LibrarianPerfs) error {
	data, err := json.MarshalIndent(perfs, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// GetCurrentLibrarianPerfsOrDefault never fails; a missing or corrupt file
// yields the defaults.
func GetCurrentLibrarianPerfsOrDefault() *LibrarianPerfs {
	path, err := GetLibrarianPerfsPath()
	if err != nil {
		return &LibrarianPerfs{}
	}

	perfs, err := ReadLibrarianPerfs(path)
	if err != nil {
		Logger.Debug("using default settings", "path", path, "err", err)
		return &LibrarianPerfs{}
	}

	return perfs
}

func CommitLibrarianPerfs(perfs *LibrarianPerfs) error {
	path, err := GetLibrarianPerfsPath()
	if err != nil {
		return err
	}

	return WriteLibrarianPerfs(path, perfs)
}
