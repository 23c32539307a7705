package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

var ErrDestinationExists = errors.New("destination already contains an entry with the same name")

// SourceCleanupError reports a cross-device move whose copy completed but
// whose source could not be removed afterwards. The entry exists at both Src
// and Dst.
type SourceCleanupError struct {
	Src string
	Dst string
	Err error
}

func (e *SourceCleanupError) Error() string {
	return fmt.Sprintf("copied %v to %v but failed to remove the source: %v", e.Src, e.Dst, e.Err)
}

func (e *SourceCleanupError) Unwrap() error {
	return e.Err
}

var removeAll = os.RemoveAll

type LocalFs interface {
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]fs.DirEntry, error)
	Lstat(path string) (fs.FileInfo, error)
	MkdirAll(path string, perm fs.FileMode) error
	// Move relocates one file or directory tree. dst must not exist.
	Move(src string, dst string) error
}

type DefaultLocalFs struct {
}

var defaultFs *DefaultLocalFs

func GetDefaultLocalFs() *DefaultLocalFs {
	if defaultFs == nil {
		defaultFs = &DefaultLocalFs{}
	}

	return defaultFs
}

func (d *DefaultLocalFs) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (d *DefaultLocalFs) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

func (d *DefaultLocalFs) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

func (d *DefaultLocalFs) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Move renames src to dst. When the two paths live on different devices the
// tree is copied and the source removed afterwards; a failed copy is cleaned
// up and leaves src untouched. A failed removal yields *SourceCleanupError.
func (d *DefaultLocalFs) Move(src string, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%w: %v", ErrDestinationExists, dst)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	err := os.Rename(src, dst)
	if err == nil || !isCrossDeviceError(err) {
		return err
	}

	Logger.Debug("rename crosses devices, copying", "src", src, "dst", dst)
	return copyAndRemove(src, dst)
}

func copyAndRemove(src string, dst string) error {
	if err := copyTree(src, dst); err != nil {
		if rmErr := removeAll(dst); rmErr != nil {
			Logger.Error("failed to clean up partial copy", "dst", dst, "err", rmErr)
		}
		return fmt.Errorf("copy %v to %v: %w", src, dst, err)
	}

	if err := removeAll(src); err != nil {
		Logger.Error("copied but failed to remove source", "src", src, "err", err)
		return &SourceCleanupError{Src: src, Dst: dst, Err: err}
	}
	return nil
}

// copyTree copies src to dst keeping permissions, symlinks and modification
// times. Directory times are applied last since filling a directory bumps its
// mtime.
func copyTree(src string, dst string) error {
	type dirTime struct {
		path string
		info fs.FileInfo
	}
	dirs := []dirTime{}

	err := filepath.WalkDir(src, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		info, err := entry.Info()
		if err != nil {
			return err
		}

		switch {
		case entry.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		case entry.IsDir():
			if err := os.MkdirAll(target, info.Mode().Perm()|0o700); err != nil {
				return err
			}
			dirs = append(dirs, dirTime{path: target, info: info})
			return nil
		default:
			if err := copyFile(path, target, info.Mode().Perm()); err != nil {
				return err
			}
		}

		return os.Chtimes(target, info.ModTime(), info.ModTime())
	})
	if err != nil {
		return err
	}

	// deepest first
	for i := len(dirs) - 1; i >= 0; i-- {
		modTime := dirs[i].info.ModTime()
		if err := os.Chtimes(dirs[i].path, modTime, modTime); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src string, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
