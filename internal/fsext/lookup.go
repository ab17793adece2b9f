// Package fsext provides the filesystem helpers used to locate config
// files relative to the working directory.
package fsext

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/taste/internal/home"
)

// Lookup searches for the target files upward from the given directory
// until the filesystem root. Ownership is checked along the way so the
// search never crosses into another user's tree; ownership mismatches are
// skipped, not reported. The starting directory itself is included.
func Lookup(dir string, targets ...string) ([]string, error) {
	if len(targets) == 0 {
		return nil, nil
	}

	var found []string

	err := traverseUp(dir, func(cwd string, owner int) error {
		for _, target := range targets {
			fpath := filepath.Join(cwd, target)
			err := probeEnt(fpath, owner)

			if errors.Is(err, os.ErrNotExist) ||
				errors.Is(err, os.ErrPermission) {
				continue
			}
			if err != nil {
				return fmt.Errorf("probing %s: %w", fpath, err)
			}

			found = append(found, fpath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// traverseUp walks from the given directory to the filesystem root,
// passing each directory and the starting directory's owner to walkFn.
func traverseUp(dir string, walkFn func(dir string, owner int) error) error {
	cwd, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("making %s absolute: %w", dir, err)
	}

	owner, err := Owner(dir)
	if err != nil {
		return fmt.Errorf("getting ownership: %w", err)
	}

	for {
		err := walkFn(cwd, owner)
		if err == nil || errors.Is(err, filepath.SkipDir) {
			parent := filepath.Dir(cwd)
			if parent == cwd {
				return nil
			}
			cwd = parent
			continue
		}
		if errors.Is(err, filepath.SkipAll) {
			return nil
		}
		return err
	}
}

// probeEnt checks that the entity at the path exists and belongs to the
// given owner.
func probeEnt(fspath string, owner int) error {
	if _, err := os.Stat(fspath); err != nil {
		return fmt.Errorf("stat %s: %w", fspath, err)
	}

	// Owner -1 bypasses the ownership check.
	if owner == -1 {
		return nil
	}

	fowner, err := Owner(fspath)
	if err != nil {
		return fmt.Errorf("getting ownership of %s: %w", fspath, err)
	}
	if fowner != owner {
		return os.ErrPermission
	}
	return nil
}

// PrettyPath makes a path presentable for display.
func PrettyPath(path string) string {
	return home.Short(path)
}
