//go:build windows

package fsext

import "os"

// Owner returns the owning user ID of the file or directory at path.
// Windows has no cheap notion of a numeric owner, so -1 is returned and
// ownership checks are bypassed.
func Owner(path string) (int, error) {
	_, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return -1, nil
}
