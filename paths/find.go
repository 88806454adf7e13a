// Package paths resolves and prepares the directories sprites are written
// into.
package paths

import (
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// DefaultOutputDir is where the game expects its sprite content.
const DefaultOutputDir = "Content/Sprites"

// Ensure creates dir along with any missing parents. An existing
// directory is not an error.
func Ensure(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "creating directory %q", dir)
	}
	glog.V(2).Infof("paths.Ensure(%q)", dir)
	return nil
}

// Join is filepath.Join that treats an empty base as DefaultOutputDir.
func Join(base string, elem ...string) string {
	if base == "" {
		base = DefaultOutputDir
	}
	return filepath.Join(append([]string{base}, elem...)...)
}
