package paths

import (
	"flag"
)

// SetupOutputDirFlag creates a new string flag with the passed name,
// defaulting to DefaultOutputDir.
func SetupOutputDirFlag(flagName string, flagPtr *string) {
	flag.StringVar(flagPtr, flagName, DefaultOutputDir, "Directory the sprite tree is written into")
}
