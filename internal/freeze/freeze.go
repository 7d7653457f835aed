// Package freeze writes a snapshot of the modules compiled into the binary.
package freeze

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"sort"
	"strings"
)

// Lines returns one "path==version" line per dependency, sorted by path.
// Replaced modules report the replacement's version.
func Lines(info *debug.BuildInfo) []string {
	var lines []string
	for _, dep := range info.Deps {
		mod := dep
		if dep.Replace != nil {
			mod = dep.Replace
		}
		lines = append(lines, fmt.Sprintf("%s==%s", dep.Path, mod.Version))
	}
	sort.Strings(lines)
	return lines
}

// WriteFile writes the dependency snapshot of the running binary to path.
func WriteFile(path string) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("build info not available")
	}
	data := strings.Join(Lines(info), "\n")
	if data != "" {
		data += "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("writing dependency snapshot: %w", err)
	}
	return nil
}
