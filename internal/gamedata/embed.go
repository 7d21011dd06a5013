// Package gamedata provides the embedded monster and class definitions and
// the YAML scenario format that describes a campaign.
package gamedata

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

// dataFS holds the definition files and the bundled scenarios.
//
//go:embed *.json scenarios/*.yaml
var dataFS embed.FS

// ScenarioNames lists the bundled scenarios, sorted by name.
func ScenarioNames() []string {
	files, _ := fs.Glob(dataFS, "scenarios/*.yaml")
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(path.Base(f), ".yaml"))
	}
	return names
}
