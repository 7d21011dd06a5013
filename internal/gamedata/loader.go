package gamedata

import (
	"encoding/json"
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

// Load reads an embedded file and decodes it into T. Files ending in
// .yaml or .yml are decoded as YAML, everything else as JSON.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read embedded %s: %w", filename, err)
	}

	if err := decode(filename, content, &result); err != nil {
		return result, fmt.Errorf("parse %s: %w", filename, err)
	}
	return result, nil
}

// MustLoad is Load for data the simulator cannot run without.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}

func decode(filename string, content []byte, v any) error {
	switch path.Ext(filename) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(content, v)
	default:
		return json.Unmarshal(content, v)
	}
}
