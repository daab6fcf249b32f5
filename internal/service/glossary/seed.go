package glossary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSeed returns the entries every server starts with.
func DefaultSeed() map[string]string {
	return map[string]string{
		"Apple": "A fruit that grows on trees",
	}
}

// LoadSeedFile reads a YAML mapping of term to definition.
// An empty file yields an empty map.
func LoadSeedFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glossary: read seed %s: %w", path, err)
	}

	seed := make(map[string]string)
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("glossary: decode seed %s: %w", path, err)
	}
	return seed, nil
}

// MergeSeeds combines seeds left to right; later seeds overwrite earlier terms.
func MergeSeeds(seeds ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, seed := range seeds {
		for term, def := range seed {
			out[term] = def
		}
	}
	return out
}
