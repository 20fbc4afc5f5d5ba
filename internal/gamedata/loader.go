package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load decodes one embedded catalog file, such as creatures.json or
// maps.json, into T.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("catalog file %s is not embedded: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("catalog file %s is malformed: %w", filename, err)
	}

	return result, nil
}
