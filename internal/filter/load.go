package filter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// LoadList reads a JSONC file holding an array of paths.
func LoadList(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading list file %q: %w", path, err)
	}

	clean := jsonc.ToJSONInPlace(data)

	var paths []string
	if err := json.Unmarshal(clean, &paths); err != nil {
		return nil, fmt.Errorf("parsing list file %q: %w", path, err)
	}

	return paths, nil
}
