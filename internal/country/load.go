package country

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads, parses, and validates a dataset file.
func Load(path string) ([]Country, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates dataset JSON. Unknown fields are tolerated so
// the unmodified upstream mledoze/countries file loads as-is.
func Parse(data []byte) ([]Country, error) {
	var countries []Country
	if err := json.Unmarshal(data, &countries); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if err := Validate(countries); err != nil {
		return nil, err
	}
	return countries, nil
}
