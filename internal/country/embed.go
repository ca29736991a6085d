package country

import (
	_ "embed"
)

//go:embed data/countries.json
var embeddedDataset []byte

// Default parses the dataset bundled with the binary.
func Default() ([]Country, error) {
	return Parse(embeddedDataset)
}
