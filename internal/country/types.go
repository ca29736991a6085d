package country

// Name holds the two supported name variants of a record.
type Name struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Country is one record of the static dataset, following the
// mledoze/countries field names. Records are read once at session setup and
// treated as immutable afterwards.
type Country struct {
	Name        Name              `json:"name"`
	CCA2        string            `json:"cca2"`
	CCA3        string            `json:"cca3"`
	Independent bool              `json:"independent"`
	Capital     []string          `json:"capital"`
	Region      string            `json:"region"`
	Subregion   string            `json:"subregion"`
	Languages   map[string]string `json:"languages"`
	Borders     []string          `json:"borders"`
	Area        float64           `json:"area"`
	Flag        string            `json:"flag"`
}

// NameVariant selects which name spelling a session quizzes on.
type NameVariant string

const (
	NameCommon   NameVariant = "common"
	NameOfficial NameVariant = "official"
)

// DisplayName returns the chosen name spelling for a record.
func (c Country) DisplayName(variant NameVariant) string {
	if variant == NameOfficial {
		return c.Name.Official
	}
	return c.Name.Common
}
