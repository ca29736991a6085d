package country

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validDataset = `[
  {
    "name": {"common": "Iceland", "official": "Iceland"},
    "tld": [".is"],
    "cca2": "IS",
    "cca3": "ISL",
    "independent": true,
    "capital": ["Reykjavik"],
    "region": "Europe",
    "subregion": "Northern Europe",
    "languages": {"isl": "Icelandic"},
    "borders": [],
    "area": 103000,
    "flag": "🇮🇸"
  },
  {
    "name": {"common": "Ireland", "official": "Republic of Ireland"},
    "cca2": "IE",
    "cca3": "IRL",
    "independent": true,
    "capital": ["Dublin"],
    "region": "Europe",
    "subregion": "Northern Europe",
    "languages": {"eng": "English", "gle": "Irish"},
    "borders": ["GBR"],
    "area": 70273,
    "flag": "🇮🇪"
  }
]`

// TestParseValid checks that a well-formed dataset decodes, including fields
// the quiz never reads.
func TestParseValid(t *testing.T) {
	countries, err := Parse([]byte(validDataset))
	if err != nil {
		t.Fatalf("parse valid dataset: %v", err)
	}
	if len(countries) != 2 {
		t.Fatalf("expected 2 records, got %d", len(countries))
	}
	first := countries[0]
	if first.Name.Common != "Iceland" || first.CCA3 != "ISL" {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if !first.Independent {
		t.Fatalf("expected Iceland to be independent")
	}
	if len(countries[1].Borders) != 1 || countries[1].Borders[0] != "GBR" {
		t.Fatalf("unexpected borders: %v", countries[1].Borders)
	}
	if countries[1].Languages["gle"] != "Irish" {
		t.Fatalf("unexpected languages: %v", countries[1].Languages)
	}
}

// TestParseRejectsMalformedJSON checks that garbage input reports a parse
// error rather than a validation error.
func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"name":`))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Fatalf("expected a plain parse error, got validation issues: %v", verr)
	}
}

// TestParseRejectsEmptyDataset checks that a dataset with no records fails
// validation.
func TestParseRejectsEmptyDataset(t *testing.T) {
	_, err := Parse([]byte(`[]`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !hasIssue(verr, "countries", "at least one record") {
		t.Fatalf("missing empty-dataset issue: %v", verr)
	}
}

// TestValidateIssues exercises the per-record checks.
func TestValidateIssues(t *testing.T) {
	countries := []Country{
		{
			Name:    Name{Common: "", Official: "Republic of Nowhere"},
			CCA2:    "N",
			CCA3:    "NWHR",
			Area:    -5,
			Flag:    "x",
			Capital: []string{" "},
		},
		{
			Name:      Name{Common: "Somewhere", Official: "Somewhere"},
			CCA2:      "SW",
			CCA3:      "SMW",
			Borders:   []string{"XY"},
			Languages: map[string]string{"eng": " "},
			Area:      10,
		},
		{
			Name: Name{Common: "Somewhere", Official: "Somewhere Else"},
			CCA2: "SE",
			CCA3: "SMW",
			Area: 10,
		},
	}
	err := Validate(countries)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	wanted := []struct {
		path, fragment string
	}{
		{"countries[0].name.common", "required"},
		{"countries[0].cca2", "two-letter"},
		{"countries[0].cca3", "three-letter"},
		{"countries[0].capital[0]", "blank"},
		{"countries[0].area", "negative"},
		{"countries[1].borders[0]", "three-letter"},
		{"countries[1].languages.eng", "blank"},
		{"countries[2].name.common", "duplicate"},
		{"countries[2].cca3", "duplicate"},
	}
	for _, want := range wanted {
		if !hasIssue(verr, want.path, want.fragment) {
			t.Fatalf("missing issue %s (%s) in %v", want.path, want.fragment, verr)
		}
	}
}

// TestLoadFromFile checks the file loader and its error wrapping.
func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "countries.json")
	if err := os.WriteFile(path, []byte(validDataset), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	countries, err := Load(path)
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	if len(countries) != 2 {
		t.Fatalf("expected 2 records, got %d", len(countries))
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

// TestDisplayName checks the common/official name selection.
func TestDisplayName(t *testing.T) {
	record := Country{Name: Name{Common: "Ireland", Official: "Republic of Ireland"}}
	if got := record.DisplayName(NameCommon); got != "Ireland" {
		t.Fatalf("common name: got %q", got)
	}
	if got := record.DisplayName(NameOfficial); got != "Republic of Ireland" {
		t.Fatalf("official name: got %q", got)
	}
}

// TestDefaultDataset checks that the bundled dataset loads and that every
// border code resolves to a bundled record, so gameplay never shows raw
// codes out of the box.
func TestDefaultDataset(t *testing.T) {
	countries, err := Default()
	if err != nil {
		t.Fatalf("load bundled dataset: %v", err)
	}
	if len(countries) < 30 {
		t.Fatalf("bundled dataset suspiciously small: %d records", len(countries))
	}
	byCode := map[string]bool{}
	for _, record := range countries {
		byCode[record.CCA3] = true
	}
	for _, record := range countries {
		for _, code := range record.Borders {
			if !byCode[code] {
				t.Fatalf("%s borders %s, which is not bundled", record.Name.Common, code)
			}
		}
	}
	independent := 0
	for _, record := range countries {
		if record.Independent {
			independent++
		}
	}
	if independent == len(countries) {
		t.Fatalf("expected at least one non-independent record")
	}
}

func hasIssue(verr *ValidationError, path, fragment string) bool {
	for _, issue := range verr.Issues {
		if issue.Field == path && strings.Contains(issue.Message, fragment) {
			return true
		}
	}
	return false
}
