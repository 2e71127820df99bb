// Package parsers provides parsers for reading kural source tables in various formats.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// RawRow represents one source row before it is turned into a graph entry.
// Fields absent from the source are left empty.
type RawRow struct {
	ID          string `json:"id"`
	Theme       string `json:"theme"`
	Virtue      string `json:"virtue"`
	Emotion     string `json:"emotion"`
	SourceText  string `json:"source_text"`
	Translation string `json:"translation"`
	Scenario    string `json:"scenario"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Framework   string `json:"framework"`
	LineNum     int    `json:"-"` // Line number in source file (set by parser)
}

type namedField struct {
	name  string
	value string
}

func (r RawRow) fields() []namedField {
	return []namedField{
		{FieldID, r.ID},
		{FieldTheme, r.Theme},
		{FieldVirtue, r.Virtue},
		{FieldEmotion, r.Emotion},
		{FieldSourceText, r.SourceText},
		{FieldTranslation, r.Translation},
		{FieldScenario, r.Scenario},
		{FieldQuestion, r.Question},
		{FieldAnswer, r.Answer},
		{FieldFramework, r.Framework},
	}
}

// MissingFields returns the names of required fields that are empty.
func (r RawRow) MissingFields() []string {
	var missing []string
	for _, f := range r.fields() {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// InvalidUTF8Fields returns the names of fields that are not valid UTF-8.
// Such text does not survive the graph artifact: literals read back with U+FFFD
// in place of the bad bytes.
func (r RawRow) InvalidUTF8Fields() []string {
	var invalid []string
	for _, f := range r.fields() {
		if !utf8.ValidString(f.value) {
			invalid = append(invalid, f.name)
		}
	}
	return invalid
}

// Parser defines the interface for parsing source rows from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawRow, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	default:
		return nil
	}
}
