package parsers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// JSONParser parses source rows from a JSON array of objects.
// Keys are the short field names (id, theme, ...). Numbers, booleans and null
// are accepted wherever a string is expected, so {"id": 305} reads as "305".
type JSONParser struct{}

// jsonRow mirrors RawRow with lenient scalar fields.
type jsonRow struct {
	ID          scalarString `json:"id"`
	Theme       scalarString `json:"theme"`
	Virtue      scalarString `json:"virtue"`
	Emotion     scalarString `json:"emotion"`
	SourceText  scalarString `json:"source_text"`
	Translation scalarString `json:"translation"`
	Scenario    scalarString `json:"scenario"`
	Question    scalarString `json:"question"`
	Answer      scalarString `json:"answer"`
	Framework   scalarString `json:"framework"`
}

// scalarString holds any JSON scalar in its textual form. null is empty.
type scalarString string

func (s *scalarString) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch x := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = scalarString(x)
	case json.Number:
		*s = scalarString(x.String())
	case bool:
		*s = scalarString(strconv.FormatBool(x))
	default:
		return fmt.Errorf("expected a string or number, got %s", data)
	}
	return nil
}

// Parse reads a JSON array from r. Line numbers are the 1-based array positions.
func (p *JSONParser) Parse(r io.Reader) ([]RawRow, error) {
	var decoded []jsonRow
	if err := json.NewDecoder(r).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	rows := make([]RawRow, 0, len(decoded))
	for i, d := range decoded {
		rows = append(rows, RawRow{
			ID:          string(d.ID),
			Theme:       string(d.Theme),
			Virtue:      string(d.Virtue),
			Emotion:     string(d.Emotion),
			SourceText:  string(d.SourceText),
			Translation: string(d.Translation),
			Scenario:    string(d.Scenario),
			Question:    string(d.Question),
			Answer:      string(d.Answer),
			Framework:   string(d.Framework),
			LineNum:     i + 1,
		})
	}
	return rows, nil
}
