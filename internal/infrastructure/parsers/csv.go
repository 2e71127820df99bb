package parsers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Source field names, as used in JSON sources and in log output.
const (
	FieldID          = "id"
	FieldTheme       = "theme"
	FieldVirtue      = "virtue"
	FieldEmotion     = "emotion"
	FieldSourceText  = "source_text"
	FieldTranslation = "translation"
	FieldScenario    = "scenario"
	FieldQuestion    = "question"
	FieldAnswer      = "answer"
	FieldFramework   = "framework"
)

// columnAliases maps each field to the header names accepted for it (lowercased).
// The first alias is the spreadsheet heading the dataset was published with.
var columnAliases = map[string][]string{
	FieldID:          {"kural_id", FieldID},
	FieldTheme:       {FieldTheme},
	FieldVirtue:      {FieldVirtue},
	FieldEmotion:     {FieldEmotion},
	FieldSourceText:  {"tamil_text", FieldSourceText},
	FieldTranslation: {"english_translation", FieldTranslation},
	FieldScenario:    {"modern_scenario", FieldScenario},
	FieldQuestion:    {"qa_question", FieldQuestion},
	FieldAnswer:      {"qa_answer", FieldAnswer},
	FieldFramework:   {"ethical_framework", FieldFramework},
}

// ErrNoKnownColumns is returned when a header names none of the source fields.
var ErrNoKnownColumns = errors.New("header contains none of the expected columns")

// CSVParser parses source rows from CSV format.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed rows.
// Expected columns: Kural_ID, Theme, Virtue, Emotion, Tamil_Text, English_Translation,
// Modern_Scenario, QA_Question, QA_Answer, Ethical_Framework (or their short names).
// Missing columns and short rows produce empty fields rather than errors.
func (p *CSVParser) Parse(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads the header row and resolves column aliases.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("reading CSV header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	byName := make(map[string]int, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		byName[strings.ToLower(strings.TrimSpace(col))] = i
	}

	colIndex := make(map[string]int)
	for field, aliases := range columnAliases {
		for _, alias := range aliases {
			if idx, ok := byName[alias]; ok {
				colIndex[field] = idx
				break
			}
		}
	}

	if len(colIndex) == 0 {
		return nil, ErrNoKnownColumns
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawRows.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawRow, error) {
	var rows []RawRow

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV record: %w", err)
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, p.parseRecord(record, colIndex, line))
	}

	return rows, nil
}

// parseRecord converts a CSV record to a RawRow.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int, lineNum int) RawRow {
	return RawRow{
		ID:          getColumn(record, colIndex, FieldID),
		Theme:       getColumn(record, colIndex, FieldTheme),
		Virtue:      getColumn(record, colIndex, FieldVirtue),
		Emotion:     getColumn(record, colIndex, FieldEmotion),
		SourceText:  getColumn(record, colIndex, FieldSourceText),
		Translation: getColumn(record, colIndex, FieldTranslation),
		Scenario:    getColumn(record, colIndex, FieldScenario),
		Question:    getColumn(record, colIndex, FieldQuestion),
		Answer:      getColumn(record, colIndex, FieldAnswer),
		Framework:   getColumn(record, colIndex, FieldFramework),
		LineNum:     lineNum,
	}
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
