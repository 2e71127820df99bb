package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/kural-core/internal/domain/entities"
	"github.com/ersonp/kural-core/internal/infrastructure/parsers"
)

func testEntries() []entities.Entry {
	return []entities.Entry{
		{
			ID:          "305",
			Theme:       "Anger",
			Virtue:      "Self_Control",
			Emotion:     "Calm",
			SourceText:  "தன்னைத்தான் காக்கின் சினங்காக்க",
			Translation: "If a man would guard himself, let him guard against anger.",
			Scenario:    "A coworker insults you.\nYou want to snap back.",
			Question:    "How should I react when hurt?",
			Answer:      "Restrain your anger.",
			Framework:   "Virtue ethics",
		},
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatJSON(&buf, testEntries()))

	var parsed []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))

	require.Len(t, parsed, 1)
	assert.Equal(t, "305", parsed[0]["id"])
	assert.Equal(t, "Self_Control", parsed[0]["virtue"])
	assert.Equal(t, "தன்னைத்தான் காக்கின் சினங்காக்க", parsed[0]["source_text"])
	assert.Equal(t, "Virtue ethics", parsed[0]["framework"])
}

func TestFormatJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormatJSON_ParsesAsSource(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatJSON(&buf, testEntries()))

	rows, err := parsers.ForFormat("json").Parse(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "305", rows[0].ID)
	assert.Equal(t, "Restrain your anger.", rows[0].Answer)
}

func TestFormatCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatCSV(&buf, testEntries()))

	lines := strings.SplitN(buf.String(), "\n", 2)
	assert.Equal(t, "id,theme,virtue,emotion,source_text,translation,scenario,question,answer,framework", lines[0])
	assert.Contains(t, buf.String(), `"If a man would guard himself, let him guard against anger."`)
}

func TestFormatCSV_ParsesAsSource(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatCSV(&buf, testEntries()))

	rows, err := parsers.ForFormat("csv").Parse(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	e := testEntries()[0]
	assert.Equal(t, e.ID, rows[0].ID)
	assert.Equal(t, e.Scenario, rows[0].Scenario)
	assert.Equal(t, e.Translation, rows[0].Translation)
	assert.Empty(t, rows[0].MissingFields())
}

func TestFormatMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatMarkdown(&buf, testEntries()))

	result := buf.String()
	assert.Contains(t, result, "# Exported Kurals")
	assert.Contains(t, result, "Total: 1 entries")
	assert.Contains(t, result, "| Kural | Theme | Virtue | Emotion | Question |")
	assert.Contains(t, result, "| 305 | Anger | Self_Control | Calm | How should I react when hurt? |")
}

func TestFormatEntries_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := formatEntries(&buf, "xml", testEntries())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestExportEntries_File(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.md")
	var stdout bytes.Buffer

	require.NoError(t, exportEntries(&stdout, "markdown", output, testEntries()))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "| 305 |")
	assert.Equal(t, "Exported 1 entries to "+output+"\n", stdout.String())
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "pipe escaped",
			input:    "value|with|pipes",
			expected: "value\\|with\\|pipes",
		},
		{
			name:     "newline replaced",
			input:    "line1\nline2",
			expected: "line1 line2",
		},
		{
			name:     "crlf replaced",
			input:    "line1\r\nline2",
			expected: "line1 line2",
		},
		{
			name:     "no change needed",
			input:    "simple text",
			expected: "simple text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeMarkdown(tt.input))
		})
	}
}
