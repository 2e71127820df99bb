// Package entities contains core domain data structures.
package entities

import "strings"

// CategoryJoin replaces internal spaces in theme, virtue and emotion labels.
const CategoryJoin = "_"

// Entry represents a single kural with its category edges and literal attributes.
type Entry struct {
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
}

// QueryResult is the tuple matched against a user question.
// It only lives for the duration of one query.
type QueryResult struct {
	EntryID     string `json:"entry_id"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Translation string `json:"translation"`
}

// NormalizeCategory turns a raw label into a category token.
// Surrounding whitespace is trimmed and every remaining space becomes CategoryJoin,
// so "Self Control" and "  Self Control " collapse to the same node.
func NormalizeCategory(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), " ", CategoryJoin)
}

// HasQA reports whether the entry carries a question and an answer.
func (e Entry) HasQA() bool {
	return e.Question != "" && e.Answer != ""
}

// Result returns the query tuple for the entry.
func (e Entry) Result() QueryResult {
	return QueryResult{
		EntryID:     e.ID,
		Question:    e.Question,
		Answer:      e.Answer,
		Translation: e.Translation,
	}
}
