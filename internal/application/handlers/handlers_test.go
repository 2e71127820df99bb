package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/kural-core/internal/domain/entities"
	"github.com/ersonp/kural-core/internal/domain/mocks"
	"github.com/ersonp/kural-core/internal/domain/services"
	"github.com/ersonp/kural-core/internal/infrastructure/logger"
	"github.com/ersonp/kural-core/internal/infrastructure/turtle"
)

const sourceCSV = "Kural_ID,Theme,Virtue,Emotion,Tamil_Text,English_Translation,Modern_Scenario,QA_Question,QA_Answer,Ethical_Framework\n" +
	"305,Anger,Self Control,Calm,\"தன்னைத்தான் காக்கின் சினங்காக்க\",\"If a man would guard himself, let him guard against anger.\",\"A coworker insults you.\nYou want to snap back.\",How should I react when hurt?,Restrain your anger.,Virtue ethics\n" +
	"314,Anger,Forgiveness,Compassion,இன்னாசெய் தாரை,Punish wrongdoers by doing them good.,\"Someone wrongs you \"\"on purpose\"\".\",What is the best revenge?,Kindness.,Care ethics\n" +
	"1,Virtue ,Humility, Reverence,அகர முதல,A leads the letters.,Starting out.,,,Deontology\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBuildHandler_Handle(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "kurals.csv", sourceCSV)
	store := mocks.NewGraphStore()
	handler := NewBuildHandler(services.NewBuildService(store, logger.Nop()))

	result, err := handler.Handle(t.Context(), source, "kg.ttl", BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Rows)
	assert.Equal(t, 3, result.Entries)
	assert.Equal(t, 1, result.RowsWithGaps)
	assert.Equal(t, "kg.ttl", result.Output)
	require.Contains(t, store.Graphs, "kg.ttl")
	assert.Equal(t, 3, store.Graphs["kg.ttl"].Len())
}

func TestBuildHandler_DryRun(t *testing.T) {
	source := writeFile(t, t.TempDir(), "kurals.csv", sourceCSV)
	store := mocks.NewGraphStore()
	handler := NewBuildHandler(services.NewBuildService(store, logger.Nop()))

	result, err := handler.Handle(t.Context(), source, "kg.ttl", BuildOptions{DryRun: true})
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, 3, result.Entries)
	assert.Empty(t, store.Graphs)
}

func TestBuildHandler_ExplicitFormat(t *testing.T) {
	source := writeFile(t, t.TempDir(), "kurals.data", `[{"id": 305, "question": "q", "answer": "a"}]`)
	store := mocks.NewGraphStore()
	handler := NewBuildHandler(services.NewBuildService(store, logger.Nop()))

	result, err := handler.Handle(t.Context(), source, "kg.ttl", BuildOptions{Format: "json"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Entries)
	_, ok := store.Graphs["kg.ttl"].Get("305")
	assert.True(t, ok)
}

func TestBuildHandler_SourceNotFound(t *testing.T) {
	handler := NewBuildHandler(services.NewBuildService(mocks.NewGraphStore(), logger.Nop()))

	_, err := handler.Handle(t.Context(), filepath.Join(t.TempDir(), "nope.csv"), "kg.ttl", BuildOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrSourceNotFound)
}

func TestBuildThenQuery_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "kurals.csv", sourceCSV)
	output := filepath.Join(dir, "kural_knowledge_graph.ttl")
	store := turtle.NewStore()

	buildSvc := services.NewBuildService(store, logger.Nop())
	_, err := NewBuildHandler(buildSvc).Handle(t.Context(), source, output, BuildOptions{})
	require.NoError(t, err)

	rows, err := services.ReadSource(source, "")
	require.NoError(t, err)
	built := buildSvc.Build(rows)

	loaded, err := services.LoadGraph(store, output)
	require.NoError(t, err)
	assert.Equal(t, built.Entries(), loaded.Entries())

	e, ok := loaded.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Virtue", e.Theme)
	assert.Equal(t, "Reverence", e.Emotion)

	query := NewQueryHandler(services.NewQueryService(loaded))

	result := query.Handle("how should i react when someone hurts me")
	require.True(t, result.Found)
	assert.Equal(t, "305", result.Match.EntryID)
	assert.Equal(t, "If a man would guard himself, let him guard against anger.", result.Match.Translation)
	assert.Equal(t, "Restrain your anger.", result.Match.Answer)

	result = query.Handle("revenge")
	require.True(t, result.Found)
	assert.Equal(t, "314", result.Match.EntryID)

	result = query.Handle("zzz")
	assert.False(t, result.Found)
	assert.Equal(t, "zzz", result.Query)
}

func TestBuildThenQuery_PunctuatedLabels(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "kurals.csv",
		"Kural_ID,Theme,Virtue,Emotion,QA_Question,QA_Answer\n"+
			"305,Virtue?,Self Control,Calm,How should I react when hurt?,Restrain anger.\n"+
			"1101,Love & Desire,Wealth (Porul),Joy!,What is love?,Two hearts as one.\n"+
			"a+b.,Dr.,-x-,it's,Is punctuation kept?,Yes.\n")
	output := filepath.Join(dir, "kural_knowledge_graph.ttl")
	store := turtle.NewStore()

	_, err := NewBuildHandler(services.NewBuildService(store, logger.Nop())).Handle(t.Context(), source, output, BuildOptions{})
	require.NoError(t, err)

	loaded, err := services.LoadGraph(store, output)
	require.NoError(t, err)
	require.Equal(t, 3, loaded.Len())

	e, ok := loaded.Get("1101")
	require.True(t, ok)
	assert.Equal(t, "Love_&_Desire", e.Theme)
	assert.Equal(t, "Wealth_(Porul)", e.Virtue)
	assert.Equal(t, "Joy!", e.Emotion)

	e, ok = loaded.Get("a+b.")
	require.True(t, ok)
	assert.Equal(t, "Dr.", e.Theme)
	assert.Equal(t, "-x-", e.Virtue)
	assert.Equal(t, "it's", e.Emotion)

	result := NewQueryHandler(services.NewQueryService(loaded)).Handle("what is love")
	require.True(t, result.Found)
	assert.Equal(t, "1101", result.Match.EntryID)
}

func TestQueryHandler_Explain(t *testing.T) {
	g := entities.NewGraph()
	g.Add(entities.Entry{ID: "1", Question: "What is anger?", Answer: "a"})
	g.Add(entities.Entry{ID: "2", Question: "How to be patient?", Answer: "b"})
	g.Add(entities.Entry{ID: "3", Question: "Why is anger harmful?", Answer: "c"})
	handler := NewQueryHandler(services.NewQueryService(g))

	explained := handler.Explain("anger")
	require.Len(t, explained, 2)
	assert.Equal(t, "1", explained[0].Result.EntryID)
	assert.Equal(t, "3", explained[1].Result.EntryID)
	assert.Equal(t, 1, explained[1].Score)
}

func TestQueryHandler_Entries(t *testing.T) {
	g := entities.NewGraph()
	g.Add(entities.Entry{ID: "1", Theme: "Inner_Peace"})
	g.Add(entities.Entry{ID: "2", Theme: "Anger"})
	g.Add(entities.Entry{ID: "3", Theme: "Inner_Peace"})
	handler := NewQueryHandler(services.NewQueryService(g))

	assert.Len(t, handler.Entries(""), 3)

	filtered := handler.Entries(" Inner Peace ")
	require.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].ID)
	assert.Equal(t, "3", filtered[1].ID)

	assert.Empty(t, handler.Entries("Wealth"))
}

func TestNewQueryHandler(t *testing.T) {
	handler := NewQueryHandler(services.NewQueryService(nil))
	assert.NotNil(t, handler)
	assert.NotNil(t, handler.queryService)
	assert.False(t, handler.Handle("anything").Found)
}
