package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/kural-core/internal/application/handlers"
	"github.com/ersonp/kural-core/internal/domain/entities"
	"github.com/ersonp/kural-core/internal/domain/services"
)

func testQueryHandler() *handlers.QueryHandler {
	g := entities.NewGraph()
	g.Add(entities.Entry{
		ID:          "305",
		Question:    "How should I react when someone hurts me?",
		Answer:      "Restrain your anger.",
		Translation: "Guard against anger.",
	})
	g.Add(entities.Entry{
		ID:          "314",
		Question:    "What is the best revenge?",
		Answer:      "Kindness.",
		Translation: "Punish wrongdoers by doing them good.",
	})
	return handlers.NewQueryHandler(services.NewQueryService(g))
}

func TestChatLoop_AnswerThenExit(t *testing.T) {
	in := strings.NewReader("what is the best revenge\nEXIT\nnever read\n")
	var out bytes.Buffer

	err := chatLoop(in, &out, testQueryHandler())
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, msgChatBanner)
	assert.Contains(t, got, msgPrompt)
	assert.Contains(t, got, "Based on Kural #314:")
	assert.Contains(t, got, `Kural: "Punish wrongdoers by doing them good."`)
	assert.Contains(t, got, "Answer: Kindness.")
	assert.Contains(t, got, msgGoodbye)
	assert.Equal(t, 2, strings.Count(got, msgPrompt))
}

func TestChatLoop_NoMatch(t *testing.T) {
	in := strings.NewReader("zzz\nexit\n")
	var out bytes.Buffer

	require.NoError(t, chatLoop(in, &out, testQueryHandler()))

	assert.Contains(t, out.String(), msgNoMatch)
	assert.NotContains(t, out.String(), "Based on Kural")
}

func TestChatLoop_ExitWithSpaces(t *testing.T) {
	in := strings.NewReader("  Exit  \n")
	var out bytes.Buffer

	require.NoError(t, chatLoop(in, &out, testQueryHandler()))
	assert.Contains(t, out.String(), msgGoodbye)
}

func TestChatLoop_EOFEndsLoop(t *testing.T) {
	in := strings.NewReader("how should i react when someone hurts me")
	var out bytes.Buffer

	require.NoError(t, chatLoop(in, &out, testQueryHandler()))

	got := out.String()
	assert.Contains(t, got, "Based on Kural #305:")
	assert.NotContains(t, got, msgGoodbye)
}

func TestPrintResult(t *testing.T) {
	var out bytes.Buffer
	printResult(&out, testQueryHandler().Handle("revenge"))

	want := "\n" + msgAnswerTitle + "\n" +
		"Based on Kural #314:\n" +
		"\nKural: \"Punish wrongdoers by doing them good.\"\n" +
		"\nAnswer: Kindness.\n" +
		msgAnswerRule + "\n"
	assert.Equal(t, want, out.String())
}

func TestPrintExplain(t *testing.T) {
	var out bytes.Buffer
	printExplain(&out, testQueryHandler(), "what is anger")

	got := out.String()
	assert.Contains(t, got, "Candidates (1):")
	assert.Contains(t, got, "Kural #314")

	out.Reset()
	printExplain(&out, testQueryHandler(), "zzz")
	assert.Contains(t, out.String(), "No stored question shares a keyword.")
}
