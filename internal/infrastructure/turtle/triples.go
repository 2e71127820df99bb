package turtle

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/knakk/rdf"

	"github.com/ersonp/kural-core/internal/domain/entities"
)

// localNameRanges are the non-ASCII runes a Turtle local name may carry anywhere.
var localNameRanges = [][2]rune{
	{0x00C0, 0x00D6},
	{0x00D8, 0x00F6},
	{0x00F8, 0x02FF},
	{0x0370, 0x037D},
	{0x037F, 0x1FFF},
	{0x200C, 0x200D},
	{0x2070, 0x218F},
	{0x2C00, 0x2FEF},
	{0x3001, 0xD7FF},
	{0xF900, 0xFDCF},
	{0xFDF0, 0xFFFD},
	{0x10000, 0xEFFFF},
}

// localNameTailRanges may appear in a local name, but not as its first rune.
var localNameTailRanges = [][2]rune{
	{'-', '-'},
	{0x00B7, 0x00B7},
	{0x0300, 0x036F},
	{0x203F, 0x2040},
}

func inRanges(r rune, ranges [][2]rune) bool {
	for _, rg := range ranges {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return false
}

// isLocalNameRune reports whether r may stand unescaped in a prefixed name.
// '.' and ':' are legal in places but always escaped, as is '%'.
func isLocalNameRune(r rune, first bool) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	case inRanges(r, localNameRanges):
		return true
	case inRanges(r, localNameTailRanges):
		return !first
	}
	return false
}

// escapeLocal percent-encodes every byte of an identifier that cannot appear in a
// Turtle local name. The encoder shortens IRIs to prefixed names, so the escaped
// form must survive as one; invalid UTF-8 is encoded byte by byte.
func escapeLocal(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		valid := r != utf8.RuneError || size > 1
		if valid && isLocalNameRune(r, i == 0) {
			b.WriteString(s[i : i+size])
		} else {
			for j := i; j < i+size; j++ {
				fmt.Fprintf(&b, "%%%02X", s[j])
			}
		}
		i += size
	}
	return b.String()
}

// unescapeLocal reverses escapeLocal.
func unescapeLocal(s string) (string, error) {
	return url.PathUnescape(s)
}

// entryTriples maps one entry onto its type marker, category edges and literals.
func entryTriples(e entities.Entry) ([]rdf.Triple, error) {
	subj, err := rdf.NewIRI(entities.EntryIRI(escapeLocal(e.ID)))
	if err != nil {
		return nil, fmt.Errorf("entry iri: %w", err)
	}

	var triples []rdf.Triple
	addIRI := func(pred, obj string) error {
		p, err := rdf.NewIRI(pred)
		if err != nil {
			return fmt.Errorf("predicate %s: %w", pred, err)
		}
		o, err := rdf.NewIRI(obj)
		if err != nil {
			return fmt.Errorf("object %s: %w", obj, err)
		}
		triples = append(triples, rdf.Triple{Subj: subj, Pred: p, Obj: o})
		return nil
	}
	addLiteral := func(pred, value string) error {
		p, err := rdf.NewIRI(pred)
		if err != nil {
			return fmt.Errorf("predicate %s: %w", pred, err)
		}
		o, err := rdf.NewLiteral(value)
		if err != nil {
			return fmt.Errorf("literal for %s: %w", pred, err)
		}
		triples = append(triples, rdf.Triple{Subj: subj, Pred: p, Obj: o})
		return nil
	}

	edges := []struct{ pred, obj string }{
		{entities.PredType, entities.ClassKural},
		{entities.PredHasTheme, entities.CategoryIRI(escapeLocal(e.Theme))},
		{entities.PredPromotesVirtue, entities.CategoryIRI(escapeLocal(e.Virtue))},
		{entities.PredEvokesEmotion, entities.CategoryIRI(escapeLocal(e.Emotion))},
	}
	for _, edge := range edges {
		if err := addIRI(edge.pred, edge.obj); err != nil {
			return nil, err
		}
	}

	literals := []struct{ pred, value string }{
		{entities.PredTamilText, e.SourceText},
		{entities.PredEnglishTranslation, e.Translation},
		{entities.PredModernScenario, e.Scenario},
		{entities.PredQAQuestion, e.Question},
		{entities.PredQAAnswer, e.Answer},
		{entities.PredEthicalFramework, e.Framework},
	}
	for _, lit := range literals {
		if err := addLiteral(lit.pred, lit.value); err != nil {
			return nil, err
		}
	}

	return triples, nil
}

// partialEntry collects the triples seen for one subject.
type partialEntry struct {
	typed bool
	entry entities.Entry
}

// accumulator groups decoded triples by subject, remembering first appearance order.
type accumulator struct {
	order    []string
	subjects map[string]*partialEntry
}

func newAccumulator() *accumulator {
	return &accumulator{subjects: make(map[string]*partialEntry)}
}

func (a *accumulator) add(t rdf.Triple) error {
	subj, ok := t.Subj.(rdf.IRI)
	if !ok {
		return nil
	}
	local, ok := strings.CutPrefix(subj.String(), entities.EntryNamespace)
	if !ok {
		return nil
	}

	p, ok := a.subjects[local]
	if !ok {
		id, err := unescapeLocal(local)
		if err != nil {
			return fmt.Errorf("entry id %q: %w", local, err)
		}
		p = &partialEntry{entry: entities.Entry{ID: id}}
		a.subjects[local] = p
		a.order = append(a.order, local)
	}

	pred := t.Pred.String()
	switch pred {
	case entities.PredType:
		if obj, ok := t.Obj.(rdf.IRI); ok && obj.String() == entities.ClassKural {
			p.typed = true
		}
	case entities.PredHasTheme:
		return setCategory(&p.entry.Theme, pred, t.Obj)
	case entities.PredPromotesVirtue:
		return setCategory(&p.entry.Virtue, pred, t.Obj)
	case entities.PredEvokesEmotion:
		return setCategory(&p.entry.Emotion, pred, t.Obj)
	case entities.PredTamilText:
		return setLiteral(&p.entry.SourceText, pred, t.Obj)
	case entities.PredEnglishTranslation:
		return setLiteral(&p.entry.Translation, pred, t.Obj)
	case entities.PredModernScenario:
		return setLiteral(&p.entry.Scenario, pred, t.Obj)
	case entities.PredQAQuestion:
		return setLiteral(&p.entry.Question, pred, t.Obj)
	case entities.PredQAAnswer:
		return setLiteral(&p.entry.Answer, pred, t.Obj)
	case entities.PredEthicalFramework:
		return setLiteral(&p.entry.Framework, pred, t.Obj)
	}
	return nil
}

// graph returns the typed entries in first appearance order.
func (a *accumulator) graph() *entities.Graph {
	g := entities.NewGraph()
	for _, local := range a.order {
		p := a.subjects[local]
		if !p.typed {
			continue
		}
		g.Add(p.entry)
	}
	return g
}

func setCategory(dst *string, pred string, obj rdf.Object) error {
	iri, ok := obj.(rdf.IRI)
	if !ok {
		return fmt.Errorf("%s: expected a category node, got %s", pred, obj.String())
	}
	local, ok := strings.CutPrefix(iri.String(), entities.OntologyNamespace)
	if !ok {
		return fmt.Errorf("%s: category %s outside the ontology namespace", pred, iri.String())
	}
	token, err := unescapeLocal(local)
	if err != nil {
		return fmt.Errorf("%s: category %q: %w", pred, local, err)
	}
	*dst = token
	return nil
}

func setLiteral(dst *string, pred string, obj rdf.Object) error {
	lit, ok := obj.(rdf.Literal)
	if !ok {
		return fmt.Errorf("%s: expected a literal, got %s", pred, obj.String())
	}
	*dst = lit.String()
	return nil
}
