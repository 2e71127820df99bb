package entities

// Namespaces for graph identifiers. Entries and category nodes live in separate
// namespaces so an entry id can never collide with a category token.
const (
	EntryNamespace    = "http://example.org/kural/"
	OntologyNamespace = "http://example.org/ontology#"
	RDFNamespace      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
)

// Type marker.
const (
	PredType   = RDFNamespace + "type"
	ClassKural = OntologyNamespace + "Kural"
)

// Category edges (entry -> shared category node).
const (
	PredHasTheme       = OntologyNamespace + "hasTheme"
	PredPromotesVirtue = OntologyNamespace + "promotesVirtue"
	PredEvokesEmotion  = OntologyNamespace + "evokesEmotion"
)

// Literal attributes attached directly to an entry.
const (
	PredTamilText          = OntologyNamespace + "tamilText"
	PredEnglishTranslation = OntologyNamespace + "englishTranslation"
	PredModernScenario     = OntologyNamespace + "modernScenario"
	PredQAQuestion         = OntologyNamespace + "qaQuestion"
	PredQAAnswer           = OntologyNamespace + "qaAnswer"
	PredEthicalFramework   = OntologyNamespace + "ethicalFramework"
)

// EntryIRI returns the identifier of an entry node.
func EntryIRI(id string) string {
	return EntryNamespace + id
}

// CategoryIRI returns the identifier of a category node.
func CategoryIRI(token string) string {
	return OntologyNamespace + token
}
