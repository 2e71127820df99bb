package main

// User facing messages.
const (
	msgGraphLoaded = "Knowledge graph loaded successfully."
	msgChatBanner  = "--- Thirukkural Q&A Bot ---"
	msgChatHelp    = "Ask a question about life or ethics (or type 'exit' to quit)."
	msgPrompt      = "Your question: "
	msgGoodbye     = "Thank you for using the Kural Bot. Goodbye!"
	msgNoMatch     = "Sorry, I couldn't find a clear answer for that question in my knowledge base."
	msgAnswerTitle = "--- Answer from the Thirukkural ---"
	msgAnswerRule  = "------------------------------------"
)

const exitCommand = "exit"

// Valid export formats.
var validFormats = []string{"json", "csv", "markdown"}

// Valid source formats for build.
var validSourceFormats = []string{"csv", "json"}
