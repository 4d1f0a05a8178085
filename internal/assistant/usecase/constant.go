package usecase

// LLM call budgets. The synthesis call gets the full answer budget; the
// conciseness summarization pass runs tighter and colder.
const (
	MaxAnswerTokens    = 800
	SummaryMaxTokens   = 400
	SummaryTemperature = 0.3
)

// Conciseness gate: answers with more than MaxSentenceMarkers sentence
// boundaries or longer than MaxAnswerChars get summarized.
const (
	MaxSentenceMarkers = 4
	MaxAnswerChars     = 600
)

// RerankTopK is how many reranked chunks make it into the prompt.
const RerankTopK = 5

// ContextSeparator joins retrieved chunks into the prompt context.
const ContextSeparator = "\n\n"
