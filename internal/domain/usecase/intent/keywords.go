package intent

// negativeKeywords are non-financial uses of "gold". Any match rules a message out.
var negativeKeywords = []string{
	"golden retriever",
	"gold medal",
	"olympic gold",
	"golden gate",
	"golden hour",
	"golden ratio",
	"golden rule",
	"golden globe",
	"golden boot",
	"golden jubilee",
	"golden age",
	"golden era",
	"golden ticket",
	"golden goose",
	"gold coast",
	"goldfish",
	"gold star",
	"golden state",
	"gold digger",
	"heart of gold",
	"goldman",
}

// positiveKeywords mark a message as being about gold investment
var positiveKeywords = []string{
	"gold",
	"bullion",
	"precious metal",
	"digital gold",
	"gold price",
	"gold rate",
	"buy gold",
	"sell gold",
	"gold market",
	"gold investment",
	"invest in gold",
	"investing in gold",
	"gold portfolio",
	"gold trading",
	"gold etf",
	"sovereign gold bond",
}

// consentPhrases signal agreement to go ahead with a purchase
var consentPhrases = []string{
	"yes",
	"yeah",
	"yep",
	"sure",
	"okay",
	"buy",
	"purchase",
	"proceed",
	"go ahead",
	"start investment",
	"start investing",
	"i want to invest",
	"let's do it",
	"lets do it",
	"sign me up",
}

// classificationInstruction constrains the backend to a one-word verdict
const classificationInstruction = `You are a strict classifier for a digital gold investment service.
Decide whether the user's message is about gold as a financial asset.

Answer TRUE when the message is about:
- buying, selling, holding or pricing gold, bullion or precious metals
- gold as an investment, savings instrument, hedge or portfolio component
- digital gold, gold ETFs, sovereign gold bonds or the gold market

Answer FALSE when:
- "gold" or "golden" is used literally or figuratively outside finance (golden retriever, gold medal, golden hour, golden rule)
- the message is about any other topic, including other investments such as stocks

Reply with exactly one word: TRUE or FALSE.`
