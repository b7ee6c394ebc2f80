package response

const (
	priceTemplate = "The current gold price is %s %s per gram (%s %s). " +
		"Gold prices move with market conditions, economic data and global events."

	benefitTemplate = "Gold has historically held its value through inflation and market stress, " +
		"and it often moves differently from stocks, which helps diversify a portfolio. " +
		"Digital gold lets you own it in small amounts without worrying about storage or purity."

	defaultTemplate = "Gold is considered a safe-haven investment that can help diversify your portfolio " +
		"and protect against inflation. Digital gold offers the convenience of owning gold " +
		"without physical storage concerns."

	genericTemplate = "I'm specialized in gold investment advice. Please ask me questions about " +
		"gold investment, digital gold, or precious metals trading."

	purchaseNudge = "\n\nWould you like to purchase some digital gold today? " +
		"Our platform offers secure and instant transactions!"
)

var (
	priceWords   = []string{"price", "cost", "rate", "expensive", "worth"}
	benefitWords = []string{"benefit", "advantage", "why", "good investment", "safe"}
)

const goldInstructionTemplate = `You are a friendly advisor for a digital gold investment platform.
The current price of gold is %s %s per gram (%s %s per gram).
Answer the user's question about gold investment accurately and in under 150 words.
Only when the user expresses an intention to buy or invest, end the answer by inviting them to purchase digital gold on the platform.
Never guarantee returns or give personalised financial advice.`

const generalInstruction = `You are the assistant of a digital gold investment platform.
Answer briefly and politely.
If the question has nothing to do with finance, say that you specialise in gold investment and invite the user to ask about it.`
