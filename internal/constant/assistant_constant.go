package constant

// CannedGuidance is the static fallback answered whenever the query
// generation path fails structurally or the completion service is down.
// It is never model-generated, so it stays available unconditionally.
const CannedGuidance = `I couldn't turn that into a query for your data. Here are some questions I can help with:

- "Show me all overdue invoices"
- "What are the total amounts by vendor?"
- "List transactions from last month"
- "Show the top 5 vendors by amount"
- "What's the average invoice amount?"

Try rephrasing your question around the columns in your dataset.`

// AnalysisUnavailable is returned when the completion service cannot
// produce a narrative for already-computed results. Tool suggestions are
// derived independently and still apply.
const AnalysisUnavailable = "Sorry, I couldn't analyze these results right now. The data is shown below; please try again in a moment."
