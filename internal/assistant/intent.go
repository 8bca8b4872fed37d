package assistant

import "regexp"

// Intent is the coarse classification tag for a user message.
type Intent string

// Conversational intents plus the meta-intents emitted by the engine when a
// greeting resets a flow or the user cancels.
const (
	IntentInterviewAssessment Intent = "INTERVIEW_ASSESSMENT"
	IntentApplyToWork         Intent = "APPLY_TO_WORK"
	IntentAssistantIdentity   Intent = "ASSISTANT_IDENTITY"
	IntentPaymentHelp         Intent = "PAYMENT_HELP"
	IntentOrderDelivery       Intent = "ORDER_DELIVERY"
	IntentBuyService          Intent = "BUY_SERVICE"
	IntentCustomService       Intent = "CUSTOM_SERVICE"
	IntentGeneralSupport      Intent = "GENERAL_SUPPORT"
	IntentGreetingReset       Intent = "GREETING_RESET"
	IntentCancelled           Intent = "CANCELLED"
)

// intentRule pairs a pattern with the intent it classifies to.
type intentRule struct {
	re     *regexp.Regexp
	intent Intent
}

// intentRules is the ordered classification table. Order is a precedence
// contract, not an accident: interview/assessment phrasing outranks generic
// application phrasing, payment outranks delivery (so "refund for undelivered
// order" lands on PAYMENT_HELP), and purchase outranks custom-request
// phrasing. Do not reorder.
var intentRules = []intentRule{
	{regexp.MustCompile(`\b(interview|assessment|screening|qualification (test|exam)|take (the|an|a) (test|exam))\b`), IntentInterviewAssessment},
	{regexp.MustCompile(`\b(apply|applying|application|join (the )?(team|platform)|work (for|with) you|get hired|start working)\b`), IntentApplyToWork},
	{regexp.MustCompile(`^(who|what) are you\b|\bare you (a |an )?(bot|robot|human|real person|ai)\b|^who is this\b`), IntentAssistantIdentity},
	{regexp.MustCompile(`\b(refund|refunds|refunded|payment|payments|pay|paid|paying|charge|charged|billing|invoice|chargeback|money back)\b`), IntentPaymentHelp},
	{regexp.MustCompile(`\b(deliver|delivery|delivered|shipping|shipped|not received|never (arrived|received)|order status|track (my )?order|where is my order)\b`), IntentOrderDelivery},
	{regexp.MustCompile(`\b(buy|buying|purchase|purchasing|how much (is|for|does)|price (of|for)|cost of)\b`), IntentBuyService},
	{regexp.MustCompile(`\b(custom|customized|customised|tailored|not listed|don t see|cant find|can t find|something (else|specific|different)|special request)\b`), IntentCustomService},
}

// ClassifyIntent maps normalized text to one intent via the ordered rule
// table, first match wins. A miss is never an error: anything unmatched —
// including empty input — resolves to GENERAL_SUPPORT.
func ClassifyIntent(text string) Intent {
	if text == "" {
		return IntentGeneralSupport
	}
	for _, rule := range intentRules {
		if rule.re.MatchString(text) {
			return rule.intent
		}
	}
	return IntentGeneralSupport
}
