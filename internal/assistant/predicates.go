package assistant

import "regexp"

// maxGreetingLen bounds IsGreeting so that longer sentences merely containing
// a greeting word ("hi, my order never arrived") are not treated as greetings.
const maxGreetingLen = 15

// greetingRe must match the whole normalized message.
var greetingRe = regexp.MustCompile(`^(hi|hello|hey|yo|heya|hiya|hi there|hey there|hello there|greetings|good morning|good afternoon|good evening)$`)

// affirmativeRe and negativeRe require a full-string match; a "yes" buried in
// a longer sentence is not a confirmation.
var (
	affirmativeRe = regexp.MustCompile(`^(y|yes|yeah|yep|yup|sure|ok|okay|sounds good|definitely|of course|go ahead|please do)$`)
	negativeRe    = regexp.MustCompile(`^(n|no|nope|nah|not really|no thanks|no thank you)$`)
)

// cancelRe and confusedRe allow substring matches.
var (
	cancelRe   = regexp.MustCompile(`\b(cancel|never ?mind|forget it|start over|drop it)\b`)
	confusedRe = regexp.MustCompile(`(confus|don t understand|dont understand|what do you mean|makes no sense|i m lost|im lost|not sure what|huh)`)
)

// IsGreeting reports whether the normalized message is a bare greeting.
func IsGreeting(text string) bool {
	return len(text) < maxGreetingLen && greetingRe.MatchString(text)
}

// IsAffirmative reports whether the normalized message is a plain yes.
func IsAffirmative(text string) bool {
	return affirmativeRe.MatchString(text)
}

// IsNegative reports whether the normalized message is a plain no.
func IsNegative(text string) bool {
	return negativeRe.MatchString(text)
}

// WantsCancel reports whether the normalized message asks to abandon the
// current conversation.
func WantsCancel(text string) bool {
	return cancelRe.MatchString(text)
}

// IsConfused reports whether the normalized message signals the user did not
// understand the assistant.
func IsConfused(text string) bool {
	return confusedRe.MatchString(text)
}
