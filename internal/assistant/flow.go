package assistant

// Stage is the slot-filling state of a conversation.
type Stage string

// Session stages. Reset and Cancelled are terminal for the turn that set
// them; the engine folds them back to Idle when the next message arrives.
const (
	StageIdle       Stage = "IDLE"
	StageCollecting Stage = "COLLECTING"
	StageReady      Stage = "READY"
	StageReset      Stage = "RESET"
	StageCancelled  Stage = "CANCELLED"
)

// Session is the per-conversation mutable state: the flow under collection
// and the slots gathered so far. It is owned by the engine and passed by
// pointer; extractors never touch it — they return values the engine merges.
type Session struct {
	Stage      Stage
	ActiveFlow Intent
	Collected  map[string]string
}

// NewSession returns a fresh idle session.
func NewSession() *Session {
	return &Session{
		Stage:     StageIdle,
		Collected: make(map[string]string),
	}
}

// Valid reports whether the session has a recognized stage and a usable slot
// map. Corrupted sessions are replaced with NewSession() rather than failing
// the turn.
func (s *Session) Valid() bool {
	if s == nil || s.Collected == nil {
		return false
	}
	switch s.Stage {
	case StageIdle, StageCollecting, StageReady, StageReset, StageCancelled:
		return true
	}
	return false
}

// flowSlots lists the required slots, in prompting order, for each intent
// that needs a slot-filling conversation before it can be finalized.
var flowSlots = map[Intent][]string{
	IntentInterviewAssessment: {"platform", "urgency"},
	IntentCustomService:       {"platform", "urgency"},
}

// RequiresSlots reports whether the intent starts a slot-filling flow.
func RequiresSlots(intent Intent) bool {
	_, ok := flowSlots[intent]
	return ok
}

// Begin starts collecting for the given flow, discarding prior slots.
func (s *Session) Begin(intent Intent) {
	s.Stage = StageCollecting
	s.ActiveFlow = intent
	s.Collected = make(map[string]string)
}

// Merge folds extracted slot values into the session and advances to Ready
// when every required slot for the active flow is present. Existing values
// are not overwritten — the first extracted value for a slot sticks.
func (s *Session) Merge(slots map[string]string) {
	for name, value := range slots {
		if _, exists := s.Collected[name]; !exists && value != "" {
			s.Collected[name] = value
		}
	}
	if s.Stage == StageCollecting && len(s.MissingSlots()) == 0 {
		s.Stage = StageReady
	}
}

// MissingSlots returns the required slots not yet collected, in prompting
// order. Empty for intents without a slot flow.
func (s *Session) MissingSlots() []string {
	var missing []string
	for _, name := range flowSlots[s.ActiveFlow] {
		if s.Collected[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// Reset abandons the active flow and clears collected slots (greeting
// mid-flow). The stage is Reset for this turn only.
func (s *Session) Reset() {
	s.Stage = StageReset
	s.ActiveFlow = ""
	s.Collected = make(map[string]string)
}

// Cancel abandons the conversation at the user's request.
func (s *Session) Cancel() {
	s.Stage = StageCancelled
	s.ActiveFlow = ""
	s.Collected = make(map[string]string)
}

// Finalize consumes a Ready session and returns the collected slots. The
// session goes back to Idle for the next turn.
func (s *Session) Finalize() map[string]string {
	collected := s.Collected
	s.Stage = StageIdle
	s.ActiveFlow = ""
	s.Collected = make(map[string]string)
	return collected
}

// Quick-reply sets. Fixed, hand-authored; surfaced verbatim to the user.
var (
	platformChoices = []string{"Outlier", "PayPal", "Upwork", "Fiverr", "Payoneer", "Wise"}
	urgencyChoices  = []string{"ASAP", "This week", "This month", "No rush"}

	buyServiceReplies = []string{"Show me available services", "Show me rentals", "How do I pay?"}
	paymentReplies    = []string{"Check my wallet", "Show my orders", "Open a ticket"}
	deliveryReplies   = []string{"Show my orders", "Open a ticket", "Talk to a human"}
	generalReplies    = []string{"Show me available services", "Show my orders", "Open a ticket"}
	clarifyReplies    = []string{"Browse services", "Help with an order", "Help with a payment", "Something else"}
)

// SlotQuickReplies is a pure function of (intent, collected): platform
// choices while platform is missing, then urgency choices, then none once
// the flow is ready to proceed.
func SlotQuickReplies(intent Intent, collected map[string]string) []string {
	if !RequiresSlots(intent) {
		return nil
	}
	if collected["platform"] == "" {
		return platformChoices
	}
	if collected["urgency"] == "" {
		return urgencyChoices
	}
	return nil
}

// IntentQuickReplies returns the fixed quick-reply set for non-slot intents.
func IntentQuickReplies(intent Intent) []string {
	switch intent {
	case IntentBuyService:
		return buyServiceReplies
	case IntentPaymentHelp:
		return paymentReplies
	case IntentOrderDelivery:
		return deliveryReplies
	case IntentGeneralSupport:
		return generalReplies
	}
	return nil
}

// ClarifyQuickReplies is the set offered when the user appears confused.
func ClarifyQuickReplies() []string {
	return clarifyReplies
}
