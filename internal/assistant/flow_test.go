package assistant

import "testing"

func TestNewSession_Idle(t *testing.T) {
	s := NewSession()
	if s.Stage != StageIdle {
		t.Errorf("Stage = %s, want %s", s.Stage, StageIdle)
	}
	if !s.Valid() {
		t.Error("fresh session should be valid")
	}
}

func TestSessionValid_Corrupt(t *testing.T) {
	var nilSession *Session
	if nilSession.Valid() {
		t.Error("nil session should be invalid")
	}
	if (&Session{Stage: StageIdle}).Valid() {
		t.Error("session with nil slot map should be invalid")
	}
	if (&Session{Stage: "WAT", Collected: map[string]string{}}).Valid() {
		t.Error("session with unknown stage should be invalid")
	}
}

func TestSessionBegin_Collecting(t *testing.T) {
	s := NewSession()
	s.Begin(IntentInterviewAssessment)
	if s.Stage != StageCollecting {
		t.Errorf("Stage = %s, want %s", s.Stage, StageCollecting)
	}
	missing := s.MissingSlots()
	if len(missing) != 2 || missing[0] != "platform" || missing[1] != "urgency" {
		t.Errorf("MissingSlots = %v, want [platform urgency]", missing)
	}
}

func TestSessionMerge_PartialThenReady(t *testing.T) {
	s := NewSession()
	s.Begin(IntentCustomService)

	s.Merge(map[string]string{"platform": "Outlier", "urgency": ""})
	if s.Stage != StageCollecting {
		t.Errorf("Stage = %s, want %s after partial merge", s.Stage, StageCollecting)
	}
	if got := s.MissingSlots(); len(got) != 1 || got[0] != "urgency" {
		t.Errorf("MissingSlots = %v, want [urgency]", got)
	}

	s.Merge(map[string]string{"platform": "", "urgency": "asap"})
	if s.Stage != StageReady {
		t.Errorf("Stage = %s, want %s", s.Stage, StageReady)
	}
}

func TestSessionMerge_FirstValueSticks(t *testing.T) {
	s := NewSession()
	s.Begin(IntentCustomService)
	s.Merge(map[string]string{"platform": "Outlier"})
	s.Merge(map[string]string{"platform": "PayPal"})
	if s.Collected["platform"] != "Outlier" {
		t.Errorf("platform = %q, want %q", s.Collected["platform"], "Outlier")
	}
}

func TestSessionReset_ClearsSlots(t *testing.T) {
	s := NewSession()
	s.Begin(IntentInterviewAssessment)
	s.Merge(map[string]string{"platform": "Outlier"})
	s.Reset()
	if s.Stage != StageReset {
		t.Errorf("Stage = %s, want %s", s.Stage, StageReset)
	}
	if len(s.Collected) != 0 {
		t.Errorf("Collected = %v, want empty", s.Collected)
	}
	if s.ActiveFlow != "" {
		t.Errorf("ActiveFlow = %s, want empty", s.ActiveFlow)
	}
}

func TestSessionFinalize_ReturnsSlotsAndIdles(t *testing.T) {
	s := NewSession()
	s.Begin(IntentInterviewAssessment)
	s.Merge(map[string]string{"platform": "Upwork", "urgency": "this_week"})
	if s.Stage != StageReady {
		t.Fatalf("Stage = %s, want %s", s.Stage, StageReady)
	}

	collected := s.Finalize()
	if collected["platform"] != "Upwork" || collected["urgency"] != "this_week" {
		t.Errorf("Finalize = %v", collected)
	}
	if s.Stage != StageIdle {
		t.Errorf("Stage after Finalize = %s, want %s", s.Stage, StageIdle)
	}
	if len(s.Collected) != 0 {
		t.Errorf("Collected after Finalize = %v, want empty", s.Collected)
	}
}

func TestRequiresSlots(t *testing.T) {
	if !RequiresSlots(IntentInterviewAssessment) || !RequiresSlots(IntentCustomService) {
		t.Error("interview and custom flows require slots")
	}
	if RequiresSlots(IntentPaymentHelp) || RequiresSlots(IntentGeneralSupport) {
		t.Error("payment and general intents do not require slots")
	}
}

func TestSlotQuickReplies_Progression(t *testing.T) {
	got := SlotQuickReplies(IntentCustomService, map[string]string{})
	if len(got) == 0 || got[0] != "Outlier" {
		t.Errorf("expected platform choices first, got %v", got)
	}

	got = SlotQuickReplies(IntentCustomService, map[string]string{"platform": "Outlier"})
	if len(got) != 4 || got[0] != "ASAP" {
		t.Errorf("expected urgency choices, got %v", got)
	}

	got = SlotQuickReplies(IntentCustomService, map[string]string{"platform": "Outlier", "urgency": "asap"})
	if got != nil {
		t.Errorf("expected no choices when complete, got %v", got)
	}

	if SlotQuickReplies(IntentPaymentHelp, nil) != nil {
		t.Error("non-slot intents have no slot quick replies")
	}
}

func TestIntentQuickReplies(t *testing.T) {
	if len(IntentQuickReplies(IntentBuyService)) == 0 {
		t.Error("buy intent should have quick replies")
	}
	if IntentQuickReplies(IntentAssistantIdentity) != nil {
		t.Error("identity intent has no quick replies")
	}
}
