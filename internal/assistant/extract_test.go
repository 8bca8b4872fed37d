package assistant

import "testing"

func TestExtractPlatform_Known(t *testing.T) {
	cases := map[string]string{
		"i need help with outlier please": "Outlier",
		"it's for PayPal":                 "PayPal",
		"my Upwork profile":               "Upwork",
		"fiverr gig setup":                "Fiverr",
		"payoneer verification":           "Payoneer",
		"transfer via wise":               "Wise",
	}
	for text, want := range cases {
		if got := ExtractPlatform(Normalize(text)); got != want {
			t.Errorf("ExtractPlatform(%q) = %q, want %q", text, got, want)
		}
	}
}

func TestExtractPlatform_Unknown(t *testing.T) {
	for _, text := range []string{
		"i need a bybit account set up",
		"something for my shop",
		"",
	} {
		if got := ExtractPlatform(Normalize(text)); got != "" {
			t.Errorf("ExtractPlatform(%q) = %q, want empty", text, got)
		}
	}
}

func TestExtractUrgency_Buckets(t *testing.T) {
	cases := map[string]string{
		"let's do it ASAP":          "asap",
		"i need it today":           "asap",
		"sometime this week":        "this_week",
		"in a couple of days":       "this_week",
		"this month would be fine":  "this_month",
		"in a few weeks":            "this_month",
		"no rush at all":            "flexible",
		"whenever works":            "flexible",
		"i'm flexible on the dates": "flexible",
	}
	for text, want := range cases {
		if got := ExtractUrgency(Normalize(text)); got != want {
			t.Errorf("ExtractUrgency(%q) = %q, want %q", text, got, want)
		}
	}
}

func TestExtractUrgency_FirstMatchWins(t *testing.T) {
	// Mentions both asap and flexible phrasing; the asap bucket is first.
	if got := ExtractUrgency(Normalize("asap, but no rush if you can't")); got != "asap" {
		t.Errorf("ExtractUrgency = %q, want %q", got, "asap")
	}
}

func TestExtractUrgency_NoMatch(t *testing.T) {
	if got := ExtractUrgency(Normalize("i have a question about pricing")); got != "" {
		t.Errorf("ExtractUrgency = %q, want empty", got)
	}
}
