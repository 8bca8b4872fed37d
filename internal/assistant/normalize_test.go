package assistant

import "testing"

func TestNormalize_Lowercases(t *testing.T) {
	if got := Normalize("HELLO World"); got != "hello world" {
		t.Errorf("Normalize = %q, want %q", got, "hello world")
	}
}

func TestNormalize_StripsPunctuation(t *testing.T) {
	if got := Normalize("don't panic!!!"); got != "don t panic" {
		t.Errorf("Normalize = %q, want %q", got, "don t panic")
	}
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	if got := Normalize("  a   lot\t\tof \n space  "); got != "a lot of space" {
		t.Errorf("Normalize = %q, want %q", got, "a lot of space")
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want empty", got)
	}
	if got := Normalize("?!., --"); got != "" {
		t.Errorf("Normalize(punct only) = %q, want empty", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"  what's UP?? ",
		"already normalized",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalize_KeepsDigits(t *testing.T) {
	if got := Normalize("order #42 for $50"); got != "order 42 for 50" {
		t.Errorf("Normalize = %q, want %q", got, "order 42 for 50")
	}
}
