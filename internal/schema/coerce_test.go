package schema

import "testing"

func TestParseClock(t *testing.T) {
	cases := map[string]string{
		"09:30:00":     "09:30:00",
		"9:05 PM":      "21:05:00",
		"14:45":        "14:45:00",
		"08:01:02.500": "08:01:02",
		// time.Parse accepts a fraction of any length after the seconds
		// even when the layout carries none.
		"08:01:02.5":      "08:01:02",
		"08:01:02.123456": "08:01:02",
	}
	for in, want := range cases {
		got, ok := ParseClock(in)
		if !ok || got != want {
			t.Errorf("ParseClock(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := ParseClock("not a time"); ok {
		t.Error("expected failure on junk input")
	}
	if _, ok := ParseClock(""); ok {
		t.Error("expected failure on empty input")
	}
}

func TestParseDateTime(t *testing.T) {
	for _, in := range []string{
		"2024-03-01 08:30:00.000",
		"2024-03-01 08:30:00",
		"2024-03-01T08:30:00",
	} {
		ts, ok := ParseDateTime(in)
		if !ok {
			t.Fatalf("ParseDateTime(%q) failed", in)
		}
		if ts.Hour() != 8 || ts.Minute() != 30 {
			t.Fatalf("ParseDateTime(%q) = %v", in, ts)
		}
	}
	if _, ok := ParseDateTime("03/2024"); ok {
		t.Error("expected failure on partial date")
	}
}

func TestParseIntIsStrict(t *testing.T) {
	if n, ok := ParseInt(" 42 "); !ok || n != 42 {
		t.Fatalf("ParseInt = %d, %v", n, ok)
	}
	for _, in := range []string{"3.0", "", "abc", "1e3"} {
		if _, ok := ParseInt(in); ok {
			t.Errorf("ParseInt(%q) should fail", in)
		}
	}
}

func TestCleanRONumber(t *testing.T) {
	cases := map[string]string{
		"237270.0":  "237270",
		"237270.00": "237270",
		"237270.5":  "237270.5",
		"237270":    "237270",
		"ABC123":    "ABC123",
		" 99.0 ":    "99",
		"A.B":       "A.B",
	}
	for in, want := range cases {
		if got := CleanRONumber(in); got != want {
			t.Errorf("CleanRONumber(%q) = %q, want %q", in, got, want)
		}
	}
}
