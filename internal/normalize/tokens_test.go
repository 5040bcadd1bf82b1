package normalize

import (
	"errors"
	"testing"
)

func TestSplitMinuteToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		token  string
		minute int
		injury *int
	}{
		{token: "67'", minute: 67},
		{token: "1'", minute: 1},
		{token: "90+5'", minute: 90, injury: intPtr(5)},
		{token: "90+5", minute: 90, injury: intPtr(5)},
		{token: "45+2\"", minute: 45, injury: intPtr(2)},
		{token: " 12 ", minute: 12},
	}

	for _, tc := range cases {
		minute, injury, err := SplitMinuteToken(tc.token)
		if err != nil {
			t.Fatalf("SplitMinuteToken(%q) error: %v", tc.token, err)
		}
		if minute != tc.minute {
			t.Fatalf("SplitMinuteToken(%q) minute = %d, want %d", tc.token, minute, tc.minute)
		}
		switch {
		case tc.injury == nil && injury != nil:
			t.Fatalf("SplitMinuteToken(%q) injury = %d, want nil", tc.token, *injury)
		case tc.injury != nil && (injury == nil || *injury != *tc.injury):
			t.Fatalf("SplitMinuteToken(%q) injury = %v, want %d", tc.token, injury, *tc.injury)
		}
	}
}

func TestSplitMinuteTokenRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"", "'", "HT", "90+", "+3", "4a'"} {
		if _, _, err := SplitMinuteToken(token); !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("SplitMinuteToken(%q) error = %v, want ErrMalformedToken", token, err)
		}
	}
}

func TestExtractEntityID(t *testing.T) {
	t.Parallel()

	if got := ExtractEntityID("urn:scheme:kind:12345"); got != "12345" {
		t.Fatalf("ExtractEntityID urn = %q, want 12345", got)
	}
	if got := ExtractEntityID("urn:bbc:sportsdata:football:event:EFBO2267133"); got != "EFBO2267133" {
		t.Fatalf("ExtractEntityID event urn = %q", got)
	}

	for _, plain := range []string{"", "12345", "p110"} {
		if got := ExtractEntityID(plain); got != plain {
			t.Fatalf("ExtractEntityID(%q) = %q, want identity", plain, got)
		}
		if got := ExtractEntityID(ExtractEntityID(plain)); got != plain {
			t.Fatalf("ExtractEntityID round trip of %q = %q", plain, got)
		}
	}
}

func TestParseAssistToken(t *testing.T) {
	t.Parallel()

	name, minutes, err := ParseAssistToken("Josh Hawkes (12', 45+2')")
	if err != nil {
		t.Fatalf("ParseAssistToken error: %v", err)
	}
	if name != "Josh Hawkes" {
		t.Fatalf("name = %q, want Josh Hawkes", name)
	}
	if len(minutes) != 2 {
		t.Fatalf("minutes = %d, want 2", len(minutes))
	}
	if minutes[0].minute != 12 || minutes[0].injury != nil {
		t.Fatalf("first minute = %+v", minutes[0])
	}
	if minutes[1].minute != 45 || minutes[1].injury == nil || *minutes[1].injury != 2 {
		t.Fatalf("second minute = %+v", minutes[1])
	}

	if _, _, err := ParseAssistToken("Josh Hawkes"); !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("missing minutes error = %v, want ErrMalformedToken", err)
	}
}
