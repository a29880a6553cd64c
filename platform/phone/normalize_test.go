package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0170 1234567", "+491701234567"},
		{"0681 / 123456", "+49681123456"},
		{"+49 170 1234567", "+491701234567"},
		{"+43 1 2345678", "+4312345678"},
		{"not a number", "not a number"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeE164(tt.in); got != tt.want {
			t.Fatalf("NormalizeE164(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestNormalizeE164InRegion(t *testing.T) {
	if got := NormalizeE164In("06 12345678", "NL"); got != "+31612345678" {
		t.Fatalf("expected Dutch number, got %q", got)
	}
}
