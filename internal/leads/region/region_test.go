package region

import "testing"

func TestEligible(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"66123", true},
		{"66000", true},
		{"12345", false},
		{"6612", false},
		{"661234", false},
		{"6612a", false},
		{"56123", false},
		{" 66123", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Eligible(tt.code); got != tt.want {
			t.Fatalf("Eligible(%q): expected %v, got %v", tt.code, tt.want, got)
		}
	}
}
