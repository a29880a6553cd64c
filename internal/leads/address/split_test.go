package address

import "testing"

func TestSplit(t *testing.T) {
	tests := []struct {
		in     string
		street string
		number string
	}{
		{"Venner Straße 23 Und 24", "Venner Straße", "23 Und 24"},
		{"Hauptstraße 5a", "Hauptstraße", "5a"},
		{"Am Markt 1", "Am Markt", "1"},
		{"Straße des 17. Juni 100", "Straße des", "17. Juni 100"},
		{"Lindenweg", "Lindenweg", ""},
		{"Hauptstraße\u00a012", "Hauptstraße", "12"},
		{"Am\u00a0Markt\u202f3b", "Am\u00a0Markt", "3b"},
		{"", "", ""},
	}

	for _, tt := range tests {
		street, number := Split(tt.in)
		if street != tt.street || number != tt.number {
			t.Fatalf("Split(%q): expected (%q, %q), got (%q, %q)", tt.in, tt.street, tt.number, street, number)
		}
	}
}

func TestResolveKeepsExplicitHouseNumber(t *testing.T) {
	street, number := Resolve("Venner Straße 23", "7")
	if street != "Venner Straße 23" || number != "7" {
		t.Fatalf("expected fields untouched, got (%q, %q)", street, number)
	}
}

func TestResolveSplitsCombinedStreet(t *testing.T) {
	street, number := Resolve("Venner Straße 23 Und 24", "")
	if street != "Venner Straße" || number != "23 Und 24" {
		t.Fatalf("expected split, got (%q, %q)", street, number)
	}
}

func TestResolveWithoutDigitsLeavesStreet(t *testing.T) {
	street, number := Resolve("Lindenweg", "")
	if street != "Lindenweg" || number != "" {
		t.Fatalf("expected (Lindenweg, \"\"), got (%q, %q)", street, number)
	}
}
