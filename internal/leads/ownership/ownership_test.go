package ownership

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"solar_lead_backend/internal/leads/domain"
	"solar_lead_backend/platform/logger"
)

func testLogger() *logger.Logger {
	return logger.NewWithHandler(slog.NewTextHandler(io.Discard, nil))
}

type stubClassifier struct {
	decision domain.OwnershipDecision
	err      error
	calls    int
	answers  []string
}

func (s *stubClassifier) ClassifyOwnership(_ context.Context, answer string) (domain.OwnershipDecision, error) {
	s.calls++
	s.answers = append(s.answers, answer)
	return s.decision, s.err
}

func TestExtractAnswerMatchesOwnerLabelSpellings(t *testing.T) {
	labels := []string{
		"Sind Sie Eigentümer der Immobilie?",
		"EIGENTÜMER",
		"Sind Sie Eigentuemer?",
		"eigentumer",
		"Sind Sie Eigentümer?",
	}

	for _, label := range labels {
		questions := domain.Questions{
			{Label: "Welche Dachform?", Answer: domain.Answer{Value: "Satteldach"}},
			{Label: label, Answer: domain.Answer{Value: "Ja"}},
		}
		answer, ok := ExtractAnswer(questions)
		if !ok || answer != "Ja" {
			t.Fatalf("label %q: expected answer Ja, got %q (ok=%v)", label, answer, ok)
		}
	}
}

func TestExtractAnswerFirstLabelWins(t *testing.T) {
	questions := domain.Questions{
		{Label: "Eigentümer?", Answer: domain.Answer{Value: "nein"}},
		{Label: "Wirklich Eigentümer?", Answer: domain.Answer{Value: "ja"}},
	}
	answer, ok := ExtractAnswer(questions)
	if !ok || answer != "nein" {
		t.Fatalf("expected first label answer nein, got %q", answer)
	}
}

func TestExtractAnswerMissing(t *testing.T) {
	tests := []struct {
		name      string
		questions domain.Questions
	}{
		{"no questions", nil},
		{"no owner label", domain.Questions{{Label: "Dachform", Answer: domain.Answer{Value: "Flachdach"}}}},
		{"empty answer", domain.Questions{{Label: "Eigentümer?", Answer: domain.Answer{Value: ""}}}},
		{"null answer", domain.Questions{{Label: "Eigentümer?", Answer: domain.Answer{Null: true}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ExtractAnswer(tt.questions); ok {
				t.Fatalf("expected no ownership answer")
			}
		})
	}
}

func TestCheckRules(t *testing.T) {
	tests := []struct {
		answer string
		want   domain.OwnershipDecision
	}{
		{"Ja", domain.OwnershipConfirmed},
		{"  YES ", domain.OwnershipConfirmed},
		{"1", domain.OwnershipConfirmed},
		{"genau", domain.OwnershipConfirmed},
		{"nein", domain.OwnershipDenied},
		{"Miete", domain.OwnershipDenied},
		{"0", domain.OwnershipDenied},
		{"false", domain.OwnershipDenied},
		{"vielleicht", domain.OwnershipUnknown},
		{"ja, seit 2010", domain.OwnershipUnknown},
		{"", domain.OwnershipUnknown},
	}

	for _, tt := range tests {
		if got := CheckRules(tt.answer); got != tt.want {
			t.Fatalf("CheckRules(%q): expected %s, got %s", tt.answer, tt.want, got)
		}
	}
}

func TestDecideSkipsClassifierWhenRulesMatch(t *testing.T) {
	stub := &stubClassifier{decision: domain.OwnershipDenied}
	checker := NewChecker(stub, testLogger())

	if got := checker.Decide(context.Background(), "Ja"); got != domain.OwnershipConfirmed {
		t.Fatalf("expected CONFIRMED, got %s", got)
	}
	if stub.calls != 0 {
		t.Fatalf("expected classifier not to be called, got %d calls", stub.calls)
	}
}

func TestDecideRoutesUnknownToClassifier(t *testing.T) {
	stub := &stubClassifier{decision: domain.OwnershipConfirmed}
	checker := NewChecker(stub, testLogger())

	if got := checker.Decide(context.Background(), "Ja, das Haus gehört mir"); got != domain.OwnershipConfirmed {
		t.Fatalf("expected CONFIRMED, got %s", got)
	}
	if stub.calls != 1 || stub.answers[0] != "Ja, das Haus gehört mir" {
		t.Fatalf("expected one classifier call with the raw answer, got %v", stub.answers)
	}
}

func TestDecideDeniesOnClassifierFailure(t *testing.T) {
	stub := &stubClassifier{decision: domain.OwnershipConfirmed, err: errors.New("timeout")}
	checker := NewChecker(stub, testLogger())

	if got := checker.Decide(context.Background(), "vielleicht"); got != domain.OwnershipDenied {
		t.Fatalf("expected DENIED on classifier error, got %s", got)
	}
}

func TestDecideDeniesUnexpectedLabel(t *testing.T) {
	stub := &stubClassifier{decision: domain.OwnershipUnknown}
	checker := NewChecker(stub, testLogger())

	if got := checker.Decide(context.Background(), "vielleicht"); got != domain.OwnershipDenied {
		t.Fatalf("expected DENIED for non-terminal label, got %s", got)
	}
}

func TestDecideWithoutClassifierDenies(t *testing.T) {
	checker := NewChecker(nil, testLogger())

	if got := checker.Decide(context.Background(), "vielleicht"); got != domain.OwnershipDenied {
		t.Fatalf("expected DENIED without classifier, got %s", got)
	}
}

func TestFalsyAnswersAreAnswersNotMissingData(t *testing.T) {
	for _, value := range []string{"0", "false"} {
		questions := domain.Questions{{Label: "Sind Sie Eigentümer?", Answer: domain.Answer{Value: value}}}

		answer, ok := ExtractAnswer(questions)
		if !ok || answer != value {
			t.Fatalf("%q: expected answer to be extracted, got %q ok=%v", value, answer, ok)
		}
		if got := CheckRules(answer); got != domain.OwnershipDenied {
			t.Fatalf("%q: expected DENIED, got %s", value, got)
		}
	}
}
