// Package ownership decides whether a lead claims to own the property, using a
// fixed rule pass and an injected classifier for answers the rules cannot place.
package ownership

import (
	"context"
	"strings"

	"solar_lead_backend/internal/leads/domain"
	"solar_lead_backend/platform/logger"
	"solar_lead_backend/platform/textnorm"
)

// QuestionToken identifies the owner question label ("Sind Sie Eigentümer?").
const QuestionToken = "eigentümer"

var (
	affirmativeSignals = signalSet("ja", "yes", "true", "1", "wahr", "sicher", "yep", "klar", "genau")
	negativeSignals    = signalSet("nein", "no", "false", "0", "miete", "rent", "mieter")
)

// Classifier is the external fallback for free-text answers. Implementations
// must return OwnershipConfirmed or OwnershipDenied, or an error.
type Classifier interface {
	ClassifyOwnership(ctx context.Context, answer string) (domain.OwnershipDecision, error)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, answer string) (domain.OwnershipDecision, error)

// ClassifyOwnership calls f.
func (f ClassifierFunc) ClassifyOwnership(ctx context.Context, answer string) (domain.OwnershipDecision, error) {
	return f(ctx, answer)
}

// ExtractAnswer finds the first owner question and returns its answer.
// A missing label or a blank answer both count as no ownership data.
func ExtractAnswer(questions domain.Questions) (string, bool) {
	q, ok := questions.First(func(label string) bool {
		return textnorm.ContainsFolded(label, QuestionToken)
	})
	if !ok || q.Answer.Blank() {
		return "", false
	}
	return q.Answer.Value, true
}

// CheckRules maps an answer onto the fixed signal sets. Matching is exact after
// lowercasing and trimming; affirmative signals are checked first.
func CheckRules(answer string) domain.OwnershipDecision {
	normalized := strings.ToLower(strings.TrimSpace(answer))

	if _, ok := affirmativeSignals[normalized]; ok {
		return domain.OwnershipConfirmed
	}
	if _, ok := negativeSignals[normalized]; ok {
		return domain.OwnershipDenied
	}
	return domain.OwnershipUnknown
}

// Checker runs the rule pass and falls back to the classifier on UNKNOWN.
type Checker struct {
	fallback Classifier
	log      *logger.Logger
}

// NewChecker creates a Checker. A nil fallback denies every undecided answer.
func NewChecker(fallback Classifier, log *logger.Logger) *Checker {
	return &Checker{fallback: fallback, log: log}
}

// Decide returns OwnershipConfirmed or OwnershipDenied, never UNKNOWN.
// Classifier failures are absorbed as a denial.
func (c *Checker) Decide(ctx context.Context, answer string) domain.OwnershipDecision {
	if decision := CheckRules(answer); decision != domain.OwnershipUnknown {
		return decision
	}

	if c.fallback == nil {
		return domain.OwnershipDenied
	}

	log := c.log.WithContext(ctx)
	log.Info("owner classifier activated", "answer", answer)

	decision, err := c.fallback.ClassifyOwnership(ctx, answer)
	if err != nil {
		log.Warn("owner classifier failed, denying", "error", err)
		return domain.OwnershipDenied
	}
	if decision != domain.OwnershipConfirmed {
		return domain.OwnershipDenied
	}
	return domain.OwnershipConfirmed
}

func signalSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
