// Package agent classifies free-text owner answers with an LLM agent.
package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"solar_lead_backend/internal/leads/domain"
	"solar_lead_backend/platform/ai/openai"
	"solar_lead_backend/platform/config"
)

const (
	appName = "owner-classifier"
	userID  = "webhook"
)

// Classifier answers the owner question for answers the rule pass cannot place.
type Classifier struct {
	runner         *runner.Runner
	sessionService session.Service
	timeout        time.Duration
}

// New builds a Classifier backed by the configured OpenAI-compatible model.
func New(cfg config.OwnerClassifierConfig) (*Classifier, error) {
	llm := openai.NewModel(openai.Config{
		APIKey:  cfg.GetOpenAIAPIKey(),
		BaseURL: cfg.GetOpenAIBaseURL(),
		Model:   cfg.GetOpenAIModel(),
		Timeout: cfg.GetOwnerClassifierTimeout(),
	})
	return NewWithModel(llm, cfg.GetOwnerClassifierTimeout())
}

// NewWithModel builds a Classifier around any ADK model.
func NewWithModel(llm model.LLM, timeout time.Duration) (*Classifier, error) {
	adkAgent, err := llmagent.New(llmagent.Config{
		Name:        "OwnerClassifier",
		Model:       llm,
		Description: "Classifies a free-text answer to the property owner question.",
		Instruction: systemPrompt,
		GenerateContentConfig: &genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create owner classifier agent: %w", err)
	}

	sessionService := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        appName,
		Agent:          adkAgent,
		SessionService: sessionService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create owner classifier runner: %w", err)
	}

	return &Classifier{
		runner:         r,
		sessionService: sessionService,
		timeout:        timeout,
	}, nil
}

// ClassifyOwnership runs one isolated session per answer. Any output other than
// CONFIRMED or DENIED is an error.
func (c *Classifier) ClassifyOwnership(ctx context.Context, answer string) (domain.OwnershipDecision, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	sessionID := uuid.New().String()
	_, err := c.sessionService.Create(ctx, &session.CreateRequest{
		AppName:   appName,
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		return "", fmt.Errorf("owner classifier: create session: %w", err)
	}
	defer func() {
		_ = c.sessionService.Delete(context.WithoutCancel(ctx), &session.DeleteRequest{
			AppName:   appName,
			UserID:    userID,
			SessionID: sessionID,
		})
	}()

	userMessage := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{{
			Text: buildUserMessage(answer),
		}},
	}

	var output strings.Builder
	for event, err := range c.runner.Run(ctx, userID, sessionID, userMessage, agent.RunConfig{StreamingMode: agent.StreamingModeNone}) {
		if err != nil {
			return "", fmt.Errorf("owner classifier: run failed: %w", err)
		}
		if event.Content == nil {
			continue
		}
		for _, part := range event.Content.Parts {
			output.WriteString(part.Text)
		}
	}

	return parseDecision(output.String())
}

func buildUserMessage(answer string) string {
	return fmt.Sprintf("User Answer: %q", answer)
}

// parseDecision accepts the bare label, tolerating surrounding whitespace,
// quotes, a trailing period and letter case.
func parseDecision(output string) (domain.OwnershipDecision, error) {
	label := strings.ToUpper(strings.Trim(strings.TrimSpace(output), "\"'`.!"))
	decision, ok := domain.ParseOwnershipDecision(label)
	if !ok {
		return "", fmt.Errorf("owner classifier: unexpected output %q", output)
	}
	return decision, nil
}

const systemPrompt = `You are a boolean classifier for a German solar lead API.
The question asked was: "Sind Sie Eigentümer?" (Are you the owner?).

RULES:
- If the answer implies YES, ownership, or strong agreement, output strictly: CONFIRMED
- If the answer implies NO, renting, uncertainty, or someone else owns it, output strictly: DENIED

Output ONLY the word CONFIRMED or DENIED.`
