package services

import (
	"context"
	"strings"
	"time"

	"github.com/agecare/companion-api/internal/logging"
	"github.com/agecare/companion-api/internal/models"
	"github.com/agecare/companion-api/internal/observability"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// AgentName identifies this agent in response envelopes
const AgentName = "elder-advice-agent"

const systemPrompt = `You are an elder advice assistant for older adults and their caregivers.
You give gentle, respectful, simple advice about:
- everyday aches and pains
- comfort, sleep, daily routines, mood, loneliness, and safety
- organising medication schedules (but not changing doses)

SAFETY RULES (very important):
- You are NOT a doctor and must NOT claim to be one.
- Do NOT diagnose medical conditions.
- Do NOT prescribe or change medicines or doses.
- For strong, sudden, or worrying symptoms, always advise contacting a doctor or local emergency services.
- Use short paragraphs and clear, simple language.
- Be kind and supportive.`

const greetingReply = "Hello! I'm an elder advice companion powered by an online AI model. " +
	"I can offer gentle, general guidance about common aches, daily routines, " +
	"comfort, sleep, mood, and safety for older adults. " +
	"I'm not a doctor and I can't diagnose or prescribe medicines, " +
	"so for medical concerns you should always talk to a healthcare professional."

const emergencyReply = "This may be an emergency. I'm not a medical professional and I can't safely advise " +
	"on this. Please call your local emergency number or seek urgent medical help immediately."

const modelUnavailableReply = "I'm having trouble contacting my AI model right now. " +
	"For anything related to health, especially if symptoms are new or strong, " +
	"please contact a doctor or nurse."

// emergencySigns short-circuit delegation: matching messages are answered
// with the emergency reply and never reach the model.
var emergencySigns = []string{
	"chest pain",
	"trouble breathing",
	"difficulty breathing",
	"severe pain",
	"sudden weakness",
	"face drooping",
	"slurred speech",
	"can't move",
	"cannot move",
	"loss of consciousness",
	"fainted",
	"unresponsive",
}

// AdviceConfig configures the advice delegation endpoint
type AdviceConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// AdviceService routes a user message through the safety pre-filter and
// the rule engine before delegating to an OpenAI-compatible completion
// endpoint. It never returns an error for a well-formed request; failures
// degrade to a safe canned reply inside the envelope.
type AdviceService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *logging.SafeLogger
}

// NewAdviceService creates an advice service. With an empty API key no
// client is constructed and delegation degrades to the fallback reply.
func NewAdviceService(cfg AdviceConfig, logger *logging.SafeLogger) *AdviceService {
	s := &AdviceService{
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}
	if cfg.APIKey != "" {
		clientCfg := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		s.client = openai.NewClientWithConfig(clientCfg)
	}
	return s
}

// Reply answers the most recent user message in the request
func (s *AdviceService) Reply(ctx context.Context, req models.AgentRequest) models.AgentResponse {
	text := strings.TrimSpace(req.LastUserMessage())

	message, outcome := s.route(ctx, text)
	observability.AdviceRequests.WithLabelValues(outcome).Inc()

	return models.AgentResponse{
		AgentName: AgentName,
		Status:    models.AgentStatusSuccess,
		Data:      map[string]interface{}{"message": message},
	}
}

// RuleReply runs only the rule engine, reporting whether a rule matched.
// Exposed for the rule-engine endpoint, which does not fall through to
// the model.
func (s *AdviceService) RuleReply(text string) (string, bool) {
	return ruleReply(strings.ToLower(strings.TrimSpace(text)))
}

func (s *AdviceService) route(ctx context.Context, text string) (reply, outcome string) {
	if text == "" {
		return greetingReply, "greeting"
	}

	lower := strings.ToLower(text)
	for _, sign := range emergencySigns {
		if strings.Contains(lower, sign) {
			s.logger.Warn("emergency sign detected, skipping model delegation")
			return emergencyReply, "emergency"
		}
	}

	if reply, ok := ruleReply(lower); ok {
		return reply, "rule"
	}

	return s.delegate(ctx, text), "model"
}

// delegate asks the configured completion endpoint for a reply
func (s *AdviceService) delegate(ctx context.Context, text string) string {
	if s.client == nil {
		s.logger.Warn("advice delegation skipped: no API key configured")
		return modelUnavailableReply
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.4,
		MaxTokens:   512,
	})
	if err != nil {
		s.logger.Error("advice delegation failed", zap.Error(err))
		return modelUnavailableReply
	}
	if len(resp.Choices) == 0 {
		s.logger.Warn("advice delegation returned no choices")
		return modelUnavailableReply
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

// ruleReply returns a canned response for a few common elder-care intents.
// The input must already be lowercased.
func ruleReply(lower string) (string, bool) {
	if strings.Contains(lower, "remind") && strings.Contains(lower, "medication") {
		return "I can help you plan safe times to take your medication, but I can't " +
			"change your prescription. Has a doctor given you instructions " +
			"for when to take it?", true
	}

	if strings.Contains(lower, "feeling lonely") || strings.Contains(lower, "feel lonely") {
		return "I'm sorry you're feeling lonely. We can talk about ways to stay " +
			"connected with friends, family, or local groups. Would you like " +
			"some ideas?", true
	}

	if strings.Contains(lower, "exercise") && (strings.Contains(lower, "safe") || strings.Contains(lower, "okay")) {
		return "Gentle activities such as walking or stretching are often helpful, " +
			"but it depends on your health. It's best to ask your doctor what " +
			"level of activity is safe for you.", true
	}

	return "", false
}
