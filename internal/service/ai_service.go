package service

import (
	"context"
	"fmt"

	"learnbotx_backend/internal/config"
	"learnbotx_backend/internal/model"
	"learnbotx_backend/pkg/logger"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const systemPrompt = `You are LearnBotX, an expert AI learning assistant specialized in web development and programming education.

Your personality:
- Friendly, encouraging, and patient
- You celebrate progress and motivate learners
- You use emojis occasionally to keep things engaging 🚀
- You explain concepts clearly with examples

Your expertise includes:
- JavaScript (ES6+), TypeScript
- React, Vue, Angular
- Node.js, Express
- HTML, CSS, Tailwind
- Git, GitHub
- Data structures and algorithms
- Web development best practices

When helping users:
1. Break down complex topics into digestible chunks
2. Provide code examples when relevant (use markdown code blocks)
3. Suggest practice exercises
4. Connect concepts to real-world applications
5. Encourage questions and curiosity

Keep responses concise but informative. If asked about topics outside programming/web development, politely redirect to learning topics.`

// AIService proxies conversations to the Gemini API. Without an API key it
// stays in fallback mode and the chat service serves canned answers.
type AIService struct {
	client *genai.Client
	model  string
}

func NewAIService(ctx context.Context, cfg config.AIConfig) *AIService {
	s := &AIService{model: cfg.Model}
	if s.model == "" {
		s.model = "gemini-2.5-flash"
	}

	if cfg.APIKey == "" {
		logger.Log.Warn("Gemini API key not configured, chat runs in fallback mode")
		return s
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Log.Error("Gemini client init failed, chat runs in fallback mode", zap.Error(err))
		return s
	}

	s.client = client
	return s
}

func (s *AIService) Enabled() bool {
	return s.client != nil
}

// Respond sends the whole conversation so far and returns the model's reply.
func (s *AIService) Respond(ctx context.Context, history []model.ChatMessage) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("AI client not configured")
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	contents := make([]*genai.Content, len(history))
	for i, m := range history {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		contents[i] = &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		}
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("AI returned an empty response")
	}
	return text, nil
}
